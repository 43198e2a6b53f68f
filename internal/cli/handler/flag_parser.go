// Package handler provides flag parsing utilities
package handler

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// ParseStatus extracts an optional --status flag
func (p *FlagParser) ParseStatus(flagName string) (*models.Status, error) {
	raw := cli.ChangedString(p.cmd, flagName)
	if raw == nil {
		return nil, nil
	}
	st, err := cli.ParseStatus(*raw)
	if err != nil {
		return nil, p.formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_STATUS", err,
			"Use one of: pending, applied, aptitude, interview, passed, rejected")
	}
	return &st, nil
}

// ParsePositionType extracts an optional --type flag
func (p *FlagParser) ParsePositionType(flagName string) (*models.PositionType, error) {
	raw := cli.ChangedString(p.cmd, flagName)
	if raw == nil {
		return nil, nil
	}
	pt, err := models.ParsePositionType(*raw)
	if err != nil {
		return nil, p.formatter.Fail(cli.ExitValidation, "INVALID_POSITION_TYPE", err)
	}
	return &pt, nil
}

// ParseDeadline extracts an optional --deadline flag
func (p *FlagParser) ParseDeadline(flagName string) (*string, error) {
	raw := cli.ChangedString(p.cmd, flagName)
	if raw == nil {
		return nil, nil
	}
	d, err := cli.ParseDeadline(*raw)
	if err != nil {
		return nil, p.formatter.Fail(cli.ExitDataErr, "INVALID_DEADLINE", err)
	}
	return &d, nil
}

// ParseString extracts an optional string flag
func (p *FlagParser) ParseString(flagName string) *string {
	return cli.ChangedString(p.cmd, flagName)
}
