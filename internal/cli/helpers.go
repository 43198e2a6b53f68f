package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// ParseStatus maps a status argument to its value.
// Column titles such as "Offer" are accepted as aliases.
func ParseStatus(s string) (models.Status, error) {
	if st, err := models.ParseStatus(s); err == nil {
		return st, nil
	}
	want := strings.ToLower(strings.TrimSpace(s))
	for _, cfg := range models.DefaultColumnConfigs() {
		if strings.ToLower(cfg.Title) == want {
			return cfg.Status, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s': %w", s, models.ErrInvalidStatus)
}

// ParseDeadline accepts YYYY-MM-DD or RFC 3339 and returns it normalized.
// Empty input clears the deadline.
func ParseDeadline(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(models.DeadlineDateLayout, s); err == nil {
		return t.Format(models.DeadlineDateLayout), nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s, nil
	}
	return "", fmt.Errorf("invalid deadline '%s' (use YYYY-MM-DD)", s)
}

// ParseBool accepts true/false, yes/no, on/off and 1/0
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean '%s' (use true or false)", s)
	}
	return b, nil
}

// ChangedString returns the flag's value if it was set on the command line
func ChangedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// Truncate shortens s to n runes with an ellipsis
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// ParseSection parses a cover letter section given as "Title=Content" or
// "Title[max]=Content" where max is the section's character limit.
func ParseSection(s string) (models.CoverLetterSection, error) {
	head, content, ok := strings.Cut(s, "=")
	if !ok {
		return models.CoverLetterSection{}, fmt.Errorf("invalid section '%s' (use Title=Content)", s)
	}
	sec := models.CoverLetterSection{Content: content}
	if open := strings.LastIndex(head, "["); open >= 0 && strings.HasSuffix(head, "]") {
		n, err := strconv.Atoi(head[open+1 : len(head)-1])
		if err != nil || n <= 0 {
			return models.CoverLetterSection{}, fmt.Errorf("invalid section limit in '%s'", head)
		}
		sec.MaxLength = &n
		head = head[:open]
	}
	sec.Title = strings.TrimSpace(head)
	if sec.Title == "" {
		return models.CoverLetterSection{}, fmt.Errorf("section title is required in '%s'", s)
	}
	return sec, nil
}

// ParseSections parses every --section value
func ParseSections(values []string) ([]models.CoverLetterSection, error) {
	out := make([]models.CoverLetterSection, 0, len(values))
	for _, v := range values {
		sec, err := ParseSection(v)
		if err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, nil
}
