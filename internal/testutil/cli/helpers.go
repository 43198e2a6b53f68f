package cli

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	clipkg "github.com/thenoetrevino/applyboard/internal/cli"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// ExitCode returns the exit code a failed command would produce
func ExitCode(err error) int {
	return clipkg.ExitCode(err)
}
