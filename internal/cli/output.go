package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// FormatterFromFlags builds a formatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.JSONResult("data", data)
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONResult writes {"success": true, key: data} to stdout
func (f *OutputFormatter) JSONResult(key string, data interface{}) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		key:       data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	writeError(os.Stderr, message, suggestion)
	return nil
}

// Fail reports err and returns it wrapped with exit code
func (f *OutputFormatter) Fail(exitCode int, code string, err error) error {
	return f.FailWithSuggestion(exitCode, code, err, "")
}

// FailWithSuggestion reports err with a hint and returns it wrapped with exit code
func (f *OutputFormatter) FailWithSuggestion(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, UserMessage(err), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(exitCode, err)
}

// FailService reports a service error using its mapped exit code
func (f *OutputFormatter) FailService(code string, err error) error {
	return f.Fail(ExitCodeFor(err), code, err)
}

func writeError(w io.Writer, message, suggestion string) {
	fmt.Fprintf(w, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	fmt.Printf("%+v\n", data)
	return nil
}
