package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/security"
	companyservice "github.com/thenoetrevino/applyboard/internal/services/company"
	settingsservice "github.com/thenoetrevino/applyboard/internal/services/settings"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors and any failure that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found, or the
	// user is not signed in and so cannot see it.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable dates, durations or booleans.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Field length or content rules, invalid status values.
	ExitValidation = 5

	// ExitRateLimited indicates the client-side rate limiter refused the call.
	ExitRateLimited = 6
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// Exitf wraps a formatted message with an exit code
func Exitf(code int, format string, args ...any) error {
	return Exit(code, fmt.Errorf(format, args...))
}

// ExitCode returns the code main should exit with for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitCodeError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitError
}

// ExitCodeFor maps a service error to an exit code
func ExitCodeFor(err error) int {
	if kind, ok := companyservice.KindOf(err); ok {
		switch kind {
		case companyservice.KindValidation:
			return ExitValidation
		case companyservice.KindRateLimited:
			return ExitRateLimited
		case companyservice.KindAuthorization:
			return ExitNotFound
		default:
			return ExitError
		}
	}

	var verr *security.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPositionType):
		return ExitValidation
	case errors.Is(err, settingsservice.ErrRateLimited):
		return ExitRateLimited
	case errors.Is(err, database.ErrNotFound),
		errors.Is(err, companyservice.ErrNotAuthenticated),
		errors.Is(err, settingsservice.ErrNotAuthenticated),
		errors.Is(err, auth.ErrInvalidToken):
		return ExitNotFound
	default:
		return ExitError
	}
}

// UserMessage is the text shown for a service error
func UserMessage(err error) string {
	var merr *companyservice.MutationError
	if errors.As(err, &merr) {
		return merr.UserMessage()
	}
	var verr *security.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, companyservice.ErrNotAuthenticated) || errors.Is(err, settingsservice.ErrNotAuthenticated) {
		return "You need to sign in first. Run: applyboard login --user <id>"
	}
	return err.Error()
}
