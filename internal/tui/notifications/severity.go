package notifications

import "github.com/thenoetrevino/applyboard/internal/notify"

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

// SeverityOf maps a notification level to its banner severity.
func SeverityOf(level notify.Level) Severity {
	if level == notify.LevelError {
		return Error
	}
	return Info
}
