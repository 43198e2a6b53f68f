package company

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/applyboard/internal/security"
)

// Company-related errors
var (
	// ErrNotAuthenticated is returned by mutations when nobody is signed in
	ErrNotAuthenticated = errors.New("user not authenticated")

	// ErrRateLimited is returned when the client-side limiter rejects a call
	ErrRateLimited = errors.New("too many requests")

	// Validation errors
	ErrEmptyUpdate      = errors.New("update contains no fields")
	ErrInvalidCompanyID = errors.New("invalid company ID")
)

// ErrorKind classifies why a mutation failed.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthorization
	KindTransient
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "transient"
	}
}

// MutationError is returned by every failed Service mutation.
type MutationError struct {
	Op   string // add, update, delete
	Kind ErrorKind
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s company: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// UserMessage is the reason shown to the user. Validation failures carry
// the field-level message; store failures stay generic.
func (e *MutationError) UserMessage() string {
	switch e.Kind {
	case KindValidation:
		var verr *security.ValidationError
		if errors.As(e.Err, &verr) {
			return verr.Message
		}
		return e.Err.Error()
	case KindRateLimited:
		return "Too many requests. Please try again later."
	case KindAuthorization:
		if errors.Is(e.Err, ErrNotAuthenticated) {
			return "You need to sign in first."
		}
		return fmt.Sprintf("Could not %s the company. It may have been removed.", e.Op)
	default:
		return fmt.Sprintf("Could not %s the company. Please try again.", e.Op)
	}
}

// KindOf returns the kind of a MutationError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var merr *MutationError
	if errors.As(err, &merr) {
		return merr.Kind, true
	}
	return 0, false
}
