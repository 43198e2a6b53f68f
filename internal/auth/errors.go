package auth

import "errors"

var (
	// ErrInvalidToken is returned for tokens that fail verification
	ErrInvalidToken = errors.New("invalid session token")

	// ErrEmptyUserID is returned when issuing a token without a subject
	ErrEmptyUserID = errors.New("user id cannot be empty")

	// ErrEmptySecret is returned when no signing secret is configured
	ErrEmptySecret = errors.New("signing secret cannot be empty")
)
