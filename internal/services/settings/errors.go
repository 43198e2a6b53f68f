package settings

import "errors"

// Settings-related errors
var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrRateLimited      = errors.New("too many requests")
)
