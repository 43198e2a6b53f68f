package models

import "errors"

// Domain-specific errors for enum parsing
var (
	// ErrInvalidStatus indicates a value outside the six pipeline stages
	ErrInvalidStatus = errors.New("status must be one of: pending, applied, aptitude, interview, passed, rejected")

	// ErrInvalidPositionType indicates an unknown position type
	ErrInvalidPositionType = errors.New("position type must be one of: new-grad, intern-conversion, intern-experience")
)
