package models

// ============================================================================
// FIELD LIMITS
// ============================================================================

// Character limits for free-text company fields
const (
	MaxNameLength        = 200
	MaxPositionLength    = 200
	MaxDescriptionLength = 2000
	MaxCoverLetterLength = 10000
	MaxColumnTitleLength = 50
)

// ============================================================================
// DEADLINE FORMATS
// ============================================================================

// DeadlineDateLayout is the date-only deadline format
const DeadlineDateLayout = "2006-01-02"
