package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Status is the pipeline stage of a job application and the sole grouping key
// for the board.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApplied   Status = "applied"
	StatusAptitude  Status = "aptitude"
	StatusInterview Status = "interview"
	StatusPassed    Status = "passed"
	StatusRejected  Status = "rejected"
)

// Statuses returns every pipeline stage in board order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusApplied,
		StatusAptitude,
		StatusInterview,
		StatusPassed,
		StatusRejected,
	}
}

// IsValid reports whether s is one of the six pipeline stages.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApplied, StatusAptitude, StatusInterview, StatusPassed, StatusRejected:
		return true
	}
	return false
}

// IsActive reports whether the application is still in progress
// (submitted and not yet decided).
func (s Status) IsActive() bool {
	return s.IsValid() && s != StatusPending && s != StatusPassed && s != StatusRejected
}

// IsClosed reports whether the application has a final outcome.
func (s Status) IsClosed() bool {
	return s == StatusPassed || s == StatusRejected
}

// ParseStatus maps user input to a Status, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// PositionType classifies the kind of opening applied to.
type PositionType string

const (
	PositionTypeNone             PositionType = ""
	PositionTypeNewGrad          PositionType = "new-grad"
	PositionTypeInternConversion PositionType = "intern-conversion"
	PositionTypeInternExperience PositionType = "intern-experience"
)

// IsValid reports whether p is empty or one of the known position types.
func (p PositionType) IsValid() bool {
	switch p {
	case PositionTypeNone, PositionTypeNewGrad, PositionTypeInternConversion, PositionTypeInternExperience:
		return true
	}
	return false
}

// ParsePositionType maps user input to a PositionType.
func ParsePositionType(raw string) (PositionType, error) {
	p := PositionType(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", ErrInvalidPositionType
	}
	return p, nil
}

// CoverLetterSection is one titled block of a cover letter.
// MaxLength is advisory: exceeding it only produces a warning.
type CoverLetterSection struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	MaxLength *int   `json:"maxLength,omitempty"`
}

// OverLimit reports whether the content is longer than MaxLength.
func (s CoverLetterSection) OverLimit() bool {
	if s.MaxLength == nil {
		return false
	}
	return utf8.RuneCountInString(s.Content) > *s.MaxLength
}

// Company is one job application owned by a single user.
// ID and CreatedAt are assigned at creation and never change.
type Company struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Position            string               `json:"position"`
	PositionType        PositionType         `json:"positionType,omitempty"`
	Status              Status               `json:"status"`
	Deadline            string               `json:"deadline,omitempty"`
	Description         string               `json:"description,omitempty"`
	ApplicationLink     string               `json:"applicationLink,omitempty"`
	CoverLetter         string               `json:"coverLetter,omitempty"`
	CoverLetterSections []CoverLetterSection `json:"coverLetterSections,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// GetID returns the company ID, used by quiet CLI output.
func (c *Company) GetID() string {
	return c.ID
}

// Clone returns a deep copy so callers can't mutate shared state.
func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	out := *c
	if c.CoverLetterSections != nil {
		out.CoverLetterSections = make([]CoverLetterSection, len(c.CoverLetterSections))
		for i, s := range c.CoverLetterSections {
			out.CoverLetterSections[i] = s
			if s.MaxLength != nil {
				v := *s.MaxLength
				out.CoverLetterSections[i].MaxLength = &v
			}
		}
	}
	return &out
}

// CompanyDraft holds the user-supplied fields of a company that has not
// been persisted yet.
type CompanyDraft struct {
	Name                string
	Position            string
	PositionType        PositionType
	Status              Status // empty means pending
	Deadline            string
	Description         string
	ApplicationLink     string
	CoverLetter         string
	CoverLetterSections []CoverLetterSection
}

// CompanyUpdate is a partial update. Nil fields are left untouched.
// A non-nil CoverLetterSections replaces the whole collection.
type CompanyUpdate struct {
	Name                *string
	Position            *string
	PositionType        *PositionType
	Status              *Status
	Deadline            *string
	Description         *string
	ApplicationLink     *string
	CoverLetter         *string
	CoverLetterSections *[]CoverLetterSection
}

// IsEmpty reports whether the update touches no field at all.
func (u CompanyUpdate) IsEmpty() bool {
	return u.Name == nil && u.Position == nil && u.PositionType == nil &&
		u.Status == nil && u.Deadline == nil && u.Description == nil &&
		u.ApplicationLink == nil && u.CoverLetter == nil && u.CoverLetterSections == nil
}

// StatusUpdate builds the update issued when a card changes column.
func StatusUpdate(status Status) CompanyUpdate {
	return CompanyUpdate{Status: &status}
}
