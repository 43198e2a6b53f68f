package security

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// ValidateCompanyName rejects empty names, names over 200 characters and
// names that contain markup SanitizeHTML would strip.
func ValidateCompanyName(name string) error {
	return validateLabel("name", "Company name", name, models.MaxNameLength)
}

// ValidatePosition applies the company name rules to a position title.
func ValidatePosition(position string) error {
	return validateLabel("position", "Position", position, models.MaxPositionLength)
}

// ValidateColumnTitle applies the same rules to a board column title, with a
// shorter limit.
func ValidateColumnTitle(title string) error {
	return validateLabel("title", "Column title", title, models.MaxColumnTitleLength)
}

func validateLabel(field, label, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "%s is required", label)
	}
	if utf8.RuneCountInString(value) > limit {
		return invalid(field, "%s must be %d characters or less", label, limit)
	}
	if SanitizeHTML(value) != value {
		return invalid(field, "%s contains invalid characters", label)
	}
	return nil
}

// ValidateDescription only bounds length.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > models.MaxDescriptionLength {
		return invalid("description", "Description must be %d characters or less", models.MaxDescriptionLength)
	}
	return nil
}

// ValidateCoverLetterContent only bounds length.
func ValidateCoverLetterContent(content string) error {
	if utf8.RuneCountInString(content) > models.MaxCoverLetterLength {
		return invalid("coverLetter", "Cover letter must be %d characters or less", models.MaxCoverLetterLength)
	}
	return nil
}

// ValidateApplicationLink accepts an empty link or an http(s) URL.
func ValidateApplicationLink(link string) error {
	if link == "" {
		return nil
	}
	if !ValidateURL(link) {
		return invalid("applicationLink", "Please enter a valid URL (http or https)")
	}
	return nil
}

// ValidateURL reports whether raw is empty or an absolute http/https URL.
func ValidateURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
