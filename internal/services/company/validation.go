package company

import (
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/security"
)

func validateDraft(d models.CompanyDraft) error {
	if err := security.ValidateCompanyName(d.Name); err != nil {
		return err
	}
	if err := security.ValidatePosition(d.Position); err != nil {
		return err
	}
	if d.Description != "" {
		if err := security.ValidateDescription(d.Description); err != nil {
			return err
		}
	}
	if d.ApplicationLink != "" {
		if err := security.ValidateApplicationLink(d.ApplicationLink); err != nil {
			return err
		}
	}
	if d.Status != "" && !d.Status.IsValid() {
		return models.ErrInvalidStatus
	}
	if !d.PositionType.IsValid() {
		return models.ErrInvalidPositionType
	}
	return validateCoverLetter(d.CoverLetter, d.CoverLetterSections)
}

// validateUpdate checks only the fields the update carries. Untouched
// fields were validated when they were written.
func validateUpdate(u models.CompanyUpdate) error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.Name != nil {
		if err := security.ValidateCompanyName(*u.Name); err != nil {
			return err
		}
	}
	if u.Position != nil {
		if err := security.ValidatePosition(*u.Position); err != nil {
			return err
		}
	}
	if u.Description != nil {
		if err := security.ValidateDescription(*u.Description); err != nil {
			return err
		}
	}
	if u.ApplicationLink != nil {
		if err := security.ValidateApplicationLink(*u.ApplicationLink); err != nil {
			return err
		}
	}
	if u.Status != nil && !u.Status.IsValid() {
		return models.ErrInvalidStatus
	}
	if u.PositionType != nil && !u.PositionType.IsValid() {
		return models.ErrInvalidPositionType
	}

	coverLetter := ""
	if u.CoverLetter != nil {
		coverLetter = *u.CoverLetter
	}
	var sections []models.CoverLetterSection
	if u.CoverLetterSections != nil {
		sections = *u.CoverLetterSections
	}
	return validateCoverLetter(coverLetter, sections)
}

func validateCoverLetter(letter string, sections []models.CoverLetterSection) error {
	if err := security.ValidateCoverLetterContent(letter); err != nil {
		return err
	}
	for _, s := range sections {
		if err := security.ValidateCoverLetterContent(s.Content); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeSections(in []models.CoverLetterSection) []models.CoverLetterSection {
	if in == nil {
		return nil
	}
	out := make([]models.CoverLetterSection, len(in))
	for i, s := range in {
		out[i] = s
		out[i].Title = security.SanitizeHTML(s.Title)
		out[i].Content = security.SanitizeHTML(s.Content)
		if s.MaxLength != nil {
			v := *s.MaxLength
			out[i].MaxLength = &v
		}
	}
	return out
}

func sanitizeUpdate(u models.CompanyUpdate) models.CompanyUpdate {
	out := u
	if u.Name != nil {
		v := security.SanitizeHTML(*u.Name)
		out.Name = &v
	}
	if u.Position != nil {
		v := security.SanitizeHTML(*u.Position)
		out.Position = &v
	}
	if u.Description != nil {
		v := security.SanitizeHTML(*u.Description)
		out.Description = &v
	}
	if u.CoverLetterSections != nil {
		v := sanitizeSections(*u.CoverLetterSections)
		if v == nil {
			v = []models.CoverLetterSection{}
		}
		out.CoverLetterSections = &v
	}
	return out
}

// sanitizeRead scrubs stored text again on the way out.
func sanitizeRead(c *models.Company) {
	c.Name = security.SanitizeHTML(c.Name)
	c.Position = security.SanitizeHTML(c.Position)
	c.Description = security.SanitizeHTML(c.Description)
	c.CoverLetterSections = sanitizeSections(c.CoverLetterSections)
}
