package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// CompanyRepo handles all company-related database operations.
type CompanyRepo struct {
	db  *sql.DB
	now func() time.Time
}

const companyColumns = `id, name, position, position_type, status, deadline,
	description, application_link, cover_letter, created_at`

// ListCompanies returns the user's companies, newest first, with their
// cover-letter sections in order.
func (r *CompanyRepo) ListCompanies(ctx context.Context, userID string) ([]*models.Company, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+companyColumns+`
		FROM companies
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies for user %s: %w", userID, err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	byID := make(map[string]*models.Company)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	if len(companies) == 0 {
		return companies, nil
	}

	sectionRows, err := r.db.QueryContext(ctx,
		`SELECT s.company_id, s.id, s.title, s.content, s.max_length
		FROM cover_letter_sections s
		JOIN companies c ON c.id = s.company_id
		WHERE c.user_id = ?
		ORDER BY s.company_id, s.sort_order`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cover letter sections for user %s: %w", userID, err)
	}
	defer sectionRows.Close()

	for sectionRows.Next() {
		var companyID string
		section, err := scanSection(sectionRows, &companyID)
		if err != nil {
			return nil, err
		}
		if c, ok := byID[companyID]; ok {
			c.CoverLetterSections = append(c.CoverLetterSections, section)
		}
	}
	if err := sectionRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cover letter sections: %w", err)
	}

	return companies, nil
}

// GetCompany returns one company owned by the user.
func (r *CompanyRepo) GetCompany(ctx context.Context, userID, id string) (*models.Company, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	c, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sections, err := r.sectionsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CoverLetterSections = sections
	return c, nil
}

// CreateCompany inserts the company and its sections. ID and CreatedAt are
// assigned here when unset.
func (r *CompanyRepo) CreateCompany(ctx context.Context, userID string, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = r.clock()
	}
	company.CreatedAt = company.CreatedAt.UTC()
	if company.Status == "" {
		company.Status = models.StatusPending
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO companies (
				id, user_id, name, position, position_type, status, deadline,
				description, application_link, cover_letter, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			company.ID, userID, company.Name, company.Position, string(company.PositionType),
			string(company.Status), company.Deadline, company.Description,
			company.ApplicationLink, company.CoverLetter,
			formatTime(company.CreatedAt), formatTime(company.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert company '%s': %w", company.Name, err)
		}
		return insertSections(ctx, tx, company.ID, company.CoverLetterSections)
	})
}

// UpdateCompany writes only the fields present in update. A non-nil
// CoverLetterSections replaces the stored collection.
func (r *CompanyRepo) UpdateCompany(ctx context.Context, userID, id string, update models.CompanyUpdate) error {
	sets := []string{}
	args := []any{}
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Position != nil {
		set("position", *update.Position)
	}
	if update.PositionType != nil {
		set("position_type", string(*update.PositionType))
	}
	if update.Status != nil {
		set("status", string(*update.Status))
	}
	if update.Deadline != nil {
		set("deadline", *update.Deadline)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.ApplicationLink != nil {
		set("application_link", *update.ApplicationLink)
	}
	if update.CoverLetter != nil {
		set("cover_letter", *update.CoverLetter)
	}
	set("updated_at", formatTime(r.clock()))

	query := `UPDATE companies SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND user_id = ?`
	args = append(args, id, userID)

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update company %s: %w", id, err)
		}
		if err := rowsAffected(res); err != nil {
			return err
		}

		if update.CoverLetterSections == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM cover_letter_sections WHERE company_id = ?`, id,
		); err != nil {
			return fmt.Errorf("failed to clear cover letter sections for %s: %w", id, err)
		}
		return insertSections(ctx, tx, id, *update.CoverLetterSections)
	})
}

// DeleteCompany removes the company; its sections go with it.
func (r *CompanyRepo) DeleteCompany(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM companies WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", id, err)
	}
	return rowsAffected(res)
}

func (r *CompanyRepo) sectionsFor(ctx context.Context, companyID string) ([]models.CoverLetterSection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT company_id, id, title, content, max_length
		FROM cover_letter_sections
		WHERE company_id = ?
		ORDER BY sort_order`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cover letter sections for %s: %w", companyID, err)
	}
	defer rows.Close()

	var sections []models.CoverLetterSection
	for rows.Next() {
		var ignored string
		s, err := scanSection(rows, &ignored)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *CompanyRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func insertSections(ctx context.Context, tx *sql.Tx, companyID string, sections []models.CoverLetterSection) error {
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = uuid.NewString()
		}
		s := sections[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cover_letter_sections (id, company_id, title, content, max_length, sort_order)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, companyID, s.Title, s.Content, intPtrToNull(s.MaxLength), i,
		); err != nil {
			return fmt.Errorf("failed to insert cover letter section %d for %s: %w", i, companyID, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner) (*models.Company, error) {
	var (
		c            models.Company
		positionType string
		status       string
		createdAt    string
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Position, &positionType, &status, &c.Deadline,
		&c.Description, &c.ApplicationLink, &c.CoverLetter, &createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}
	c.PositionType = models.PositionType(positionType)
	c.Status = models.Status(status)

	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = t
	return &c, nil
}

func scanSection(row scanner, companyID *string) (models.CoverLetterSection, error) {
	var (
		s         models.CoverLetterSection
		maxLength sql.NullInt64
	)
	if err := row.Scan(companyID, &s.ID, &s.Title, &s.Content, &maxLength); err != nil {
		return s, fmt.Errorf("failed to scan cover letter section: %w", err)
	}
	s.MaxLength = nullInt64ToPtr(maxLength)
	return s, nil
}
