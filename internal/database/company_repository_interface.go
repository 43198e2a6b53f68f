package database

import (
	"context"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// CompanyReader defines read operations for companies. Every read is
// scoped to the owning user.
type CompanyReader interface {
	ListCompanies(ctx context.Context, userID string) ([]*models.Company, error)
	GetCompany(ctx context.Context, userID, id string) (*models.Company, error)
}

// CompanyWriter defines write operations for companies. Update and delete
// match on id AND user_id and return ErrNotFound when nothing matched.
type CompanyWriter interface {
	CreateCompany(ctx context.Context, userID string, company *models.Company) error
	UpdateCompany(ctx context.Context, userID, id string, update models.CompanyUpdate) error
	DeleteCompany(ctx context.Context, userID, id string) error
}

// CompanyRepository combines all company-related operations.
type CompanyRepository interface {
	CompanyReader
	CompanyWriter
}
