package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/security"
	companyservice "github.com/thenoetrevino/applyboard/internal/services/company"
	settingsservice "github.com/thenoetrevino/applyboard/internal/services/settings"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"mutation validation", &companyservice.MutationError{Op: "add", Kind: companyservice.KindValidation, Err: errors.New("x")}, ExitValidation},
		{"mutation rate limited", &companyservice.MutationError{Op: "add", Kind: companyservice.KindRateLimited, Err: companyservice.ErrRateLimited}, ExitRateLimited},
		{"mutation authorization", &companyservice.MutationError{Op: "delete", Kind: companyservice.KindAuthorization, Err: database.ErrNotFound}, ExitNotFound},
		{"mutation transient", &companyservice.MutationError{Op: "update", Kind: companyservice.KindTransient, Err: errors.New("disk")}, ExitError},
		{"field validation", &security.ValidationError{Field: "title", Message: "bad"}, ExitValidation},
		{"bad status", fmt.Errorf("wrap: %w", models.ErrInvalidStatus), ExitValidation},
		{"settings rate limited", settingsservice.ErrRateLimited, ExitRateLimited},
		{"not found", fmt.Errorf("get: %w", database.ErrNotFound), ExitNotFound},
		{"not signed in", companyservice.ErrNotAuthenticated, ExitNotFound},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("wrapped: %w", Exitf(ExitUsage, "missing %s", "id"))))
}

func TestUserMessage(t *testing.T) {
	merr := &companyservice.MutationError{Op: "add", Kind: companyservice.KindRateLimited, Err: companyservice.ErrRateLimited}
	assert.Equal(t, "Too many requests. Please try again later.", UserMessage(merr))
	assert.Contains(t, UserMessage(settingsservice.ErrNotAuthenticated), "sign in")
}
