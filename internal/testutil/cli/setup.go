package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/applyboard/internal/app"
	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/security"
	"github.com/thenoetrevino/applyboard/internal/testutil"
)

// TestUserID is the identity CLI tests run as
const TestUserID = "test-user"

// SetupCLITest creates a test DB and returns both the DB and App instance
// signed in as TestUserID. This function is only for CLI tests and is
// isolated in a separate package to avoid import cycles.
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	base := []app.Option{
		app.WithSession(auth.StaticSession(TestUserID)),
		// High enough that tests never trip it unless they supply their own
		app.WithLimiter(security.NewRateLimiter(1000, security.DefaultWindow)),
	}
	appInstance := app.New(db, append(base, opts...)...)

	return db, appInstance
}

// CreateTestCompany wraps testutil.CreateTestCompany for CLI tests
func CreateTestCompany(t *testing.T, db *sql.DB, name string, status models.Status) string {
	t.Helper()
	return testutil.CreateTestCompany(t, db, TestUserID, name, status)
}
