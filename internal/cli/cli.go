package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/applyboard/internal/app"
	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/config"
	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/security"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB // nil when the App was injected
}

// NewCLI loads config, opens the database and restores the saved session.
// opts are applied after the defaults, so they can override them.
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		if dbPath, err = database.DefaultPath(); err != nil {
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	token, err := SessionToken()
	if err != nil {
		slog.Warn("could not read saved session", "error", err)
	}

	defaults := []app.Option{
		app.WithSession(auth.NewTokenSession(token, []byte(cfg.Auth.Secret))),
		app.WithLimiter(security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)),
		app.WithLogger(slog.Default()),
	}
	application := app.New(db, append(defaults, opts...)...)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
	}, nil
}

// SessionToken returns APPLYBOARD_TOKEN, or the token saved by login
func SessionToken() (string, error) {
	if token := os.Getenv("APPLYBOARD_TOKEN"); token != "" {
		return token, nil
	}
	path, err := auth.DefaultTokenPath()
	if err != nil {
		return "", err
	}
	return auth.LoadToken(path)
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.App.Close()
	if dbErr := c.db.Close(); dbErr != nil && err == nil {
		err = dbErr
	}
	return err
}
