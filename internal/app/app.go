package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/kanban"
	"github.com/thenoetrevino/applyboard/internal/notify"
	"github.com/thenoetrevino/applyboard/internal/security"
	companyservice "github.com/thenoetrevino/applyboard/internal/services/company"
	settingsservice "github.com/thenoetrevino/applyboard/internal/services/settings"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	// Broker fans events out to in-process subscribers such as the board
	Broker *events.Broker

	Session auth.Session
	logger  *slog.Logger

	// Service layer (business logic)
	CompanyService  companyservice.Service
	SettingsService settingsservice.Service
}

// New creates a new App with all services initialized.
// Without WithSession nobody is signed in and every mutation is rejected.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		session:  auth.StaticSession(""),
		notifier: notify.Discard,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.limiter == nil {
		cfg.limiter = security.NewRateLimiter(security.DefaultMaxRequests, security.DefaultWindow)
	}

	repo := database.NewRepository(db)
	if cfg.now != nil {
		repo = database.NewRepositoryWithClock(db, cfg.now)
	}

	broker := events.NewBroker()
	var publisher events.EventPublisher = broker
	if cfg.extra != nil {
		publisher = fanout{broker, cfg.extra}
	}

	companyOpts := []companyservice.Option{
		companyservice.WithLimiter(cfg.limiter),
		companyservice.WithNotifier(cfg.notifier),
		companyservice.WithPublisher(publisher),
		companyservice.WithLogger(cfg.logger),
	}
	if cfg.now != nil {
		companyOpts = append(companyOpts, companyservice.WithClock(cfg.now))
	}

	return &App{
		repo:    repo,
		Broker:  broker,
		Session: cfg.session,
		logger:  cfg.logger,
		CompanyService: companyservice.NewService(repo, cfg.session, companyOpts...),
		SettingsService: settingsservice.NewService(repo, cfg.session,
			settingsservice.WithLimiter(cfg.limiter),
			settingsservice.WithNotifier(cfg.notifier),
			settingsservice.WithPublisher(publisher),
			settingsservice.WithLogger(cfg.logger),
		),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// NewBoard builds a board over the company service with the user's saved
// column titles applied. openAddDialog is the single handler for
// add-company requests.
func (a *App) NewBoard(ctx context.Context, openAddDialog func()) *kanban.Board {
	board := kanban.NewBoard(a.CompanyService, a.SettingsService, openAddDialog)
	titles, err := a.SettingsService.ColumnTitles(ctx)
	if err != nil {
		a.logger.Debug("using default column titles", "error", err)
		return board
	}
	board.Controller().ApplyTitles(titles)
	return board
}

// Close stops the broker. The database is owned by the caller.
func (a *App) Close() error {
	return a.Broker.Close()
}

type fanout []events.EventPublisher

func (f fanout) SendEvent(e events.Event) error {
	var first error
	for _, p := range f {
		if err := p.SendEvent(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
