// Package settings manages the per-user preferences record, including the
// board's column titles.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/notify"
	"github.com/thenoetrevino/applyboard/internal/security"
)

// KeyRenameColumn is the rate-limit key for column renames.
const KeyRenameColumn = "column:rename"

// Service defines settings operations for the signed-in user
type Service interface {
	GetSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateNotifications(ctx context.Context, n models.NotificationSettings) error
	UpdatePreferences(ctx context.Context, p models.UserPreferences) error

	// Column titles
	ColumnTitles(ctx context.Context) (map[models.Status]string, error)
	SetColumnTitle(ctx context.Context, status models.Status, title string) error
}

// Option configures the service.
type Option func(*service)

// WithLimiter sets the limiter used for column renames.
func WithLimiter(l *security.RateLimiter) Option {
	return func(s *service) {
		if l != nil {
			s.limiter = l
		}
	}
}

// WithNotifier sets where user-facing notifications go.
func WithNotifier(n notify.Notifier) Option {
	return func(s *service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithPublisher sets the change event publisher.
func WithPublisher(p events.EventPublisher) Option {
	return func(s *service) {
		s.eventClient = p
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}

type service struct {
	repo        database.SettingsRepository
	session     auth.Session
	limiter     *security.RateLimiter
	notifier    notify.Notifier
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new settings service
func NewService(repo database.SettingsRepository, session auth.Session, opts ...Option) Service {
	s := &service{
		repo:     repo,
		session:  session,
		limiter:  security.NewRateLimiter(security.DefaultMaxRequests, security.DefaultWindow),
		notifier: notify.Discard,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSettings returns the stored settings, or defaults if none were saved.
func (s *service) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	userID, ok := s.currentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return s.load(ctx, userID)
}

func (s *service) UpdateNotifications(ctx context.Context, n models.NotificationSettings) error {
	return s.modify(ctx, "Notification settings saved", func(cur *models.UserSettings) error {
		cur.Notifications = n
		return nil
	})
}

func (s *service) UpdatePreferences(ctx context.Context, p models.UserPreferences) error {
	return s.modify(ctx, "Preferences saved", func(cur *models.UserSettings) error {
		cur.Preferences = p
		return nil
	})
}

// ColumnTitles returns only the titles the user has renamed.
func (s *service) ColumnTitles(ctx context.Context) (map[models.Status]string, error) {
	st, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return st.ColumnTitles, nil
}

// SetColumnTitle validates and persists a column title.
func (s *service) SetColumnTitle(ctx context.Context, status models.Status, title string) error {
	if !s.limiter.Allow(KeyRenameColumn) {
		s.logger.Warn("column rename rate limited", "status", status)
		s.notifier.Notify(notify.Notification{
			Level:   notify.LevelError,
			Title:   "Too many requests",
			Message: "Too many requests. Please try again later.",
		})
		return ErrRateLimited
	}
	return s.modify(ctx, "Column renamed", func(cur *models.UserSettings) error {
		if !status.IsValid() {
			return models.ErrInvalidStatus
		}
		if err := security.ValidateColumnTitle(title); err != nil {
			return err
		}
		if cur.ColumnTitles == nil {
			cur.ColumnTitles = map[models.Status]string{}
		}
		cur.ColumnTitles[status] = title
		return nil
	})
}

// modify runs read, apply, write, then notifies.
func (s *service) modify(ctx context.Context, successTitle string, apply func(*models.UserSettings) error) error {
	userID, ok := s.currentUser()
	if !ok {
		return s.fail("", ErrNotAuthenticated)
	}

	cur, err := s.load(ctx, userID)
	if err != nil {
		return s.fail(userID, err)
	}
	if err := apply(cur); err != nil {
		return s.fail(userID, err)
	}
	if err := s.repo.UpsertSettings(ctx, userID, cur); err != nil {
		return s.fail(userID, err)
	}

	if err := events.PublishWithRetry(s.eventClient, events.Event{
		Type:   events.EventSettingsChanged,
		UserID: userID,
	}, 3); err != nil {
		s.logger.Warn("failed to publish settings event", "error", err)
	}
	s.notifier.Notify(notify.Notification{Level: notify.LevelInfo, Title: successTitle})
	return nil
}

func (s *service) load(ctx context.Context, userID string) (*models.UserSettings, error) {
	st, err := s.repo.GetSettings(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return models.DefaultUserSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if st.ColumnTitles == nil {
		st.ColumnTitles = map[models.Status]string{}
	}
	return st, nil
}

func (s *service) fail(userID string, err error) error {
	s.logger.Error("settings update failed", "user_id", userID, "error", err)

	msg := "Could not save settings. Please try again."
	var verr *security.ValidationError
	switch {
	case errors.As(err, &verr):
		msg = verr.Message
	case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, ErrNotAuthenticated):
		msg = err.Error()
	}
	s.notifier.Notify(notify.Notification{
		Level:   notify.LevelError,
		Title:   "Failed to save settings",
		Message: msg,
	})
	return err
}

func (s *service) currentUser() (string, bool) {
	if s.session == nil {
		return "", false
	}
	return s.session.CurrentUser()
}
