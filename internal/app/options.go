package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/notify"
	"github.com/thenoetrevino/applyboard/internal/security"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	session  auth.Session
	notifier notify.Notifier
	limiter  *security.RateLimiter
	extra    events.EventPublisher
	logger   *slog.Logger
	now      func() time.Time
}

// WithSession sets who the services act for
func WithSession(s auth.Session) Option {
	return func(cfg *appConfig) {
		cfg.session = s
	}
}

// WithNotifier sets where toasts go
func WithNotifier(n notify.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifier = n
	}
}

// WithLimiter shares one rate limiter between the services
func WithLimiter(l *security.RateLimiter) Option {
	return func(cfg *appConfig) {
		cfg.limiter = l
	}
}

// WithEventPublisher forwards every event to ec as well as the in-process broker
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.extra = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the time source for stored timestamps
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
