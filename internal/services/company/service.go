package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/notify"
	"github.com/thenoetrevino/applyboard/internal/security"
)

// Rate-limit keys, one per mutation.
const (
	KeyAdd    = "company:add"
	KeyUpdate = "company:update"
	KeyDelete = "company:delete"
)

// Service owns the signed-in user's company list and is the only writer
// of companies. Every mutation runs rate limit, auth, validation, write,
// refetch and notification in that order.
type Service interface {
	// Read operations
	Companies() []*models.Company
	FetchCompanies(ctx context.Context) ([]*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)

	// Write operations
	AddCompany(ctx context.Context, draft models.CompanyDraft) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, update models.CompanyUpdate) error
	UpdateStatus(ctx context.Context, id string, status models.Status) error
	DeleteCompany(ctx context.Context, id string) error
}

// Option configures the service.
type Option func(*service)

// WithLimiter replaces the default limiter (10 calls per minute per key).
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

// WithClock sets the time source for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// service implements Service
type service struct {
	repo        database.CompanyRepository
	session     auth.Session
	limiter     *security.RateLimiter
	notifier    notify.Notifier
	eventClient events.EventPublisher
	logger      *slog.Logger
	now         func() time.Time

	mu        sync.RWMutex
	companies []*models.Company
}

// NewService creates a new company service
func NewService(repo database.CompanyRepository, session auth.Session, opts ...Option) Service {
	s := &service{
		repo:      repo,
		session:   session,
		limiter:   security.NewRateLimiter(security.DefaultMaxRequests, security.DefaultWindow),
		notifier:  notify.Discard,
		logger:    slog.Default(),
		now:       time.Now,
		companies: []*models.Company{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Companies returns a copy of the last fetched list.
func (s *service) Companies() []*models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.companies)
}

// FetchCompanies reloads the list from the store. With nobody signed in
// it returns an empty list.
func (s *service) FetchCompanies(ctx context.Context) ([]*models.Company, error) {
	userID, ok := s.currentUser()
	if !ok {
		s.replace([]*models.Company{})
		return []*models.Company{}, nil
	}
	if err := s.refresh(ctx, userID); err != nil {
		return nil, err
	}
	return s.Companies(), nil
}

// GetCompany loads one of the user's companies directly from the store.
func (s *service) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	userID, ok := s.currentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if id == "" {
		return nil, ErrInvalidCompanyID
	}
	c, err := s.repo.GetCompany(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", id, err)
	}
	sanitizeRead(c)
	return c, nil
}

// AddCompany validates, sanitizes and stores a new company for the user.
func (s *service) AddCompany(ctx context.Context, draft models.CompanyDraft) (*models.Company, error) {
	const op = "add"

	if !s.limiter.Allow(KeyAdd) {
		return nil, s.fail(op, KindRateLimited, "", "", ErrRateLimited)
	}
	userID, ok := s.currentUser()
	if !ok {
		return nil, s.fail(op, KindAuthorization, "", "", ErrNotAuthenticated)
	}
	if err := validateDraft(draft); err != nil {
		return nil, s.fail(op, KindValidation, userID, "", err)
	}

	status := draft.Status
	if status == "" {
		status = models.StatusPending
	}
	c := &models.Company{
		Name:                security.SanitizeHTML(draft.Name),
		Position:            security.SanitizeHTML(draft.Position),
		PositionType:        draft.PositionType,
		Status:              status,
		Deadline:            draft.Deadline,
		Description:         security.SanitizeHTML(draft.Description),
		ApplicationLink:     draft.ApplicationLink,
		CoverLetter:         draft.CoverLetter,
		CoverLetterSections: sanitizeSections(draft.CoverLetterSections),
		CreatedAt:           s.now(),
	}

	if err := s.repo.CreateCompany(ctx, userID, c); err != nil {
		return nil, s.fail(op, classify(err), userID, "", err)
	}

	s.afterWrite(ctx, userID, c.ID)
	s.notifier.Notify(notify.Notification{
		Level:   notify.LevelInfo,
		Title:   "Company added",
		Message: fmt.Sprintf("%s has been added.", c.Name),
	})
	return c.Clone(), nil
}

// UpdateCompany writes the fields present in update, scoped to the user.
func (s *service) UpdateCompany(ctx context.Context, id string, update models.CompanyUpdate) error {
	return s.update(ctx, id, update, "Company updated")
}

// UpdateStatus moves a company to another pipeline stage.
func (s *service) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	return s.update(ctx, id, models.StatusUpdate(status), "Status updated")
}

func (s *service) update(ctx context.Context, id string, update models.CompanyUpdate, successTitle string) error {
	const op = "update"

	if !s.limiter.Allow(KeyUpdate) {
		return s.fail(op, KindRateLimited, "", id, ErrRateLimited)
	}
	userID, ok := s.currentUser()
	if !ok {
		return s.fail(op, KindAuthorization, "", id, ErrNotAuthenticated)
	}
	if id == "" {
		return s.fail(op, KindValidation, userID, id, ErrInvalidCompanyID)
	}
	if err := validateUpdate(update); err != nil {
		return s.fail(op, KindValidation, userID, id, err)
	}

	sanitized := sanitizeUpdate(update)
	if err := s.repo.UpdateCompany(ctx, userID, id, sanitized); err != nil {
		return s.fail(op, classify(err), userID, id, err)
	}

	s.afterWrite(ctx, userID, id)
	s.notifier.Notify(notify.Notification{
		Level: notify.LevelInfo,
		Title: successTitle,
	})
	return nil
}

// DeleteCompany removes one of the user's companies.
func (s *service) DeleteCompany(ctx context.Context, id string) error {
	const op = "delete"

	if !s.limiter.Allow(KeyDelete) {
		return s.fail(op, KindRateLimited, "", id, ErrRateLimited)
	}
	userID, ok := s.currentUser()
	if !ok {
		return s.fail(op, KindAuthorization, "", id, ErrNotAuthenticated)
	}
	if id == "" {
		return s.fail(op, KindValidation, userID, id, ErrInvalidCompanyID)
	}

	if err := s.repo.DeleteCompany(ctx, userID, id); err != nil {
		return s.fail(op, classify(err), userID, id, err)
	}

	s.afterWrite(ctx, userID, id)
	s.notifier.Notify(notify.Notification{
		Level: notify.LevelInfo,
		Title: "Company deleted",
	})
	return nil
}

func (s *service) currentUser() (string, bool) {
	if s.session == nil {
		return "", false
	}
	return s.session.CurrentUser()
}

// refresh replaces the snapshot only on success.
func (s *service) refresh(ctx context.Context, userID string) error {
	list, err := s.repo.ListCompanies(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch companies",
			"operation", "fetch",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to fetch companies: %w", err)
	}
	for _, c := range list {
		sanitizeRead(c)
	}
	s.replace(list)
	return nil
}

func (s *service) replace(list []*models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = list
}

// afterWrite runs once the write is committed. Neither step can fail the
// mutation.
func (s *service) afterWrite(ctx context.Context, userID, companyID string) {
	if err := s.refresh(ctx, userID); err != nil {
		s.logger.Warn("refetch after write failed; list may be stale",
			"user_id", userID,
			"company_id", companyID,
			"error", err)
	}
	if err := events.PublishWithRetry(s.eventClient, events.Event{
		Type:      events.EventCompaniesChanged,
		UserID:    userID,
		CompanyID: companyID,
		Timestamp: s.now(),
	}, 3); err != nil {
		s.logger.Warn("failed to publish company event", "company_id", companyID, "error", err)
	}
}

// fail logs, notifies and wraps err. The snapshot is never touched.
func (s *service) fail(op string, kind ErrorKind, userID, companyID string, err error) error {
	merr := &MutationError{Op: op, Kind: kind, Err: err}

	attrs := []any{
		"operation", op,
		"kind", kind.String(),
		"user_id", userID,
		"company_id", companyID,
		"error", err,
	}
	if kind == KindRateLimited {
		s.logger.Warn("company mutation rate limited", attrs...)
	} else {
		s.logger.Error("company mutation failed", attrs...)
	}

	title := fmt.Sprintf("Failed to %s company", op)
	if kind == KindRateLimited {
		title = "Too many requests"
	}
	s.notifier.Notify(notify.Notification{
		Level:   notify.LevelError,
		Title:   title,
		Message: merr.UserMessage(),
	})
	return merr
}

func classify(err error) ErrorKind {
	if errors.Is(err, database.ErrNotFound) {
		return KindAuthorization
	}
	return KindTransient
}

func cloneAll(list []*models.Company) []*models.Company {
	out := make([]*models.Company, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}
