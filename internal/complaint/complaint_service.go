// Package complaint provides the complaint repository: listing, creating and
// re-statusing complaints on top of the persisted collection.
package complaint

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/models"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidInput is returned when a caller passes a missing or unknown field.
var ErrInvalidInput = errors.New("invalid input")

// StatusFilterAll selects every complaint regardless of status.
const StatusFilterAll = "All"

// Store is the persistence the repository needs. storage.ComplaintStore
// satisfies it.
type Store interface {
	Load(ctx context.Context) []models.Complaint
	Save(ctx context.Context, complaints []models.Complaint) error
}

// Notifier is told about every newly persisted complaint.
type Notifier interface {
	ComplaintCreated(ctx context.Context, c models.Complaint) error
}

// Service is the complaint repository.
type Service struct {
	Store    Store
	Notifier Notifier

	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the source of creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides complaint id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithNotifier registers a notifier for new complaints.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.Notifier = n }
}

// NewService creates a new complaint repository.
func NewService(store Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		Store:  store,
		logger: logger,
		now:    time.Now,
		newID:  newComplaintID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newComplaintID() string {
	return config.ComplaintIDPrefix + uuid.NewString()
}

// List returns the whole collection, newest first.
func (s *Service) List(ctx context.Context) []models.Complaint {
	return s.Store.Load(ctx)
}

// ListByStatus returns the complaints whose status matches filter, keeping
// collection order. An empty filter or StatusFilterAll returns everything.
func (s *Service) ListByStatus(ctx context.Context, filter string) ([]models.Complaint, error) {
	if filter == "" || filter == StatusFilterAll {
		return s.List(ctx), nil
	}
	status := models.Status(filter)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status filter %q", ErrInvalidInput, filter)
	}

	all := s.List(ctx)
	matched := make([]models.Complaint, 0, len(all))
	for _, c := range all {
		if c.Status == status {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Create validates the input, assigns id, date and Pending status, prepends the
// new complaint and persists the collection. The returned complaint is stored
// by the time Create returns unless the backend write failed, which is logged
// and not surfaced.
func (s *Service) Create(ctx context.Context, category models.Category, description string, anonymous bool) (models.Complaint, error) {
	if !category.Valid() {
		return models.Complaint{}, fmt.Errorf("%w: category %q", ErrInvalidInput, category)
	}
	if strings.TrimSpace(description) == "" {
		return models.Complaint{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	c := models.Complaint{
		ID:          s.newID(),
		Category:    category,
		Description: description,
		Date:        s.now().UTC().Format(models.DateLayout),
		Status:      models.StatusPending,
		Anonymous:   anonymous,
	}

	existing := s.Store.Load(ctx)
	updated := make([]models.Complaint, 0, len(existing)+1)
	updated = append(updated, c)
	updated = append(updated, existing...)

	if err := s.Store.Save(ctx, updated); err != nil {
		s.logger.Error("Failed to persist new complaint", zap.String("complaint_id", c.ID), zap.Error(err))
	} else {
		s.logger.Info("Complaint created",
			zap.String("complaint_id", c.ID),
			zap.String("category", string(c.Category)),
			zap.Bool("anonymous", c.Anonymous))
	}

	if s.Notifier != nil {
		if err := s.Notifier.ComplaintCreated(ctx, c); err != nil {
			s.logger.Warn("Complaint notification failed", zap.String("complaint_id", c.ID), zap.Error(err))
		}
	}

	return c, nil
}

// UpdateStatus sets the status of the complaint with the given id and returns
// the persisted collection. Transitions are unconstrained: any status may
// follow any other. An unknown id is not an error; the collection is saved
// unchanged.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.Status) ([]models.Complaint, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, status)
	}

	complaints := s.Store.Load(ctx)
	found := false
	for i := range complaints {
		if complaints[i].ID == id {
			complaints[i].Status = status
			found = true
		}
	}

	if err := s.Store.Save(ctx, complaints); err != nil {
		s.logger.Error("Failed to persist status change", zap.String("complaint_id", id), zap.Error(err))
	}
	if found {
		s.logger.Info("Complaint status updated", zap.String("complaint_id", id), zap.String("status", string(status)))
	} else {
		s.logger.Debug("Status update for unknown complaint ignored", zap.String("complaint_id", id))
	}

	return complaints, nil
}
