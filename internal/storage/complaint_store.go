package storage

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/models"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// SeedComplaints returns a fresh copy of the example records written on
// first use. Callers may mutate the result.
func SeedComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "C001", Category: models.CategoryFacilities, Description: "Wi-Fi in the library is very slow and disconnects frequently.", Date: "2024-07-28", Status: models.StatusResolved, Anonymous: false},
		{ID: "C002", Category: models.CategoryInfrastructure, Description: "The projector in room 3B is not working.", Date: "2024-07-29", Status: models.StatusInReview, Anonymous: true},
		{ID: "C003", Category: models.CategoryAcademics, Description: "The syllabus for course CS101 is not available online yet.", Date: "2024-07-30", Status: models.StatusPending, Anonymous: false},
	}
}

// ComplaintStore reads and writes the whole complaint collection as one JSON
// list under a single key.
type ComplaintStore struct {
	kv     KeyValue
	key    string
	logger *zap.Logger
}

// NewComplaintStore creates a store over kv using the default collection key.
func NewComplaintStore(kv KeyValue, logger *zap.Logger) *ComplaintStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintStore{kv: kv, key: config.ComplaintsKey, logger: logger}
}

// Key returns the storage key holding the collection.
func (s *ComplaintStore) Key() string { return s.key }

// Load returns the full collection, newest first. The first call against an
// empty backend seeds and persists the example records. Read or decode
// failures fall back to the seed records without persisting them; Load never
// returns an error.
func (s *ComplaintStore) Load(ctx context.Context) []models.Complaint {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("Failed to read complaints, using seed data", zap.String("key", s.key), zap.Error(err))
		return SeedComplaints()
	}

	if !found {
		seed := SeedComplaints()
		if err := s.Save(ctx, seed); err != nil {
			s.logger.Error("Failed to persist seed complaints", zap.String("key", s.key), zap.Error(err))
		} else {
			s.logger.Info("Seeded complaint storage", zap.String("key", s.key), zap.Int("count", len(seed)))
		}
		return seed
	}

	var complaints []models.Complaint
	if err := json.Unmarshal([]byte(raw), &complaints); err != nil {
		s.logger.Error("Stored complaints are corrupt, using seed data", zap.String("key", s.key), zap.Error(err))
		return SeedComplaints()
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	return complaints
}

// Save replaces the stored collection with complaints.
func (s *ComplaintStore) Save(ctx context.Context, complaints []models.Complaint) error {
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	raw, err := json.Marshal(complaints)
	if err != nil {
		return fmt.Errorf("encode complaints: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}
