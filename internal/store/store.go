// Package store owns the persisted subject list. The list is stored as a
// single JSON blob in a key-value backend and every mutation is a full
// load-mutate-save cycle; the store's mutex is the atomicity boundary,
// since the backend offers no transaction the store relies on.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Harsha51888/attendance-tracker/internal/model"
)

// Domain Errors
var (
	// ErrNotFound is returned for a position outside the current list.
	ErrNotFound = errors.New("no subject at this position")
	// ErrCorruptState is returned when a persisted blob exists but does
	// not parse. It is never swallowed: resetting would destroy data.
	ErrCorruptState = errors.New("persisted subject list is corrupt")
)

// Backend is the key-value persistence contract the store runs on.
// Get reports absence via the second return value rather than an error.
type Backend interface {
	Get(ctx context.Context) (value string, found bool, err error)
	Set(ctx context.Context, value string) error
}

// SubjectStore is the durable owner of the ordered subject list.
// Position in the list is the only record identity.
type SubjectStore struct {
	mu      sync.Mutex
	backend Backend
	log     zerolog.Logger
}

// NewSubjectStore creates a SubjectStore on top of a Backend.
func NewSubjectStore(backend Backend, log zerolog.Logger) *SubjectStore {
	return &SubjectStore{
		backend: backend,
		log:     log.With().Str("component", "subject_store").Logger(),
	}
}

// Load returns the persisted list, or an empty list when nothing has been
// stored yet. A present but unparseable blob fails with ErrCorruptState.
func (s *SubjectStore) Load(ctx context.Context) ([]model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the persisted list with the given one.
func (s *SubjectStore) Save(ctx context.Context, subjects []model.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, subjects)
}

// Append validates the subject and adds it to the end of the list.
// On any validation failure nothing is persisted.
func (s *SubjectStore) Append(ctx context.Context, sub model.Subject) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(subjects, sub))
}

// UpdateByPosition records one held class for the subject at position:
// total is incremented, and attended too when the class was attended.
func (s *SubjectStore) UpdateByPosition(ctx context.Context, position int, attended bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.load(ctx)
	if err != nil {
		return err
	}
	if position < 0 || position >= len(subjects) {
		return fmt.Errorf("%w: position %d of %d", ErrNotFound, position, len(subjects))
	}

	subjects[position].Total++
	if attended {
		subjects[position].Attended++
	}
	return s.save(ctx, subjects)
}

// RemoveByPosition deletes the subject at position. Later subjects shift
// down by one, so callers holding positions must re-resolve them.
func (s *SubjectStore) RemoveByPosition(ctx context.Context, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.load(ctx)
	if err != nil {
		return err
	}
	if position < 0 || position >= len(subjects) {
		return fmt.Errorf("%w: position %d of %d", ErrNotFound, position, len(subjects))
	}

	subjects = append(subjects[:position], subjects[position+1:]...)
	return s.save(ctx, subjects)
}

func (s *SubjectStore) load(ctx context.Context) ([]model.Subject, error) {
	raw, found, err := s.backend.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load subject list: %w", err)
	}
	if !found || raw == "" {
		return []model.Subject{}, nil
	}

	var subjects []model.Subject
	if err := json.Unmarshal([]byte(raw), &subjects); err != nil {
		s.log.Error().Err(err).Msg("stored subject list failed to parse")
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if subjects == nil {
		subjects = []model.Subject{}
	}
	return subjects, nil
}

func (s *SubjectStore) save(ctx context.Context, subjects []model.Subject) error {
	raw, err := json.Marshal(subjects)
	if err != nil {
		return fmt.Errorf("encode subject list: %w", err)
	}
	if err := s.backend.Set(ctx, string(raw)); err != nil {
		return fmt.Errorf("save subject list: %w", err)
	}
	return nil
}
