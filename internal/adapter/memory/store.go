// Package memory provides a map-backed place store used for dry runs and tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// Store keeps places in memory. It implements the same methods as the
// database repositories plus a RunInTx that restores a snapshot on failure.
//
// Store is safe for concurrent use, but transactions are not isolated from
// each other: RunInTx only guarantees rollback.
type Store struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	places map[uuid.UUID]domain.Place
	seq    int64
	now    func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		places: make(map[uuid.UUID]domain.Place),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetByID returns a copy of the place with the given id.
func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.places[id]
	if !ok {
		return nil, fmt.Errorf("place %s: %w", id, domain.ErrNotFound)
	}
	return clonePlace(p), nil
}

// FindByTitle returns the oldest place with the given title and type.
func (s *Store) FindByTitle(_ context.Context, title string, typ domain.PlaceType) (*domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *domain.Place
	for _, p := range s.places {
		if p.Title != title || p.Type != typ {
			continue
		}
		if found == nil || p.CreatedAt.Before(found.CreatedAt) ||
			(p.CreatedAt.Equal(found.CreatedAt) && p.ID.String() < found.ID.String()) {
			found = clonePlace(p)
		}
	}
	if found == nil {
		return nil, fmt.Errorf("place %q (%s): %w", title, typ, domain.ErrNotFound)
	}
	return found, nil
}

// List returns every place ordered by title, then id.
func (s *Store) List(_ context.Context) ([]*domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	places := make([]*domain.Place, 0, len(s.places))
	for _, p := range s.places {
		places = append(places, clonePlace(p))
	}
	slices.SortFunc(places, func(a, b *domain.Place) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return places, nil
}

// Create stores a new place and fills in its ID and timestamps.
// Returns domain.ErrNotFound if a parent reference points at a missing place.
func (s *Store) Create(ctx context.Context, place *domain.Place) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !place.Type.IsValid() {
		return uuid.Nil, domain.NewValidationError("type", fmt.Sprintf("unknown place type %d", place.Type))
	}

	id := uuid.New()
	if err := s.checkParents(id, place.Parents); err != nil {
		return uuid.Nil, err
	}

	// Monotonic offsets keep creation order visible to FindByTitle.
	s.seq++
	now := s.now().Add(time.Duration(s.seq))

	place.ID = id
	place.CreatedAt = now
	place.ChangedAt = now
	s.places[id] = *clonePlace(*place)
	return id, nil
}

// Update replaces name, title, type and parents of an existing place and
// stores changedAt as its modification time.
func (s *Store) Update(ctx context.Context, place *domain.Place, changedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.places[place.ID]
	if !ok {
		return fmt.Errorf("place %s: %w", place.ID, domain.ErrNotFound)
	}
	if err := s.checkParents(place.ID, place.Parents); err != nil {
		return err
	}

	existing.Name = place.Name
	existing.Title = place.Title
	existing.Type = place.Type
	existing.Parents = slices.Clone(place.Parents)
	existing.ChangedAt = changedAt
	s.places[place.ID] = existing

	place.ChangedAt = changedAt
	return nil
}

// RunInTx runs fn and restores the state from before the call if fn returns
// an error or panics. Calls are serialized.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()

	defer func() {
		if r := recover(); r != nil {
			s.restore(snapshot)
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

// Len returns the number of stored places.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.places)
}

func (s *Store) checkParents(id uuid.UUID, refs []domain.PlaceRef) error {
	for _, ref := range refs {
		if ref.ParentID == id {
			return domain.NewValidationError("parents", "place cannot enclose itself")
		}
		if _, ok := s.places[ref.ParentID]; !ok {
			return fmt.Errorf("parent place %s: %w", ref.ParentID, domain.ErrNotFound)
		}
	}
	return nil
}

func (s *Store) snapshot() map[uuid.UUID]domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := make(map[uuid.UUID]domain.Place, len(s.places))
	for id, p := range s.places {
		snap[id] = *clonePlace(p)
	}
	return snap
}

func (s *Store) restore(snap map[uuid.UUID]domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = maps.Clone(snap)
}

func clonePlace(p domain.Place) *domain.Place {
	p.Parents = slices.Clone(p.Parents)
	return &p
}
