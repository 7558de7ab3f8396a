// Package placetree rebuilds the containment hierarchy of imported places.
//
// Exchange formats describe a place as a flat jurisdiction tuple
// ("Springfield, Sangamon, Illinois, USA") without saying which place record
// encloses which. A Resolver collects the tuple of every imported place and,
// once the whole input has been seen, links each place to its nearest
// enclosing place, creating placeholder records for missing jurisdictions.
package placetree

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

type placeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	Create(ctx context.Context, place *domain.Place) (uuid.UUID, error)
	Update(ctx context.Context, place *domain.Place, changedAt time.Time) error
}

// Result summarizes one GenerateHierarchy run.
type Result struct {
	Processed int // registered places visited
	Linked    int // places whose parent reference was written
	Unchanged int // top-level or already linked places left untouched
	Created   int // placeholder places created
}

// Resolver accumulates location tuples of known places during an import and
// generates their hierarchy afterwards. A Resolver serves exactly one import:
// call StoreLocation for every place, then GenerateHierarchy once.
//
// A Resolver is not safe for concurrent use.
type Resolver struct {
	places placeRepo
	log    *slog.Logger

	knownByLocation map[domain.Location]uuid.UUID
	locationByKnown map[uuid.UUID]domain.Location
	order           []uuid.UUID

	generated bool
}

// NewResolver creates a Resolver that writes placeholders and links through places.
func NewResolver(log *slog.Logger, places placeRepo) *Resolver {
	return &Resolver{
		places:          places,
		log:             log.With("service", "placetree"),
		knownByLocation: make(map[domain.Location]uuid.UUID),
		locationByKnown: make(map[uuid.UUID]domain.Location),
	}
}

// StoreLocation registers an existing place under its location tuple.
//
// Registering a tuple that is already known under another id replaces the
// mapping (last registration wins). Registering an id again with a different
// tuple moves the id to the new tuple. All-empty tuples are rejected with
// domain.ErrEmptyLocation.
func (r *Resolver) StoreLocation(loc domain.Location, id uuid.UUID) error {
	if r.generated {
		return fmt.Errorf("store location: hierarchy already generated: %w", domain.ErrConflict)
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if loc.IsEmpty() {
		return domain.NewEmptyLocationError("location")
	}

	if prev, seen := r.locationByKnown[id]; seen {
		if prev != loc && r.knownByLocation[prev] == id {
			delete(r.knownByLocation, prev)
		}
	} else {
		r.order = append(r.order, id)
	}

	r.knownByLocation[loc] = id
	r.locationByKnown[id] = loc
	return nil
}

// Lookup returns the place registered (or created) for loc.
func (r *Resolver) Lookup(loc domain.Location) (uuid.UUID, bool) {
	id, ok := r.knownByLocation[loc]
	return id, ok
}

// Len returns the number of registered places.
func (r *Resolver) Len() int {
	return len(r.order)
}
