package placetree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// GenerateHierarchy links every registered place to its immediate parent.
// Linking replaces the place's whole parent list with that single reference;
// a place whose only parent is already the resolved one is not written.
//
// ctx must carry the caller's transaction: every placeholder and link is
// written through it, and nothing is rolled back here on failure. Storage
// errors are returned wrapped and stop the run.
func (r *Resolver) GenerateHierarchy(ctx context.Context) (Result, error) {
	if r.generated {
		return Result{}, fmt.Errorf("generate hierarchy: already generated: %w", domain.ErrConflict)
	}
	r.generated = true

	var res Result
	for _, id := range r.order {
		linked, created, err := r.resolvePlace(ctx, id, r.locationByKnown[id])
		res.Created += created
		if err != nil {
			return res, err
		}
		res.Processed++
		if linked {
			res.Linked++
		} else {
			res.Unchanged++
		}
	}

	r.log.InfoContext(ctx, "place hierarchy generated",
		slog.Int("processed", res.Processed),
		slog.Int("linked", res.Linked),
		slog.Int("unchanged", res.Unchanged),
		slog.Int("created", res.Created),
	)

	return res, nil
}

// resolvePlace finds or creates the ancestors of one place and links it to
// the nearest one.
func (r *Resolver) resolvePlace(ctx context.Context, id uuid.UUID, loc domain.Location) (linked bool, created int, err error) {
	own, ok := loc.OwnLevel()
	if !ok {
		return false, 0, fmt.Errorf("place %s: %w", id, domain.NewEmptyLocationError("location"))
	}
	ancestors := loc.Ancestors()

	from := domain.LevelCountry
	parent := uuid.Nil
	if level, found, ok := findNearestAncestor(r.knownByLocation, ancestors); ok {
		from = level - 1
		parent = found
	}

	parent, created, err = r.materializeMissingAncestors(ctx, ancestors, from, own, parent)
	if err != nil {
		return false, created, fmt.Errorf("place %s: %w", id, err)
	}

	if parent == uuid.Nil {
		return false, created, nil
	}

	place, err := r.places.GetByID(ctx, id)
	if err != nil {
		return false, created, fmt.Errorf("get place %s: %w", id, err)
	}
	if len(place.Parents) == 1 && place.Parents[0].ParentID == parent {
		return false, created, nil
	}
	changedAt := place.ChangedAt
	place.Parents = []domain.PlaceRef{{ParentID: parent}}
	if err := r.places.Update(ctx, place, changedAt); err != nil {
		return false, created, fmt.Errorf("link place %s: %w", id, err)
	}

	r.log.DebugContext(ctx, "place linked",
		slog.String("place_id", id.String()),
		slog.String("parent_id", parent.String()),
	)

	return true, created, nil
}

// findNearestAncestor returns the most specific known jurisdiction that
// encloses the ancestor template. Levels are probed from street to country;
// at each non-empty level n the key is the template's suffix from n.
func findNearestAncestor(known map[domain.Location]uuid.UUID, ancestors domain.Location) (level int, id uuid.UUID, ok bool) {
	for n := 0; n < domain.LocationLevels; n++ {
		if ancestors[n] == "" {
			continue
		}
		if found, hit := known[ancestors.Suffix(n)]; hit {
			return n, found, true
		}
	}
	return 0, uuid.Nil, false
}

// missingLevels lists, least specific first, the levels in (own, from] that
// name a jurisdiction. These are the placeholders needed to connect a place
// at level own to an ancestor found above from.
func missingLevels(ancestors domain.Location, from, own int) []int {
	var levels []int
	for n := min(from, domain.LocationLevels-1); n > own; n-- {
		if ancestors[n] != "" {
			levels = append(levels, n)
		}
	}
	return levels
}

// materializeMissingAncestors creates a placeholder for every missing level,
// chaining each to the previous one starting at parent (uuid.Nil if none).
// Each placeholder is registered immediately so that later places sharing
// the jurisdiction reuse it. It returns the most specific resolved parent.
func (r *Resolver) materializeMissingAncestors(
	ctx context.Context,
	ancestors domain.Location,
	from, own int,
	parent uuid.UUID,
) (uuid.UUID, int, error) {
	created := 0
	for _, n := range missingLevels(ancestors, from, own) {
		placeholder := &domain.Place{
			Name:  ancestors[n],
			Title: ancestors.Title(n),
			Type:  domain.PlaceTypeAt(n),
		}
		if parent != uuid.Nil {
			placeholder.Parents = []domain.PlaceRef{{ParentID: parent}}
		}

		id, err := r.places.Create(ctx, placeholder)
		if err != nil {
			return uuid.Nil, created, fmt.Errorf("create placeholder %q: %w", placeholder.Title, err)
		}
		r.knownByLocation[ancestors.Suffix(n)] = id
		created++

		r.log.DebugContext(ctx, "placeholder created",
			slog.String("place_id", id.String()),
			slog.String("title", placeholder.Title),
			slog.String("type", placeholder.Type.String()),
		)

		parent = id
	}
	return parent, created, nil
}
