// Package placeimport loads flat place records into storage and rebuilds
// their containment hierarchy. It plays the part of a genealogy file
// importer as far as places are concerned.
package placeimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
	"github.com/heartmarshall/genealogy-backend/internal/service/placetree"
	"github.com/heartmarshall/genealogy-backend/pkg/ctxutil"
)

type placeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	FindByTitle(ctx context.Context, title string, typ domain.PlaceType) (*domain.Place, error)
	Create(ctx context.Context, place *domain.Place) (uuid.UUID, error)
	Update(ctx context.Context, place *domain.Place, changedAt time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds the outcome of one import run.
type Result struct {
	ImportID   uuid.UUID
	Records    int // records received
	Empty      int // records with an all-empty location
	Places     int // place records created from input
	Reused     int // existing places matched by title and type
	Duplicates int // records whose tuple was already imported
	Hierarchy  placetree.Result
	Duration   time.Duration
}

// Pipeline imports place records in a single transaction.
type Pipeline struct {
	log   *slog.Logger
	repo  placeRepo
	tx    txManager
	cfg   Config
	newID func() uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo placeRepo, tx txManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:   log.With("service", "placeimport"),
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		newID: uuid.New,
	}
}

// Run stores one place per distinct location, registers every place with
// a placetree.Resolver and generates the hierarchy. Any error rolls the
// whole import back.
func (p *Pipeline) Run(ctx context.Context, records []Record) (Result, error) {
	start := time.Now()
	res := Result{ImportID: p.newID(), Records: len(records)}
	ctx = ctxutil.WithImportID(ctx, res.ImportID)

	p.log.InfoContext(ctx, "starting place import",
		slog.Int("records", len(records)),
		slog.Bool("reuse_existing", p.cfg.ReuseExisting),
	)

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		resolver := placetree.NewResolver(p.log, p.repo)
		imported := make(map[domain.Location]uuid.UUID, len(records))

		for _, rec := range records {
			own, ok := rec.Location.OwnLevel()
			if !ok {
				res.Empty++
				p.log.DebugContext(ctx, "record without location", slog.String("ref", rec.Ref))
				continue
			}
			if _, dup := imported[rec.Location]; dup {
				res.Duplicates++
				continue
			}

			if p.cfg.ReuseExisting {
				if err := p.registerExistingAncestors(ctx, resolver, imported, rec.Location, own, &res); err != nil {
					return fmt.Errorf("record %s: %w", rec.Ref, err)
				}
			}

			id, reused, err := p.placeFor(ctx, rec.Location, own)
			if err != nil {
				return fmt.Errorf("record %s: %w", rec.Ref, err)
			}
			if reused {
				res.Reused++
			} else {
				res.Places++
			}

			imported[rec.Location] = id
			if err := resolver.StoreLocation(rec.Location, id); err != nil {
				return fmt.Errorf("record %s: %w", rec.Ref, err)
			}
		}

		h, err := resolver.GenerateHierarchy(ctx)
		if err != nil {
			return fmt.Errorf("generate hierarchy: %w", err)
		}
		res.Hierarchy = h
		return nil
	})
	res.Duration = time.Since(start)

	if err != nil {
		p.log.ErrorContext(ctx, "place import failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", res.Duration),
		)
		return Result{ImportID: res.ImportID, Records: len(records), Duration: res.Duration}, err
	}

	p.log.InfoContext(ctx, "place import completed",
		slog.Int("places", res.Places),
		slog.Int("reused", res.Reused),
		slog.Int("duplicates", res.Duplicates),
		slog.Int("empty", res.Empty),
		slog.Int("placeholders", res.Hierarchy.Created),
		slog.Int("linked", res.Hierarchy.Linked),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// placeFor returns the place for loc, creating it unless an existing place
// with the same title and type may be reused.
func (p *Pipeline) placeFor(ctx context.Context, loc domain.Location, own int) (uuid.UUID, bool, error) {
	title := loc.Title(own)

	if p.cfg.ReuseExisting {
		id, ok, err := p.findExisting(ctx, title, domain.PlaceTypeAt(own))
		if err != nil {
			return uuid.Nil, false, err
		}
		if ok {
			return id, true, nil
		}
	}

	id, err := p.repo.Create(ctx, &domain.Place{
		Name:  loc[own],
		Title: title,
		Type:  domain.PlaceTypeAt(own),
	})
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("create place %q: %w", title, err)
	}
	return id, false, nil
}

// registerExistingAncestors registers stored places matching the ancestor
// titles and levels of loc, so the resolver links to them instead of creating
// placeholders.
func (p *Pipeline) registerExistingAncestors(
	ctx context.Context,
	resolver *placetree.Resolver,
	imported map[domain.Location]uuid.UUID,
	loc domain.Location,
	own int,
	res *Result,
) error {
	for n := own + 1; n < domain.LocationLevels; n++ {
		if loc[n] == "" {
			continue
		}
		key := loc.Suffix(n)
		if _, known := imported[key]; known {
			continue
		}
		if _, known := resolver.Lookup(key); known {
			continue
		}

		id, ok, err := p.findExisting(ctx, loc.Title(n), domain.PlaceTypeAt(n))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		imported[key] = id
		res.Reused++
		if err := resolver.StoreLocation(key, id); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) findExisting(ctx context.Context, title string, typ domain.PlaceType) (uuid.UUID, bool, error) {
	existing, err := p.repo.FindByTitle(ctx, title, typ)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("find place %q: %w", title, err)
	}
	return existing.ID, true, nil
}
