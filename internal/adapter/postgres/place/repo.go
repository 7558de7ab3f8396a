// Package place implements the Place repository using PostgreSQL.
// Parent references live in the place_refs table, ordered by position.
package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/genealogy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

const entity = "place"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var placeColumns = []string{"id", "name", "title", "place_type", "created_at", "changed_at"}

// Repo provides place persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new place repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a place with its parent references.
// Returns domain.ErrNotFound if the place does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(placeColumns...).From("places").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get place query: %w", err)
	}

	p, err := scanPlace(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	refs, err := loadRefs(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	p.Parents = refs[id]

	return p, nil
}

// FindByTitle returns the oldest place with the given title and type.
// Titles repeat across levels ("Washington, USA" names a city and a state),
// so the type is part of the match.
// Returns domain.ErrNotFound if no such place exists.
func (r *Repo) FindByTitle(ctx context.Context, title string, typ domain.PlaceType) (*domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(placeColumns...).
		From("places").
		Where(sq.Eq{"title": title, "place_type": int16(typ)}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find place query: %w", err)
	}

	p, err := scanPlace(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("place %q (%s): %w", title, typ, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find place %q: %w", title, err)
	}

	refs, err := loadRefs(ctx, q, []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.Parents = refs[p.ID]

	return p, nil
}

// List returns every place ordered by title.
// Returns an empty slice (not nil) when there are no places.
func (r *Repo) List(ctx context.Context) ([]*domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(placeColumns...).From("places").OrderBy("title", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list places query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	places := []*domain.Place{}
	ids := []uuid.UUID{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	refs, err := loadRefs(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range places {
		p.Parents = refs[p.ID]
	}

	return places, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a place with its parent references and returns the new id.
// ID, CreatedAt and ChangedAt of place are filled in.
// Returns domain.ErrNotFound if a parent reference points at a missing place.
func (r *Repo) Create(ctx context.Context, place *domain.Place) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC()

	insert, args, err := psql.Insert("places").
		Columns(placeColumns...).
		Values(id, place.Name, place.Title, int16(place.Type), now, now).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert place query: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(insert, args...)
	if err := queueRefs(batch, id, place.Parents); err != nil {
		return uuid.Nil, err
	}

	if err := sendBatch(ctx, q, batch, id); err != nil {
		return uuid.Nil, err
	}

	place.ID = id
	place.CreatedAt = now
	place.ChangedAt = now
	return id, nil
}

// Update writes name, title, type and the full parent list of an existing
// place. changedAt is stored as the modification time; pass the previous
// value to leave it unchanged. The row update and the reference rewrite are
// separate round trips; run Update inside RunInTx to make them atomic.
// Returns domain.ErrNotFound if the place does not exist.
func (r *Repo) Update(ctx context.Context, place *domain.Place, changedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update, args, err := psql.Update("places").
		Set("name", place.Name).
		Set("title", place.Title).
		Set("place_type", int16(place.Type)).
		Set("changed_at", changedAt).
		Where(sq.Eq{"id": place.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update place query: %w", err)
	}

	tag, err := q.Exec(ctx, update, args...)
	if err != nil {
		return postgres.MapError(err, entity, place.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, place.ID)
	}

	del, delArgs, err := psql.Delete("place_refs").Where(sq.Eq{"place_id": place.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete refs query: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(del, delArgs...)
	if err := queueRefs(batch, place.ID, place.Parents); err != nil {
		return err
	}

	if err := sendBatch(ctx, q, batch, place.ID); err != nil {
		return err
	}

	place.ChangedAt = changedAt
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func queueRefs(batch *pgx.Batch, placeID uuid.UUID, refs []domain.PlaceRef) error {
	for i, ref := range refs {
		query, args, err := psql.Insert("place_refs").
			Columns("place_id", "parent_id", "position").
			Values(placeID, ref.ParentID, int16(i)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert ref query: %w", err)
		}
		batch.Queue(query, args...)
	}
	return nil
}

func sendBatch(ctx context.Context, q postgres.Querier, batch *pgx.Batch, id uuid.UUID) error {
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, entity, id)
		}
	}
	return nil
}

// loadRefs returns parent references grouped by place id.
func loadRefs(ctx context.Context, q postgres.Querier, ids []uuid.UUID) (map[uuid.UUID][]domain.PlaceRef, error) {
	refs := make(map[uuid.UUID][]domain.PlaceRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	query, args, err := psql.Select("place_id", "parent_id").
		From("place_refs").
		Where(sq.Expr("place_id = ANY(?)", ids)).
		OrderBy("place_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load refs query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load place refs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var placeID, parentID uuid.UUID
		if err := rows.Scan(&placeID, &parentID); err != nil {
			return nil, fmt.Errorf("scan place ref: %w", err)
		}
		refs[placeID] = append(refs[placeID], domain.PlaceRef{ParentID: parentID})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load place refs: %w", err)
	}

	return refs, nil
}

func scanPlace(row pgx.Row) (*domain.Place, error) {
	var (
		p   domain.Place
		typ int16
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Title, &typ, &p.CreatedAt, &p.ChangedAt); err != nil {
		return nil, err
	}
	p.Type = domain.PlaceType(typ)
	return &p, nil
}
