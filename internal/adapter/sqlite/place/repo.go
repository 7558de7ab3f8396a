// Package place implements the Place repository on SQLite.
package place

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

const entity = "place"

// timeLayout is the text form of timestamps; it sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var placeColumns = []string{"id", "name", "title", "place_type", "created_at", "changed_at"}

// Repo provides place persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new place repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a place with its parent references.
// Returns domain.ErrNotFound if the place does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	q := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select(placeColumns...).From("places").Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get place query: %w", err)
	}

	p, err := scanPlace(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, entity, id)
	}

	if p.Parents, err = r.parents(ctx, q, id); err != nil {
		return nil, err
	}
	return p, nil
}

// FindByTitle returns the oldest place with the given title and type.
// Titles repeat across levels ("Washington, USA" names a city and a state),
// so the type is part of the match.
// Returns domain.ErrNotFound if no such place exists.
func (r *Repo) FindByTitle(ctx context.Context, title string, typ domain.PlaceType) (*domain.Place, error) {
	q := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select(placeColumns...).
		From("places").
		Where(sq.Eq{"title": title, "place_type": int(typ)}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find place query: %w", err)
	}

	p, err := scanPlace(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("place %q (%s): %w", title, typ, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find place %q: %w", title, err)
	}

	if p.Parents, err = r.parents(ctx, q, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every place ordered by title.
// Returns an empty slice (not nil) when there are no places.
func (r *Repo) List(ctx context.Context) ([]*domain.Place, error) {
	q := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select(placeColumns...).From("places").OrderBy("title", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list places query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	places := []*domain.Place{}
	byID := make(map[uuid.UUID]*domain.Place)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	refQuery, refArgs, err := sq.Select("place_id", "parent_id").From("place_refs").OrderBy("place_id", "position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list refs query: %w", err)
	}
	refRows, err := q.QueryContext(ctx, refQuery, refArgs...)
	if err != nil {
		return nil, fmt.Errorf("list place refs: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		placeID, parentID, err := scanRef(refRows)
		if err != nil {
			return nil, err
		}
		if p, ok := byID[placeID]; ok {
			p.Parents = append(p.Parents, domain.PlaceRef{ParentID: parentID})
		}
	}
	if err := refRows.Err(); err != nil {
		return nil, fmt.Errorf("list place refs: %w", err)
	}

	return places, nil
}

// Create inserts a place with its parent references and returns the new id.
// ID, CreatedAt and ChangedAt of place are filled in.
func (r *Repo) Create(ctx context.Context, place *domain.Place) (uuid.UUID, error) {
	q := sqlite.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC()

	query, args, err := sq.Insert("places").
		Columns(placeColumns...).
		Values(id.String(), place.Name, place.Title, int(place.Type), now.Format(timeLayout), now.Format(timeLayout)).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert place query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return uuid.Nil, sqlite.MapError(err, entity, id)
	}
	if err := insertRefs(ctx, q, id, place.Parents); err != nil {
		return uuid.Nil, err
	}

	place.ID = id
	place.CreatedAt = now
	place.ChangedAt = now
	return id, nil
}

// Update writes name, title, type and the full parent list of an existing
// place, storing changedAt as its modification time. Run it inside RunInTx
// to make the row and reference writes atomic.
// Returns domain.ErrNotFound if the place does not exist.
func (r *Repo) Update(ctx context.Context, place *domain.Place, changedAt time.Time) error {
	q := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Update("places").
		Set("name", place.Name).
		Set("title", place.Title).
		Set("place_type", int(place.Type)).
		Set("changed_at", changedAt.UTC().Format(timeLayout)).
		Where(sq.Eq{"id": place.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update place query: %w", err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, entity, place.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update place %s: %w", place.ID, err)
	}
	if n == 0 {
		return sqlite.MapError(sql.ErrNoRows, entity, place.ID)
	}

	del, delArgs, err := sq.Delete("place_refs").Where(sq.Eq{"place_id": place.ID.String()}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete refs query: %w", err)
	}
	if _, err := q.ExecContext(ctx, del, delArgs...); err != nil {
		return sqlite.MapError(err, entity, place.ID)
	}
	if err := insertRefs(ctx, q, place.ID, place.Parents); err != nil {
		return err
	}

	place.ChangedAt = changedAt
	return nil
}

func insertRefs(ctx context.Context, q sqlite.Querier, placeID uuid.UUID, refs []domain.PlaceRef) error {
	if len(refs) == 0 {
		return nil
	}

	insert := sq.Insert("place_refs").Columns("place_id", "parent_id", "position")
	for i, ref := range refs {
		insert = insert.Values(placeID.String(), ref.ParentID.String(), i)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert refs query: %w", err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, entity, placeID)
	}
	return nil
}

func (r *Repo) parents(ctx context.Context, q sqlite.Querier, id uuid.UUID) ([]domain.PlaceRef, error) {
	query, args, err := sq.Select("place_id", "parent_id").
		From("place_refs").
		Where(sq.Eq{"place_id": id.String()}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load refs query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load place refs: %w", err)
	}
	defer rows.Close()

	var refs []domain.PlaceRef
	for rows.Next() {
		_, parentID, err := scanRef(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, domain.PlaceRef{ParentID: parentID})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load place refs: %w", err)
	}
	return refs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlace(row scanner) (*domain.Place, error) {
	var (
		p                domain.Place
		id               string
		typ              int
		created, changed string
	)
	if err := row.Scan(&id, &p.Name, &p.Title, &typ, &created, &changed); err != nil {
		return nil, err
	}

	var err error
	if p.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse place id %q: %w", id, err)
	}
	if p.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	if p.ChangedAt, err = time.Parse(timeLayout, changed); err != nil {
		return nil, fmt.Errorf("parse changed_at %q: %w", changed, err)
	}
	p.Type = domain.PlaceType(typ)
	return &p, nil
}

func scanRef(rows *sql.Rows) (placeID, parentID uuid.UUID, err error) {
	var rawPlace, rawParent string
	if err := rows.Scan(&rawPlace, &rawParent); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("scan place ref: %w", err)
	}
	if placeID, err = uuid.Parse(rawPlace); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("parse place ref %q: %w", rawPlace, err)
	}
	if parentID, err = uuid.Parse(rawParent); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("parse parent ref %q: %w", rawParent, err)
	}
	return placeID, parentID, nil
}
