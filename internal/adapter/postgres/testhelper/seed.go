package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// UniqueName returns prefix with a short random suffix, so parallel tests
// sharing the container do not collide on titles.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedPlace inserts a place row directly, bypassing the repository.
// parents are written as place_refs in the given order.
func SeedPlace(t *testing.T, pool *pgxpool.Pool, name string, typ domain.PlaceType, parents ...uuid.UUID) domain.Place {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Place{
		ID:        uuid.New(),
		Name:      name,
		Title:     name,
		Type:      typ,
		CreatedAt: now,
		ChangedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO places (id, name, title, place_type, created_at, changed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Title, int16(p.Type), p.CreatedAt, p.ChangedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed place: %v", err)
	}

	for i, parent := range parents {
		_, err := pool.Exec(ctx,
			`INSERT INTO place_refs (place_id, parent_id, position) VALUES ($1, $2, $3)`,
			p.ID, parent, int16(i),
		)
		if err != nil {
			t.Fatalf("testhelper: seed place ref: %v", err)
		}
		p.Parents = append(p.Parents, domain.PlaceRef{ParentID: parent})
	}

	return p
}
