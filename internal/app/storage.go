package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/adapter/memory"
	"github.com/heartmarshall/genealogy-backend/internal/adapter/postgres"
	pgplace "github.com/heartmarshall/genealogy-backend/internal/adapter/postgres/place"
	"github.com/heartmarshall/genealogy-backend/internal/adapter/sqlite"
	sqliteplace "github.com/heartmarshall/genealogy-backend/internal/adapter/sqlite/place"
	"github.com/heartmarshall/genealogy-backend/internal/config"
	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// PlaceStore is implemented by every place repository.
type PlaceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	FindByTitle(ctx context.Context, title string, typ domain.PlaceType) (*domain.Place, error)
	List(ctx context.Context) ([]*domain.Place, error)
	Create(ctx context.Context, place *domain.Place) (uuid.UUID, error)
	Update(ctx context.Context, place *domain.Place, changedAt time.Time) error
}

// TxRunner runs fn inside a transaction carried by the context.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage bundles the place repository and transaction manager for one driver.
type Storage struct {
	Driver string
	Places PlaceStore
	Tx     TxRunner

	migrate func(ctx context.Context) error
	close   func()
}

// OpenStorage connects to the database selected by cfg.Driver.
func OpenStorage(ctx context.Context, log *slog.Logger, cfg config.DatabaseConfig) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Driver:  cfg.Driver,
			Places:  pgplace.New(pool),
			Tx:      postgres.NewTxManager(pool),
			migrate: func(ctx context.Context) error { return postgres.Migrate(ctx, log, pool) },
			close:   pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Driver:  cfg.Driver,
			Places:  sqliteplace.New(db),
			Tx:      sqlite.NewTxManager(db),
			migrate: func(ctx context.Context) error { return sqlite.Migrate(ctx, log, db) },
			close:   func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("open storage: unknown driver %q", cfg.Driver)
	}
}

// NewMemoryStorage returns a Storage that keeps places in memory.
func NewMemoryStorage() *Storage {
	store := memory.New()
	return &Storage{
		Driver: "memory",
		Places: store,
		Tx:     store,
	}
}

// Migrate applies pending schema migrations. It is a no-op for memory storage.
func (s *Storage) Migrate(ctx context.Context) error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(ctx)
}

// Close releases the underlying connections.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}
