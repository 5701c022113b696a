package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/hongminglow/warehouse-be/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.AccountStore   = (*Store)(nil)
	_ storage.DashboardStore = (*Store)(nil)
)

const (
	locationTable          = "warehouse_locations"
	defaultLocationNameCol = "nama_lokasi"
)

// locationNameCandidates lists the warehouse_locations name columns seen across
// deployments, in order of preference.
var locationNameCandidates = []string{"location_name", "nama_lokasi"}

// Store provides Postgres-backed reads for accounts and the dashboard.
type Store struct {
	pool *pgxpool.Pool
	// locationNameCol is probed once at startup; it is always one of
	// locationNameCandidates so it is safe to splice into SQL.
	locationNameCol string
}

// NewStore connects to the database and probes the schema.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	return NewStoreWithConfig(ctx, cfg)
}

// NewStoreWithConfig is NewStore for an already parsed pool config.
func NewStoreWithConfig(ctx context.Context, cfg *pgxpool.Config) (*Store, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.probeSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// LocationNameColumn reports the warehouse_locations column used for names.
func (s *Store) LocationNameColumn() string {
	return s.locationNameCol
}

func (s *Store) probeSchema(ctx context.Context) error {
	col, ok, err := ResolveColumn(ctx, s.pool, locationTable, locationNameCandidates)
	if err != nil {
		return fmt.Errorf("probe %s columns: %w", locationTable, err)
	}
	if !ok {
		log.Printf("schema probe: none of %v found on %s; using %s", locationNameCandidates, locationTable, defaultLocationNameCol)
		col = defaultLocationNameCol
	}
	s.locationNameCol = col
	return nil
}
