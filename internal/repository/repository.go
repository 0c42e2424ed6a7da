package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/geokit/internal/models"
	"github.com/UnknownOlympus/geokit/pkg/measure"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database abstracts the pgx pool methods the repository needs, so tests
// can substitute a pgxmock pool.
type Database interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchSegmentsForMeasuring(ctx context.Context, limit int) ([]models.Segment, error)
	UpdateSegmentLength(ctx context.Context, segmentID int, length measure.Distance) error
	IncrementFailureCount(ctx context.Context, segmentID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// NewDatabase creates a pgx connection pool for the given credentials and
// verifies it with a ping before returning it.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
