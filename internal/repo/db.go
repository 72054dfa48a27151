// Package repo contains all database access logic for the FleetFlow API.
// Each entity has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly lets the
// transaction manager bind repos to a pgx.Tx, and lets integration tests pass
// a transaction that is rolled back after each test for free isolation.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, so the per-entity scan
// helpers can be reused for QueryRow and Query calls alike.
type scanner interface {
	Scan(dest ...any) error
}

// mapPgError converts low-level pgx errors into domain sentinels:
// no rows → ErrNotFound, unique violation → ErrDuplicate. Anything else is
// returned unchanged for the caller to wrap.
func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	return err
}
