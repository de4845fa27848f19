package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup matches no row or a write affects none.
var ErrNotFound = errors.New("not found")

// Querier is what single statements need; both *pgxpool.Pool and pgx.Tx fit.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the pooled connection the repositories are built on.
// Begin acquires one connection for the life of the transaction.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// noRows maps pgx.ErrNoRows to ErrNotFound.
func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
