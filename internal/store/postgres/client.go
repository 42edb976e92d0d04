// Package postgres implements the store over a pgx connection pool. Each
// logical operation runs as a single statement or a single transaction.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/internal/util"
)

type Client struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Client)(nil)

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	// The database may still be coming up when the server starts.
	if err := util.RetryErrWithContext(ctx, 3, pool.Ping); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{pool: pool}, nil
}

// NewWithPool wraps an existing pool, e.g. the one owned by the server.
func NewWithPool(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

func (c *Client) Close() {
	c.pool.Close()
}

// Pool exposes the underlying pool for infrastructure that speaks SQL
// directly, like the lease lock.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateConstraint maps constraint violations onto the store taxonomy:
// duplicate keys are conflicts, broken case references are missing cases.
func translateConstraint(err error, conflictMsg, notFoundMsg string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return store.Conflictf("%s", conflictMsg)
	case pgForeignKeyViolation:
		return store.NotFoundf("%s", notFoundMsg)
	}
	return err
}
