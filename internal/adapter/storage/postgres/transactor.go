package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out pgx transactions for multi-store writes, e.g. a
// recovery record that must land together with the lock it imposes.
type Transactor struct {
	pool Pool
}

// NewTransactor wraps the connection pool behind the DBTransactor port.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction on the underlying pool.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
