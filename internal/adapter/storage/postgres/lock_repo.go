package postgres

import (
	"context"
	"errors"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LockRepo implements ports.LockRepository.
type LockRepo struct {
	pool Pool
}

// NewLockRepo creates a new LockRepo.
func NewLockRepo(pool Pool) *LockRepo {
	return &LockRepo{pool: pool}
}

// Set upserts the wallet's lock inside the given transaction. A new lock
// overwrites an expired one.
func (r *LockRepo) Set(ctx context.Context, tx pgx.Tx, lock *domain.Lock) error {
	query := `INSERT INTO locks (wallet, release_after, imposer)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet) DO UPDATE SET release_after = EXCLUDED.release_after, imposer = EXCLUDED.imposer`

	_, err := tx.Exec(ctx, query, lock.Wallet.Hex(), lock.ReleaseAfter, string(lock.Imposer))
	if err != nil {
		return fmt.Errorf("set lock: %w", err)
	}
	return nil
}

// Get fetches the wallet's lock.
func (r *LockRepo) Get(ctx context.Context, wallet domain.Address) (*domain.Lock, error) {
	query := `SELECT wallet, release_after, imposer FROM locks WHERE wallet = $1`

	var (
		lock             domain.Lock
		walletHex, impos string
	)
	err := r.pool.QueryRow(ctx, query, wallet.Hex()).Scan(&walletHex, &lock.ReleaseAfter, &impos)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lock: %w", err)
	}
	if lock.Wallet, err = domain.ParseAddress(walletHex); err != nil {
		return nil, fmt.Errorf("stored lock wallet: %w", err)
	}
	lock.Imposer = domain.OperationKind(impos)
	return &lock, nil
}

// Clear removes the wallet's lock inside the given transaction.
func (r *LockRepo) Clear(ctx context.Context, tx pgx.Tx, wallet domain.Address) error {
	query := `DELETE FROM locks WHERE wallet = $1`
	if _, err := tx.Exec(ctx, query, wallet.Hex()); err != nil {
		return fmt.Errorf("clear lock: %w", err)
	}
	return nil
}
