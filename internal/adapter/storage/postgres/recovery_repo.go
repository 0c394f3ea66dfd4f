package postgres

import (
	"context"
	"errors"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RecoveryRepo implements ports.RecoveryRepository. The primary key on the
// wallet column enforces the single-recovery-in-flight invariant at the
// storage layer too.
type RecoveryRepo struct {
	pool Pool
}

// NewRecoveryRepo creates a new RecoveryRepo.
func NewRecoveryRepo(pool Pool) *RecoveryRepo {
	return &RecoveryRepo{pool: pool}
}

// Create stores a recovery inside the given transaction.
func (r *RecoveryRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.RecoveryConfig) error {
	query := `INSERT INTO recoveries (wallet, proposed_owner, execute_after, guardian_count, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query,
		rec.Wallet.Hex(), rec.ProposedOwner.Hex(), rec.ExecuteAfter,
		rec.GuardianCount, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recovery: %w", err)
	}
	return nil
}

// Get fetches the wallet's in-flight recovery.
func (r *RecoveryRepo) Get(ctx context.Context, wallet domain.Address) (*domain.RecoveryConfig, error) {
	query := `SELECT wallet, proposed_owner, execute_after, guardian_count, created_at
		FROM recoveries WHERE wallet = $1`

	var (
		rec             domain.RecoveryConfig
		walletHex, prop string
	)
	err := r.pool.QueryRow(ctx, query, wallet.Hex()).Scan(
		&walletHex, &prop, &rec.ExecuteAfter, &rec.GuardianCount, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recovery: %w", err)
	}
	if rec.Wallet, err = domain.ParseAddress(walletHex); err != nil {
		return nil, fmt.Errorf("stored recovery wallet: %w", err)
	}
	if rec.ProposedOwner, err = domain.ParseAddress(prop); err != nil {
		return nil, fmt.Errorf("stored proposed owner: %w", err)
	}
	return &rec, nil
}

// Delete removes the wallet's recovery inside the given transaction.
func (r *RecoveryRepo) Delete(ctx context.Context, tx pgx.Tx, wallet domain.Address) error {
	query := `DELETE FROM recoveries WHERE wallet = $1`
	if _, err := tx.Exec(ctx, query, wallet.Hex()); err != nil {
		return fmt.Errorf("delete recovery: %w", err)
	}
	return nil
}
