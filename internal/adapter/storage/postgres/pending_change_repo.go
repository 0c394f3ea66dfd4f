package postgres

import (
	"context"
	"errors"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PendingChangeRepo implements ports.PendingChangeRepository. Rows are keyed
// by the keccak change key so requests, confirms and cancels address the
// same tuple without recomputing it in SQL.
type PendingChangeRepo struct {
	pool Pool
}

// NewPendingChangeRepo creates a new PendingChangeRepo.
func NewPendingChangeRepo(pool Pool) *PendingChangeRepo {
	return &PendingChangeRepo{pool: pool}
}

// Create stores a pending change, replacing any expired row for the tuple.
func (r *PendingChangeRepo) Create(ctx context.Context, change *domain.PendingGuardianChange) error {
	query := `INSERT INTO pending_guardian_changes (change_key, wallet, guardian, kind, confirm_after)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (change_key) DO UPDATE SET confirm_after = EXCLUDED.confirm_after`

	_, err := r.pool.Exec(ctx, query,
		change.Key(), change.Wallet.Hex(), change.Guardian.Hex(),
		string(change.Kind), change.ConfirmAfter,
	)
	if err != nil {
		return fmt.Errorf("insert pending change: %w", err)
	}
	return nil
}

// Get fetches a pending change by its change key.
func (r *PendingChangeRepo) Get(ctx context.Context, key string) (*domain.PendingGuardianChange, error) {
	query := `SELECT wallet, guardian, kind, confirm_after
		FROM pending_guardian_changes WHERE change_key = $1`

	var (
		c                   domain.PendingGuardianChange
		wallet, guard, kind string
	)
	err := r.pool.QueryRow(ctx, query, key).Scan(&wallet, &guard, &kind, &c.ConfirmAfter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending change: %w", err)
	}
	if c.Wallet, err = domain.ParseAddress(wallet); err != nil {
		return nil, fmt.Errorf("stored change wallet: %w", err)
	}
	if c.Guardian, err = domain.ParseAddress(guard); err != nil {
		return nil, fmt.Errorf("stored change guardian: %w", err)
	}
	c.Kind = domain.GuardianChangeKind(kind)
	return &c, nil
}

// Delete removes a pending change inside the given transaction.
func (r *PendingChangeRepo) Delete(ctx context.Context, tx pgx.Tx, key string) error {
	query := `DELETE FROM pending_guardian_changes WHERE change_key = $1`
	if _, err := tx.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete pending change: %w", err)
	}
	return nil
}
