package postgres

import (
	"context"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// GuardianRepo implements ports.GuardianRepository.
type GuardianRepo struct {
	pool Pool
}

// NewGuardianRepo creates a new GuardianRepo.
func NewGuardianRepo(pool Pool) *GuardianRepo {
	return &GuardianRepo{pool: pool}
}

// Add inserts a guardian inside the given transaction.
func (r *GuardianRepo) Add(ctx context.Context, tx pgx.Tx, wallet, guardian domain.Address) error {
	query := `INSERT INTO guardians (wallet, guardian, added_at) VALUES ($1, $2, NOW())`
	if _, err := tx.Exec(ctx, query, wallet.Hex(), guardian.Hex()); err != nil {
		return fmt.Errorf("insert guardian: %w", err)
	}
	return nil
}

// Remove deletes a guardian inside the given transaction.
func (r *GuardianRepo) Remove(ctx context.Context, tx pgx.Tx, wallet, guardian domain.Address) error {
	query := `DELETE FROM guardians WHERE wallet = $1 AND guardian = $2`
	if _, err := tx.Exec(ctx, query, wallet.Hex(), guardian.Hex()); err != nil {
		return fmt.Errorf("delete guardian: %w", err)
	}
	return nil
}

// IsGuardian reports whether addr is a guardian of the wallet.
func (r *GuardianRepo) IsGuardian(ctx context.Context, wallet, addr domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM guardians WHERE wallet = $1 AND guardian = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, wallet.Hex(), addr.Hex()).Scan(&exists); err != nil {
		return false, fmt.Errorf("guardian exists: %w", err)
	}
	return exists, nil
}

// Count returns the wallet's guardian count.
func (r *GuardianRepo) Count(ctx context.Context, wallet domain.Address) (int, error) {
	query := `SELECT COUNT(*) FROM guardians WHERE wallet = $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, wallet.Hex()).Scan(&count); err != nil {
		return 0, fmt.Errorf("count guardians: %w", err)
	}
	return count, nil
}

// List returns the wallet's guardians ordered by address.
func (r *GuardianRepo) List(ctx context.Context, wallet domain.Address) ([]domain.Address, error) {
	query := `SELECT guardian FROM guardians WHERE wallet = $1 ORDER BY guardian`
	rows, err := r.pool.Query(ctx, query, wallet.Hex())
	if err != nil {
		return nil, fmt.Errorf("list guardians: %w", err)
	}
	defer rows.Close()

	var guardians []domain.Address
	for rows.Next() {
		var hex string
		if err := rows.Scan(&hex); err != nil {
			return nil, fmt.Errorf("scan guardian: %w", err)
		}
		addr, err := domain.ParseAddress(hex)
		if err != nil {
			return nil, fmt.Errorf("stored guardian address: %w", err)
		}
		guardians = append(guardians, addr)
	}
	return guardians, rows.Err()
}
