package postgres

import (
	"context"
	"fmt"

	"smart-wallet-core/internal/core/domain"
)

// ModuleRepo implements ports.ModuleRepository.
type ModuleRepo struct {
	pool Pool
}

// NewModuleRepo creates a new ModuleRepo.
func NewModuleRepo(pool Pool) *ModuleRepo {
	return &ModuleRepo{pool: pool}
}

// Add authorises a module for a wallet. Re-adding is a no-op.
func (r *ModuleRepo) Add(ctx context.Context, wallet, module domain.Address) error {
	query := `INSERT INTO wallet_modules (wallet, module) VALUES ($1, $2)
		ON CONFLICT (wallet, module) DO NOTHING`
	if _, err := r.pool.Exec(ctx, query, wallet.Hex(), module.Hex()); err != nil {
		return fmt.Errorf("insert module: %w", err)
	}
	return nil
}

// IsAuthorised reports whether the module may act on the wallet.
func (r *ModuleRepo) IsAuthorised(ctx context.Context, wallet, module domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wallet_modules WHERE wallet = $1 AND module = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, wallet.Hex(), module.Hex()).Scan(&exists); err != nil {
		return false, fmt.Errorf("module exists: %w", err)
	}
	return exists, nil
}
