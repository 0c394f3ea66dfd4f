package postgres

import (
	"context"
	"errors"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WhitelistRepo implements ports.WhitelistRepository.
type WhitelistRepo struct {
	pool Pool
}

// NewWhitelistRepo creates a new WhitelistRepo.
func NewWhitelistRepo(pool Pool) *WhitelistRepo {
	return &WhitelistRepo{pool: pool}
}

// Set upserts a whitelist entry. Re-whitelisting restarts the security delay.
func (r *WhitelistRepo) Set(ctx context.Context, entry *domain.WhitelistEntry) error {
	query := `INSERT INTO whitelist_entries (wallet, target, active_after)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet, target) DO UPDATE SET active_after = EXCLUDED.active_after`

	_, err := r.pool.Exec(ctx, query, entry.Wallet.Hex(), entry.Target.Hex(), entry.ActiveAfter)
	if err != nil {
		return fmt.Errorf("set whitelist entry: %w", err)
	}
	return nil
}

// Get fetches a whitelist entry.
func (r *WhitelistRepo) Get(ctx context.Context, wallet, target domain.Address) (*domain.WhitelistEntry, error) {
	query := `SELECT wallet, target, active_after FROM whitelist_entries
		WHERE wallet = $1 AND target = $2`

	var (
		entry         domain.WhitelistEntry
		walletHex, tg string
	)
	err := r.pool.QueryRow(ctx, query, wallet.Hex(), target.Hex()).Scan(&walletHex, &tg, &entry.ActiveAfter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get whitelist entry: %w", err)
	}
	if entry.Wallet, err = domain.ParseAddress(walletHex); err != nil {
		return nil, fmt.Errorf("stored whitelist wallet: %w", err)
	}
	if entry.Target, err = domain.ParseAddress(tg); err != nil {
		return nil, fmt.Errorf("stored whitelist target: %w", err)
	}
	return &entry, nil
}

// Delete removes a whitelist entry. Removal takes effect immediately.
func (r *WhitelistRepo) Delete(ctx context.Context, wallet, target domain.Address) error {
	query := `DELETE FROM whitelist_entries WHERE wallet = $1 AND target = $2`
	if _, err := r.pool.Exec(ctx, query, wallet.Hex(), target.Hex()); err != nil {
		return fmt.Errorf("delete whitelist entry: %w", err)
	}
	return nil
}
