package postgres

import (
	"context"
	"errors"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository. Addresses are stored as
// lowercase 0x-prefixed hex text.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create registers a wallet with the core.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (address, owner, nonce, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		w.Address.Hex(), w.Owner.Hex(), int64(w.Nonce), w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// Get fetches a wallet by address.
func (r *WalletRepo) Get(ctx context.Context, addr domain.Address) (*domain.Wallet, error) {
	query := `SELECT address, owner, nonce, created_at, updated_at
		FROM wallets WHERE address = $1`

	var (
		w              domain.Wallet
		addrHex, owner string
		nonce          int64
	)
	err := r.pool.QueryRow(ctx, query, addr.Hex()).Scan(
		&addrHex, &owner, &nonce, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	if w.Address, err = domain.ParseAddress(addrHex); err != nil {
		return nil, fmt.Errorf("stored wallet address: %w", err)
	}
	if w.Owner, err = domain.ParseAddress(owner); err != nil {
		return nil, fmt.Errorf("stored wallet owner: %w", err)
	}
	w.Nonce = uint64(nonce)
	return &w, nil
}

// SetOwner updates the wallet owner inside the given transaction.
func (r *WalletRepo) SetOwner(ctx context.Context, tx pgx.Tx, wallet, newOwner domain.Address) error {
	query := `UPDATE wallets SET owner = $1, updated_at = NOW() WHERE address = $2`
	tag, err := tx.Exec(ctx, query, newOwner.Hex(), wallet.Hex())
	if err != nil {
		return fmt.Errorf("set wallet owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set wallet owner: wallet not found")
	}
	return nil
}

// AdvanceNonce bumps the nonce with a compare-and-set; the WHERE clause is
// the whole replay barrier, so concurrent submissions for the same nonce
// serialize here.
func (r *WalletRepo) AdvanceNonce(ctx context.Context, wallet domain.Address, expected uint64) (bool, error) {
	query := `UPDATE wallets SET nonce = nonce + 1, updated_at = NOW()
		WHERE address = $1 AND nonce = $2`
	tag, err := r.pool.Exec(ctx, query, wallet.Hex(), int64(expected))
	if err != nil {
		return false, fmt.Errorf("advance nonce: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
