package postgres

import (
	"context"
	"fmt"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_entries (id, wallet, kind, nonce, outcome, executed, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var nonce *int64
	if entry.Nonce != nil {
		n := int64(*entry.Nonce)
		nonce = &n
	}
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Wallet.Hex(), string(entry.Kind), nonce,
		entry.Outcome, entry.Executed, entry.ClientIP, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
