package service

import (
	"context"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"

	"github.com/rs/zerolog"
)

// AuditServiceImpl implements ports.AuditService. Recording is best-effort:
// a failed audit write never fails the operation it describes.
type AuditServiceImpl struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new AuditServiceImpl.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo, log: log}
}

// Record persists an audit entry.
func (s *AuditServiceImpl) Record(ctx context.Context, entry *domain.AuditEntry) {
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("wallet", entry.Wallet.Hex()).
			Str("kind", string(entry.Kind)).
			Msg("failed to persist audit entry")
	}
}
