package ports

import (
	"context"
	"time"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepository persists the core's view of managed wallets: current
// owner and relay nonce. Methods accepting pgx.Tx run inside transaction
// blocks so multi-store transitions (e.g. finalize recovery) stay atomic.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	Get(ctx context.Context, addr domain.Address) (*domain.Wallet, error)
	SetOwner(ctx context.Context, tx pgx.Tx, wallet, newOwner domain.Address) error
	// AdvanceNonce bumps the wallet nonce from expected to expected+1 with a
	// compare-and-set. Returns false when the stored nonce differs.
	AdvanceNonce(ctx context.Context, wallet domain.Address, expected uint64) (bool, error)
}

// GuardianRepository is the authoritative guardian-set store, mutated only
// through the guardian manager.
type GuardianRepository interface {
	Add(ctx context.Context, tx pgx.Tx, wallet, guardian domain.Address) error
	Remove(ctx context.Context, tx pgx.Tx, wallet, guardian domain.Address) error
	IsGuardian(ctx context.Context, wallet, addr domain.Address) (bool, error)
	Count(ctx context.Context, wallet domain.Address) (int, error)
	List(ctx context.Context, wallet domain.Address) ([]domain.Address, error)
}

// PendingChangeRepository stores time-locked guardian changes keyed by
// domain.GuardianChangeKey.
type PendingChangeRepository interface {
	Create(ctx context.Context, change *domain.PendingGuardianChange) error
	Get(ctx context.Context, key string) (*domain.PendingGuardianChange, error)
	Delete(ctx context.Context, tx pgx.Tx, key string) error
}

// RecoveryRepository stores the single in-flight recovery per wallet.
type RecoveryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *domain.RecoveryConfig) error
	Get(ctx context.Context, wallet domain.Address) (*domain.RecoveryConfig, error)
	Delete(ctx context.Context, tx pgx.Tx, wallet domain.Address) error
}

// LockRepository stores per-wallet locks.
type LockRepository interface {
	Set(ctx context.Context, tx pgx.Tx, lock *domain.Lock) error
	Get(ctx context.Context, wallet domain.Address) (*domain.Lock, error)
	Clear(ctx context.Context, tx pgx.Tx, wallet domain.Address) error
}

// WhitelistRepository maps (wallet, target) to an activation timestamp.
type WhitelistRepository interface {
	Set(ctx context.Context, entry *domain.WhitelistEntry) error
	Get(ctx context.Context, wallet, target domain.Address) (*domain.WhitelistEntry, error)
	Delete(ctx context.Context, wallet, target domain.Address) error
}

// RegistryRepository owns the global registry table and the per-wallet
// enabled-registries bitmap.
type RegistryRepository interface {
	CreateRegistry(ctx context.Context, reg *domain.Registry) error
	GetRegistry(ctx context.Context, id uint8) (*domain.Registry, error)
	DeleteRegistry(ctx context.Context, id uint8) error
	UpsertAuthorisation(ctx context.Context, auth *domain.RegistryAuthorisation) error
	GetAuthorisation(ctx context.Context, id uint8, contract domain.Address) (*domain.RegistryAuthorisation, error)
	GetBitmap(ctx context.Context, wallet domain.Address) (domain.RegistryBitmap, error)
	SetBitmap(ctx context.Context, wallet domain.Address, bitmap domain.RegistryBitmap) error
}

// ModuleRepository records which modules may act on a wallet.
type ModuleRepository interface {
	Add(ctx context.Context, wallet, module domain.Address) error
	IsAuthorised(ctx context.Context, wallet, module domain.Address) (bool, error)
}

// AuditRepository persists operation outcomes.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

// SessionStore holds standing session keys. Implementations expire entries
// at the session's ExpiresAt.
type SessionStore interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, wallet domain.Address) (*domain.Session, error)
	Delete(ctx context.Context, wallet domain.Address) error
}

// ReplayGuard is an atomic first-writer-wins marker, used as the fast-path
// duplicate guard for relay submissions and for direct-request nonces.
type ReplayGuard interface {
	// SetOnce returns true when the key was newly set, false when it existed.
	SetOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
