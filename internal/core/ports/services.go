package ports

import (
	"context"
	"math/big"
	"time"

	"smart-wallet-core/internal/core/domain"
)

// SignatureService builds canonical digests and recovers signer addresses
// from compact ECDSA signatures. Signature algorithm correctness is assumed;
// the core only consumes recovered addresses.
type SignatureService interface {
	// RelayDigest hashes (wallet, kind, opData, nonce) into the payload every
	// relay signature must cover.
	RelayDigest(wallet domain.Address, kind domain.OperationKind, opData []byte, nonce uint64) []byte
	// RequestDigest hashes a direct HTTP request for signer authentication.
	RequestDigest(method, path string, timestamp int64, nonce string, body []byte) []byte
	// RecoverSigner recovers the address behind a single 65-byte signature.
	RecoverSigner(digest []byte, sig []byte) (domain.Address, error)
	// RecoverSigners splits a concatenation of 65-byte signatures and
	// recovers each signer. Signers must appear in strictly ascending
	// address order; violations are rejected.
	RecoverSigners(digest []byte, sigs []byte) ([]domain.Address, error)
}

// CallExecutor reaches the underlying account/proxy contract that holds the
// wallet's funds. External collaborator; the core never sees fund storage.
type CallExecutor interface {
	Invoke(ctx context.Context, wallet domain.Address, call domain.Call) ([]byte, error)
}

// CapabilityProber checks whether a guardian candidate is an EOA or a
// contract exposing an owner accessor. Best-effort duck typing: it cannot be
// made airtight against adversarial contracts, which is an accepted gap.
type CapabilityProber interface {
	ExposesOwner(ctx context.Context, addr domain.Address) (bool, error)
}

// TokenService issues and validates bearer tokens for the global-owner
// administration endpoints.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(token string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	Subject string
}

// --- Service ports (business logic) ---

// GuardianService implements two-phase, time-locked guardian management.
// caller is the acting address; the wallet's own address stands for "the
// core acting on the owner's behalf" (relayed operations).
type GuardianService interface {
	// RequestAddition returns the pending change, or nil when the bootstrap
	// shortcut added the first guardian immediately.
	RequestAddition(ctx context.Context, caller, wallet, guardian domain.Address) (*domain.PendingGuardianChange, error)
	ConfirmAddition(ctx context.Context, wallet, guardian domain.Address) error
	CancelAddition(ctx context.Context, caller, wallet, guardian domain.Address) error
	RequestRevocation(ctx context.Context, caller, wallet, guardian domain.Address) (*domain.PendingGuardianChange, error)
	ConfirmRevocation(ctx context.Context, wallet, guardian domain.Address) error
	CancelRevocation(ctx context.Context, caller, wallet, guardian domain.Address) error
	Guardians(ctx context.Context, wallet domain.Address) ([]domain.Address, error)
	GuardianCount(ctx context.Context, wallet domain.Address) (int, error)
}

// RecoveryService drives the wallet-ownership recovery state machine.
type RecoveryService interface {
	Execute(ctx context.Context, wallet, proposedOwner domain.Address) (*domain.RecoveryConfig, error)
	Finalize(ctx context.Context, wallet domain.Address) error
	Cancel(ctx context.Context, wallet domain.Address) error
	TransferOwnership(ctx context.Context, caller, wallet, newOwner domain.Address) error
	Get(ctx context.Context, wallet domain.Address) (*domain.RecoveryConfig, error)
}

// LockService implements guardian-triggered wallet freezing.
type LockService interface {
	Lock(ctx context.Context, caller, wallet domain.Address) (*domain.Lock, error)
	Unlock(ctx context.Context, caller, wallet domain.Address) error
	IsLocked(ctx context.Context, wallet domain.Address) (bool, error)
	GetLock(ctx context.Context, wallet domain.Address) (*domain.Lock, error)
}

// DappService is the dapp/contract authorization registry.
type DappService interface {
	IsAuthorised(ctx context.Context, wallet, contract domain.Address, data []byte) (bool, error)
	ToggleRegistry(ctx context.Context, caller, wallet domain.Address, id uint8, enabled bool) error
	CreateRegistry(ctx context.Context, caller domain.Address, id uint8, manager domain.Address) error
	RemoveRegistry(ctx context.Context, caller domain.Address, id uint8) error
	AddAuthorisation(ctx context.Context, caller domain.Address, id uint8, contract domain.Address, filter *domain.Filter) error
}

// RelayService verifies and executes relayed operations.
type RelayService interface {
	Relay(ctx context.Context, req RelayRequest) (*RelayReceipt, error)
}

// RelayRequest is one signed, nonce-tagged operation submitted by a relayer.
type RelayRequest struct {
	Wallet domain.Address
	Kind   domain.OperationKind
	// OpData is the canonical JSON payload of the operation; it is covered
	// by the relay digest exactly as submitted.
	OpData []byte
	Nonce  uint64
	// Signatures is a concatenation of 65-byte compact signatures in
	// ascending signer order.
	Signatures []byte
	Session    *domain.Session
	Refund     *RefundRequest
	ClientIP   string
}

// RefundRequest carries the gas-refund parameters of a relayed submission.
type RefundRequest struct {
	Relayer  domain.Address
	GasPrice *big.Int
	GasLimit uint64
}

// RelayReceipt reports the outcome of an accepted relay. A consumed nonce
// with Executed=false means the signatures were valid but the underlying
// operation failed; the submission must not be retried with the same nonce.
type RelayReceipt struct {
	Wallet   domain.Address       `json:"wallet"`
	Kind     domain.OperationKind `json:"kind"`
	Nonce    uint64               `json:"nonce"`
	Executed bool                 `json:"executed"`
	Reason   string               `json:"reason,omitempty"`
	Refund   *big.Int             `json:"refund,omitempty"`
}

// AuditService records operation outcomes (best-effort).
type AuditService interface {
	Record(ctx context.Context, entry *domain.AuditEntry)
}

// --- Relay operation payloads (decoded from RelayRequest.OpData) ---

// GuardianOpPayload parameterizes guardian management operations.
type GuardianOpPayload struct {
	Guardian domain.Address `json:"guardian"`
}

// RecoveryOpPayload parameterizes executeRecovery and transferOwnership.
type RecoveryOpPayload struct {
	NewOwner domain.Address `json:"new_owner"`
}

// WhitelistOpPayload parameterizes whitelist mutation.
type WhitelistOpPayload struct {
	Target domain.Address `json:"target"`
}

// ModuleOpPayload parameterizes addModule.
type ModuleOpPayload struct {
	Module domain.Address `json:"module"`
}

// ToggleRegistryOpPayload parameterizes toggleDappRegistry.
type ToggleRegistryOpPayload struct {
	RegistryID uint8 `json:"registry_id"`
	Enabled    bool  `json:"enabled"`
}

// MultiCallOpPayload parameterizes multiCall and multiCallWithSession.
type MultiCallOpPayload struct {
	Calls []domain.Call `json:"calls"`
}
