package dto

import "encoding/json"

// RelaySubmission is the request body for POST /relay: one signed operation
// submitted by a relayer on behalf of a wallet.
type RelaySubmission struct {
	Wallet string `json:"wallet" binding:"required,eth_addr"`
	Kind   string `json:"kind" binding:"required,max=64"`
	// OpData is the operation payload, passed through verbatim because the
	// relay digest covers its exact bytes.
	OpData json.RawMessage `json:"op_data"`
	Nonce  uint64          `json:"nonce"`
	// Signatures is the hex-encoded concatenation of 65-byte compact
	// signatures in ascending signer order.
	Signatures string          `json:"signatures" binding:"omitempty,hex_blob"`
	Session    *SessionPayload `json:"session,omitempty"`
	Refund     *RefundPayload  `json:"refund,omitempty"`
}

// SessionPayload registers a session key alongside a session-signed batch.
type SessionPayload struct {
	Key string `json:"key" binding:"required,eth_addr"`
	// ExpiresAt is a Unix timestamp; zero marks a single-use session.
	ExpiresAt int64 `json:"expires_at"`
}

// RefundPayload carries gas-refund parameters for the relayer.
type RefundPayload struct {
	Relayer  string `json:"relayer" binding:"required,eth_addr"`
	GasPrice string `json:"gas_price" binding:"required,numeric"`
	GasLimit uint64 `json:"gas_limit"`
}

// RelayReceiptResponse reports the outcome of an accepted relay.
type RelayReceiptResponse struct {
	Wallet   string `json:"wallet"`
	Kind     string `json:"kind"`
	Nonce    uint64 `json:"nonce"`
	Executed bool   `json:"executed"`
	Reason   string `json:"reason,omitempty"`
	Refund   string `json:"refund,omitempty"`
}

// CreateWalletRequest registers a wallet with the core.
type CreateWalletRequest struct {
	Address string `json:"address" binding:"required,eth_addr"`
	Owner   string `json:"owner" binding:"required,eth_addr"`
}

// WalletResponse is the response body for wallet queries.
type WalletResponse struct {
	Address   string `json:"address"`
	Owner     string `json:"owner"`
	Nonce     uint64 `json:"nonce"`
	CreatedAt string `json:"created_at"`
}

// GuardianRequest names the guardian of a guardian-management call.
type GuardianRequest struct {
	Guardian string `json:"guardian" binding:"required,eth_addr"`
}

// PendingChangeResponse describes a time-locked guardian change.
type PendingChangeResponse struct {
	Wallet       string `json:"wallet"`
	Guardian     string `json:"guardian"`
	Kind         string `json:"kind"`
	ConfirmAfter string `json:"confirm_after"`
}

// GuardianListResponse lists a wallet's guardian set.
type GuardianListResponse struct {
	Guardians []string `json:"guardians"`
	Count     int      `json:"count"`
}

// LockResponse describes a wallet's lock state.
type LockResponse struct {
	Wallet       string `json:"wallet"`
	Locked       bool   `json:"locked"`
	ReleaseAfter string `json:"release_after,omitempty"`
	Imposer      string `json:"imposer,omitempty"`
}

// RecoveryResponse describes an in-flight recovery.
type RecoveryResponse struct {
	Wallet        string `json:"wallet"`
	ProposedOwner string `json:"proposed_owner"`
	ExecuteAfter  string `json:"execute_after"`
	GuardianCount int    `json:"guardian_count"`
}

// AdminTokenResponse is the response body for a successful admin token issue.
type AdminTokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateRegistryRequest registers a new dapp registry.
type CreateRegistryRequest struct {
	ID      uint8  `json:"id" binding:"required,min=1,max=63"`
	Manager string `json:"manager" binding:"required,eth_addr"`
}

// FilterPayload is the optional calldata filter of an authorisation.
type FilterPayload struct {
	Type      string   `json:"type" binding:"required,oneof=method-allowlist value-only"`
	Selectors []string `json:"selectors,omitempty" binding:"omitempty,dive,hex_blob"`
}

// AuthorisationRequest activates a contract under a registry.
type AuthorisationRequest struct {
	Contract string         `json:"contract" binding:"required,eth_addr"`
	Filter   *FilterPayload `json:"filter,omitempty"`
}
