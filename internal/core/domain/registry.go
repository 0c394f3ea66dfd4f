package domain

import "time"

// DefaultRegistryID is the reserved registry id 0, enabled for every wallet
// by default via the inverted bit-0 convention.
const DefaultRegistryID uint8 = 0

// MaxRegistryID bounds registry ids to the width of the wallet bitmask.
const MaxRegistryID uint8 = 63

// Registry is a named set of pre-approved target contracts, administered by
// its manager (the global owner manages the default registry).
type Registry struct {
	ID        uint8     `json:"id"`
	Manager   Address   `json:"manager"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistryAuthorisation activates a contract under a registry, optionally
// guarded by a calldata filter.
type RegistryAuthorisation struct {
	RegistryID uint8   `json:"registry_id"`
	Contract   Address `json:"contract"`
	Active     bool    `json:"active"`
	Filter     *Filter `json:"filter,omitempty"`
}

// RegistryBitmap is a wallet's 64-bit mask of enabled registries.
//
// Bit 0 carries inverted semantics: an UNSET bit 0 means the default
// registry is enabled, so freshly created wallets (bitmap zero) accept the
// default registry without any toggle call. All other bits are set = enabled.
// Call sites must go through Enabled/WithEnabled; do not read bits directly.
type RegistryBitmap uint64

// Enabled reports whether the registry id is enabled for the wallet.
func (m RegistryBitmap) Enabled(id uint8) bool {
	bit := m&(1<<id) != 0
	if id == DefaultRegistryID {
		return !bit
	}
	return bit
}

// WithEnabled returns the bitmap with the registry id set to the given state.
func (m RegistryBitmap) WithEnabled(id uint8, enabled bool) RegistryBitmap {
	set := enabled
	if id == DefaultRegistryID {
		set = !enabled
	}
	if set {
		return m | (1 << id)
	}
	return m &^ (1 << id)
}
