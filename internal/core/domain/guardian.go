package domain

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"
)

// GuardianChangeKind distinguishes the two directions of a guardian change.
type GuardianChangeKind string

const (
	GuardianAddition   GuardianChangeKind = "addition"
	GuardianRevocation GuardianChangeKind = "revocation"
)

// PendingGuardianChange is a time-locked guardian addition or revocation.
// It is created by a request call and consumed by confirm or cancel; at most
// one exists per (wallet, guardian, kind) tuple at a time.
type PendingGuardianChange struct {
	Wallet       Address            `json:"wallet"`
	Guardian     Address            `json:"guardian"`
	Kind         GuardianChangeKind `json:"kind"`
	ConfirmAfter time.Time          `json:"confirm_after"`
}

// TooEarly reports whether the confirmation window has not opened yet.
func (p PendingGuardianChange) TooEarly(now time.Time) bool {
	return now.Before(p.ConfirmAfter)
}

// Expired reports whether the confirmation window has closed. An expired
// pending change is unconfirmable and must be re-requested.
func (p PendingGuardianChange) Expired(now time.Time, window time.Duration) bool {
	return now.After(p.ConfirmAfter.Add(window))
}

// Key returns the storage key for this change tuple.
func (p PendingGuardianChange) Key() string {
	return GuardianChangeKey(p.Wallet, p.Guardian, p.Kind)
}

// GuardianChangeKey hashes (wallet, guardian, kind) into a stable lookup key.
func GuardianChangeKey(wallet, guardian Address, kind GuardianChangeKind) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(wallet.Bytes())
	h.Write(guardian.Bytes())
	h.Write([]byte(kind))
	return hex.EncodeToString(h.Sum(nil))
}
