package domain

import "time"

// Session is a delegated signer capability: the key may authorize batches
// until ExpiresAt. A zero ExpiresAt marks a single-use session that lives
// only for the enclosing relayed batch.
type Session struct {
	Wallet    Address   `json:"wallet"`
	Key       Address   `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SingleUse reports whether the session is valid only for one batch.
func (s Session) SingleUse() bool {
	return s.ExpiresAt.IsZero()
}

// Valid reports whether the session key may sign at the given instant.
func (s Session) Valid(now time.Time) bool {
	if s.Key.IsZero() {
		return false
	}
	if s.SingleUse() {
		return true
	}
	return now.Before(s.ExpiresAt)
}
