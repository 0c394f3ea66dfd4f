package domain

import "time"

// WhitelistEntry marks a target address as a pre-approved spender for a
// wallet. Activation is delayed by the security period so a compromised
// owner key cannot whitelist a drain target and sweep funds in one step.
type WhitelistEntry struct {
	Wallet      Address   `json:"wallet"`
	Target      Address   `json:"target"`
	ActiveAfter time.Time `json:"active_after"`
}

// Active reports whether the entry's security delay has elapsed.
func (e WhitelistEntry) Active(now time.Time) bool {
	return !e.ActiveAfter.IsZero() && !now.Before(e.ActiveAfter)
}
