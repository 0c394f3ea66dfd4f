package domain

import "time"

// RecoveryConfig is the single in-flight ownership recovery of a wallet.
// Its existence is the PendingRecovery state; finalize or cancel deletes it.
type RecoveryConfig struct {
	Wallet        Address   `json:"wallet"`
	ProposedOwner Address   `json:"proposed_owner"`
	ExecuteAfter  time.Time `json:"execute_after"`
	// GuardianCount snapshots the guardian set size when recovery started;
	// the cancel quorum is derived from it, not from the live count.
	GuardianCount int       `json:"guardian_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Finalizable reports whether the recovery period has elapsed.
func (r RecoveryConfig) Finalizable(now time.Time) bool {
	return !now.Before(r.ExecuteAfter)
}
