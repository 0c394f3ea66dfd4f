package domain

import "time"

// Lock freezes a wallet until ReleaseAfter. Imposer records which operation
// created the lock; only a matching operation, or expiry, may release it.
type Lock struct {
	Wallet       Address       `json:"wallet"`
	ReleaseAfter time.Time     `json:"release_after"`
	Imposer      OperationKind `json:"imposer"`
}

// Active reports whether the lock is still in force. A lock whose release
// time has passed is logically unlocked even if not yet cleared in storage.
func (l Lock) Active(now time.Time) bool {
	return now.Before(l.ReleaseAfter)
}
