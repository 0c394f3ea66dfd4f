package domain

// OwnerPolicy states how the wallet owner's signature is treated when
// verifying a relayed operation.
type OwnerPolicy string

const (
	// OwnerRequired: the owner must be among the signers.
	OwnerRequired OwnerPolicy = "required"
	// OwnerOptional: the owner may sign; their signature counts toward quorum.
	OwnerOptional OwnerPolicy = "optional"
	// OwnerDisallowed: the owner's signature invalidates the set.
	OwnerDisallowed OwnerPolicy = "disallowed"
	// OwnerAnyone: no signatures are required at all.
	OwnerAnyone OwnerPolicy = "anyone"
	// OwnerSession: a single signature by a valid session key.
	OwnerSession OwnerPolicy = "session"
)

// PolicyFor returns the owner-signature policy for an operation kind.
// External relayers depend on this table for pre-flight checks; it must not
// drift from the published operation surface.
func PolicyFor(kind OperationKind) (OwnerPolicy, bool) {
	switch kind {
	case OpMultiCallWithSession:
		return OwnerSession, true
	case OpMultiCall, OpAddToWhitelist, OpRemoveFromWhitelist, OpAddModule,
		OpAddGuardian, OpRevokeGuardian, OpCancelGuardianAddition,
		OpCancelGuardianRevocation, OpClearSession:
		return OwnerRequired, true
	case OpExecuteRecovery:
		return OwnerDisallowed, true
	case OpCancelRecovery:
		return OwnerOptional, true
	case OpToggleDappRegistry, OpTransferOwnership:
		return OwnerRequired, true
	case OpFinalizeRecovery, OpConfirmGuardianAddition, OpConfirmGuardianRevocation:
		return OwnerAnyone, true
	case OpLock, OpUnlock:
		return OwnerDisallowed, true
	}
	return "", false
}

// RequiredSignatures returns the signature count the policy table demands for
// kind. guardianCount is the wallet's live guardian count;
// snapshotGuardianCount is the guardian count recorded when the in-flight
// recovery started (used only by cancelRecovery).
func RequiredSignatures(kind OperationKind, guardianCount, snapshotGuardianCount int) (int, bool) {
	switch kind {
	case OpMultiCallWithSession:
		return 1, true
	case OpMultiCall, OpAddToWhitelist, OpRemoveFromWhitelist, OpAddModule,
		OpAddGuardian, OpRevokeGuardian, OpCancelGuardianAddition,
		OpCancelGuardianRevocation, OpClearSession:
		return 1, true
	case OpExecuteRecovery:
		return GuardianMajority(guardianCount), true
	case OpCancelRecovery:
		// Owner counts as one extra voter at recovery start.
		return GuardianMajority(snapshotGuardianCount + 1), true
	case OpToggleDappRegistry, OpTransferOwnership:
		return GuardianMajority(guardianCount) + 1, true
	case OpFinalizeRecovery, OpConfirmGuardianAddition, OpConfirmGuardianRevocation:
		return 0, true
	case OpLock, OpUnlock:
		return 1, true
	}
	return 0, false
}

// GuardianMajority computes ceil(n/2).
func GuardianMajority(n int) int {
	return (n + 1) / 2
}
