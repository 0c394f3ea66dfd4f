package domain

import (
	"fmt"
	"math/big"
)

// OperationKind identifies a relayable operation. The set is closed: unknown
// kinds are rejected before any signature work happens.
type OperationKind string

const (
	OpMultiCall            OperationKind = "multiCall"
	OpMultiCallWithSession OperationKind = "multiCallWithSession"
	OpAddToWhitelist       OperationKind = "addToWhitelist"
	OpRemoveFromWhitelist  OperationKind = "removeFromWhitelist"
	OpAddModule            OperationKind = "addModule"
	OpClearSession         OperationKind = "clearSession"

	OpAddGuardian               OperationKind = "addGuardian"
	OpRevokeGuardian            OperationKind = "revokeGuardian"
	OpConfirmGuardianAddition   OperationKind = "confirmGuardianAddition"
	OpConfirmGuardianRevocation OperationKind = "confirmGuardianRevocation"
	OpCancelGuardianAddition    OperationKind = "cancelGuardianAddition"
	OpCancelGuardianRevocation  OperationKind = "cancelGuardianRevocation"

	OpExecuteRecovery   OperationKind = "executeRecovery"
	OpFinalizeRecovery  OperationKind = "finalizeRecovery"
	OpCancelRecovery    OperationKind = "cancelRecovery"
	OpTransferOwnership OperationKind = "transferOwnership"

	OpLock   OperationKind = "lock"
	OpUnlock OperationKind = "unlock"

	OpToggleDappRegistry OperationKind = "toggleDappRegistry"
)

// Call is one entry of a batched outgoing call.
// When SpenderInData is set, the call is a token-transfer-style invocation
// and the effective spender is the recipient encoded in the calldata rather
// than the target contract.
type Call struct {
	Target        Address  `json:"target"`
	Value         *big.Int `json:"value"`
	Data          []byte   `json:"data"`
	SpenderInData bool     `json:"spender_in_data"`
}

// transferCallDataLen is selector (4) + padded recipient (32) + amount (32).
const transferCallDataLen = 68

// Spender resolves the effective spender of the call: the target itself, or
// the recipient decoded from transfer-style calldata.
func (c Call) Spender() (Address, error) {
	if !c.SpenderInData {
		return c.Target, nil
	}
	if len(c.Data) < transferCallDataLen {
		return ZeroAddress, fmt.Errorf("calldata too short to carry a spender: %d bytes", len(c.Data))
	}
	// Recipient occupies the last 20 bytes of the first 32-byte argument.
	return BytesToAddress(c.Data[4+12 : 4+32]), nil
}
