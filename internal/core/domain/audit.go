package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records the outcome of a relayed or direct operation so
// orchestration tooling can inspect why a submission was rejected.
type AuditEntry struct {
	ID        uuid.UUID     `json:"id"`
	Wallet    Address       `json:"wallet"`
	Kind      OperationKind `json:"kind"`
	Nonce     *uint64       `json:"nonce,omitempty"`
	Outcome   string        `json:"outcome"` // "OK" or an apperror code
	Executed  bool          `json:"executed"`
	ClientIP  string        `json:"client_ip,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
