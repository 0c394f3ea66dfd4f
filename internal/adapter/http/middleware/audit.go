package middleware

import (
	"time"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful direct (non-relayed) wallet operations. Relayed
// operations are audited by the relay service itself, nonce included.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		kind := mapRouteToKind(c.FullPath(), c.Request.Method)
		if kind == "" {
			return
		}
		wallet, err := domain.ParseAddress(c.Param("address"))
		if err != nil {
			return
		}

		auditSvc.Record(c.Request.Context(), &domain.AuditEntry{
			ID:        uuid.New(),
			Wallet:    wallet,
			Kind:      kind,
			Outcome:   "OK",
			Executed:  true,
			ClientIP:  c.ClientIP(),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func mapRouteToKind(route, method string) domain.OperationKind {
	switch {
	case route == "/api/v1/wallets/:address/guardians" && method == "POST":
		return domain.OpAddGuardian
	case route == "/api/v1/wallets/:address/guardians/:guardian" && method == "DELETE":
		return domain.OpRevokeGuardian
	case route == "/api/v1/wallets/:address/guardians/:guardian/confirm-addition" && method == "POST":
		return domain.OpConfirmGuardianAddition
	case route == "/api/v1/wallets/:address/guardians/:guardian/confirm-revocation" && method == "POST":
		return domain.OpConfirmGuardianRevocation
	case route == "/api/v1/wallets/:address/guardians/:guardian/cancel-addition" && method == "POST":
		return domain.OpCancelGuardianAddition
	case route == "/api/v1/wallets/:address/guardians/:guardian/cancel-revocation" && method == "POST":
		return domain.OpCancelGuardianRevocation
	case route == "/api/v1/wallets/:address/lock" && method == "POST":
		return domain.OpLock
	case route == "/api/v1/wallets/:address/unlock" && method == "POST":
		return domain.OpUnlock
	case route == "/api/v1/wallets/:address/recovery/finalize" && method == "POST":
		return domain.OpFinalizeRecovery
	}
	return ""
}
