package handler

import (
	"time"

	"smart-wallet-core/internal/adapter/http/dto"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"
	"smart-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// SecurityHandler handles the direct lock and recovery endpoints.
type SecurityHandler struct {
	lockSvc     ports.LockService
	recoverySvc ports.RecoveryService
}

// NewSecurityHandler creates a new SecurityHandler.
func NewSecurityHandler(lockSvc ports.LockService, recoverySvc ports.RecoveryService) *SecurityHandler {
	return &SecurityHandler{lockSvc: lockSvc, recoverySvc: recoverySvc}
}

// Lock handles POST /api/v1/wallets/:address/lock. The signer must be a
// guardian of the wallet.
func (h *SecurityHandler) Lock(c *gin.Context) {
	wallet, signer, ok := h.bind(c)
	if !ok {
		return
	}
	lock, err := h.lockSvc.Lock(c.Request.Context(), signer, wallet)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LockResponse{
		Wallet:       wallet.Hex(),
		Locked:       true,
		ReleaseAfter: lock.ReleaseAfter.Format(time.RFC3339),
		Imposer:      string(lock.Imposer),
	})
}

// Unlock handles POST /api/v1/wallets/:address/unlock.
func (h *SecurityHandler) Unlock(c *gin.Context) {
	wallet, signer, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.lockSvc.Unlock(c.Request.Context(), signer, wallet); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LockResponse{Wallet: wallet.Hex(), Locked: false})
}

// FinalizeRecovery handles POST /api/v1/wallets/:address/recovery/finalize.
// Anyone may finalize once the recovery period has elapsed.
func (h *SecurityHandler) FinalizeRecovery(c *gin.Context) {
	wallet, _, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.recoverySvc.Finalize(c.Request.Context(), wallet); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"finalized": true})
}

func (h *SecurityHandler) bind(c *gin.Context) (wallet, signer domain.Address, ok bool) {
	wallet, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	signer, sOK := signerFrom(c)
	if !sOK {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}
	return wallet, signer, true
}
