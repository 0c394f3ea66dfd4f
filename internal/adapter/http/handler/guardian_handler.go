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

// GuardianHandler handles the direct guardian-management endpoints. The
// authenticated signer is the caller; the service layer decides whether that
// caller may act.
type GuardianHandler struct {
	guardianSvc ports.GuardianService
}

// NewGuardianHandler creates a new GuardianHandler.
func NewGuardianHandler(guardianSvc ports.GuardianService) *GuardianHandler {
	return &GuardianHandler{guardianSvc: guardianSvc}
}

// RequestAddition handles POST /api/v1/wallets/:address/guardians.
func (h *GuardianHandler) RequestAddition(c *gin.Context) {
	wallet, guardian, signer, ok := h.bindBody(c)
	if !ok {
		return
	}
	change, err := h.guardianSvc.RequestAddition(c.Request.Context(), signer, wallet, guardian)
	if err != nil {
		response.Error(c, err)
		return
	}
	if change == nil {
		// Bootstrap path: first guardian added immediately.
		response.Created(c, dto.PendingChangeResponse{
			Wallet:   wallet.Hex(),
			Guardian: guardian.Hex(),
			Kind:     string(domain.GuardianAddition),
		})
		return
	}
	response.Created(c, toPendingChangeResponse(change))
}

// RequestRevocation handles DELETE /api/v1/wallets/:address/guardians/:guardian.
func (h *GuardianHandler) RequestRevocation(c *gin.Context) {
	wallet, guardian, signer, ok := h.bindParams(c)
	if !ok {
		return
	}
	change, err := h.guardianSvc.RequestRevocation(c.Request.Context(), signer, wallet, guardian)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPendingChangeResponse(change))
}

// ConfirmAddition handles POST .../guardians/:guardian/confirm-addition.
// Anyone may confirm; the timelock window is the authorization.
func (h *GuardianHandler) ConfirmAddition(c *gin.Context) {
	wallet, guardian, _, ok := h.bindParams(c)
	if !ok {
		return
	}
	if err := h.guardianSvc.ConfirmAddition(c.Request.Context(), wallet, guardian); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"confirmed": true})
}

// ConfirmRevocation handles POST .../guardians/:guardian/confirm-revocation.
func (h *GuardianHandler) ConfirmRevocation(c *gin.Context) {
	wallet, guardian, _, ok := h.bindParams(c)
	if !ok {
		return
	}
	if err := h.guardianSvc.ConfirmRevocation(c.Request.Context(), wallet, guardian); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"confirmed": true})
}

// CancelAddition handles POST .../guardians/:guardian/cancel-addition.
func (h *GuardianHandler) CancelAddition(c *gin.Context) {
	wallet, guardian, signer, ok := h.bindParams(c)
	if !ok {
		return
	}
	if err := h.guardianSvc.CancelAddition(c.Request.Context(), signer, wallet, guardian); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cancelled": true})
}

// CancelRevocation handles POST .../guardians/:guardian/cancel-revocation.
func (h *GuardianHandler) CancelRevocation(c *gin.Context) {
	wallet, guardian, signer, ok := h.bindParams(c)
	if !ok {
		return
	}
	if err := h.guardianSvc.CancelRevocation(c.Request.Context(), signer, wallet, guardian); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cancelled": true})
}

// bindBody reads wallet from the path and guardian from the JSON body.
func (h *GuardianHandler) bindBody(c *gin.Context) (wallet, guardian, signer domain.Address, ok bool) {
	wallet, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var req dto.GuardianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if guardian, err = domain.ParseAddress(req.Guardian); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	signer, sOK := signerFrom(c)
	if !sOK {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}
	return wallet, guardian, signer, true
}

// bindParams reads both wallet and guardian from path parameters.
func (h *GuardianHandler) bindParams(c *gin.Context) (wallet, guardian, signer domain.Address, ok bool) {
	wallet, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if guardian, err = domain.ParseAddress(c.Param("guardian")); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	signer, sOK := signerFrom(c)
	if !sOK {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}
	return wallet, guardian, signer, true
}

func toPendingChangeResponse(change *domain.PendingGuardianChange) dto.PendingChangeResponse {
	return dto.PendingChangeResponse{
		Wallet:       change.Wallet.Hex(),
		Guardian:     change.Guardian.Hex(),
		Kind:         string(change.Kind),
		ConfirmAfter: change.ConfirmAfter.Format(time.RFC3339),
	}
}
