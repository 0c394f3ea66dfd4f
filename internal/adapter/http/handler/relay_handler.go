package handler

import (
	"encoding/hex"
	"math/big"
	"strings"
	"time"

	"smart-wallet-core/internal/adapter/http/dto"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"
	"smart-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// RelayHandler handles relayed operation submissions.
type RelayHandler struct {
	relaySvc ports.RelayService
}

// NewRelayHandler creates a new RelayHandler.
func NewRelayHandler(relaySvc ports.RelayService) *RelayHandler {
	return &RelayHandler{relaySvc: relaySvc}
}

// Submit handles POST /api/v1/relay.
func (h *RelayHandler) Submit(c *gin.Context) {
	var req dto.RelaySubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := domain.ParseAddress(req.Wallet)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sigs, err := hex.DecodeString(strings.TrimPrefix(req.Signatures, "0x"))
	if err != nil {
		response.Error(c, apperror.Validation("signatures: invalid hex"))
		return
	}

	relayReq := ports.RelayRequest{
		Wallet:     wallet,
		Kind:       domain.OperationKind(req.Kind),
		OpData:     []byte(req.OpData),
		Nonce:      req.Nonce,
		Signatures: sigs,
		ClientIP:   c.ClientIP(),
	}

	if req.Session != nil {
		key, err := domain.ParseAddress(req.Session.Key)
		if err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		session := &domain.Session{Wallet: wallet, Key: key}
		if req.Session.ExpiresAt != 0 {
			session.ExpiresAt = time.Unix(req.Session.ExpiresAt, 0).UTC()
		}
		relayReq.Session = session
	}

	if req.Refund != nil {
		relayer, err := domain.ParseAddress(req.Refund.Relayer)
		if err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		gasPrice, ok := new(big.Int).SetString(req.Refund.GasPrice, 10)
		if !ok {
			response.Error(c, apperror.Validation("refund: gas_price is not a decimal integer"))
			return
		}
		relayReq.Refund = &ports.RefundRequest{
			Relayer:  relayer,
			GasPrice: gasPrice,
			GasLimit: req.Refund.GasLimit,
		}
	}

	receipt, err := h.relaySvc.Relay(c.Request.Context(), relayReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.RelayReceiptResponse{
		Wallet:   receipt.Wallet.Hex(),
		Kind:     string(receipt.Kind),
		Nonce:    receipt.Nonce,
		Executed: receipt.Executed,
		Reason:   receipt.Reason,
	}
	if receipt.Refund != nil {
		resp.Refund = receipt.Refund.String()
	}
	response.OK(c, resp)
}
