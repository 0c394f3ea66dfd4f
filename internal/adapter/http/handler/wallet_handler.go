package handler

import (
	"time"

	"smart-wallet-core/internal/adapter/http/dto"
	"smart-wallet-core/internal/adapter/http/middleware"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"
	"smart-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet registration and queries.
type WalletHandler struct {
	walletRepo  ports.WalletRepository
	guardianSvc ports.GuardianService
	lockSvc     ports.LockService
	recoverySvc ports.RecoveryService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(
	walletRepo ports.WalletRepository,
	guardianSvc ports.GuardianService,
	lockSvc ports.LockService,
	recoverySvc ports.RecoveryService,
) *WalletHandler {
	return &WalletHandler{
		walletRepo:  walletRepo,
		guardianSvc: guardianSvc,
		lockSvc:     lockSvc,
		recoverySvc: recoverySvc,
	}
}

// Create handles POST /api/v1/wallets. The signer must be the owner being
// registered.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	addr, err := domain.ParseAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	owner, err := domain.ParseAddress(req.Owner)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if owner.IsZero() {
		response.Error(c, apperror.ErrNullAddress("owner"))
		return
	}
	if signer, ok := signerFrom(c); !ok || signer != owner {
		response.Error(c, apperror.ErrNotOwner())
		return
	}

	existing, err := h.walletRepo.Get(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if existing != nil {
		response.Error(c, apperror.Validation("wallet is already registered"))
		return
	}

	now := time.Now().UTC()
	w := &domain.Wallet{Address: addr, Owner: owner, Nonce: 0, CreatedAt: now, UpdatedAt: now}
	if err := h.walletRepo.Create(c.Request.Context(), w); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, toWalletResponse(w))
}

// Get handles GET /api/v1/wallets/:address.
func (h *WalletHandler) Get(c *gin.Context) {
	addr, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	w, err := h.walletRepo.Get(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if w == nil {
		response.Error(c, apperror.ErrWalletNotFound())
		return
	}
	response.OK(c, toWalletResponse(w))
}

// Guardians handles GET /api/v1/wallets/:address/guardians.
func (h *WalletHandler) Guardians(c *gin.Context) {
	addr, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	guardians, err := h.guardianSvc.Guardians(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	list := make([]string, 0, len(guardians))
	for _, g := range guardians {
		list = append(list, g.Hex())
	}
	response.OK(c, dto.GuardianListResponse{Guardians: list, Count: len(list)})
}

// Lock handles GET /api/v1/wallets/:address/lock.
func (h *WalletHandler) Lock(c *gin.Context) {
	addr, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	lock, err := h.lockSvc.GetLock(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	resp := dto.LockResponse{Wallet: addr.Hex()}
	if lock != nil && lock.Active(time.Now().UTC()) {
		resp.Locked = true
		resp.ReleaseAfter = lock.ReleaseAfter.Format(time.RFC3339)
		resp.Imposer = string(lock.Imposer)
	}
	response.OK(c, resp)
}

// Recovery handles GET /api/v1/wallets/:address/recovery.
func (h *WalletHandler) Recovery(c *gin.Context) {
	addr, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	rec, err := h.recoverySvc.Get(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	if rec == nil {
		response.Error(c, apperror.ErrNoRecoveryInProgress())
		return
	}
	response.OK(c, dto.RecoveryResponse{
		Wallet:        rec.Wallet.Hex(),
		ProposedOwner: rec.ProposedOwner.Hex(),
		ExecuteAfter:  rec.ExecuteAfter.Format(time.RFC3339),
		GuardianCount: rec.GuardianCount,
	})
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		Address:   w.Address.Hex(),
		Owner:     w.Owner.Hex(),
		Nonce:     w.Nonce,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}

// signerFrom extracts the authenticated signer set by middleware.SignerAuth.
func signerFrom(c *gin.Context) (domain.Address, bool) {
	v, ok := c.Get(middleware.CtxSigner)
	if !ok {
		return domain.ZeroAddress, false
	}
	addr, ok := v.(domain.Address)
	return addr, ok
}
