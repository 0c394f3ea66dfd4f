package handler

import (
	"strconv"

	"smart-wallet-core/internal/adapter/http/dto"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"
	"smart-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the global-owner registry administration endpoints.
type AdminHandler struct {
	dappSvc     ports.DappService
	tokenSvc    ports.TokenService
	globalOwner domain.Address
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(dappSvc ports.DappService, tokenSvc ports.TokenService, globalOwner domain.Address) *AdminHandler {
	return &AdminHandler{dappSvc: dappSvc, tokenSvc: tokenSvc, globalOwner: globalOwner}
}

// Token handles POST /api/v1/admin/token: exchanges a signed request by the
// global owner for a bearer token.
func (h *AdminHandler) Token(c *gin.Context) {
	signer, ok := signerFrom(c)
	if !ok || signer != h.globalOwner {
		response.Error(c, apperror.ErrNotRegistryManager())
		return
	}
	token, expiry, err := h.tokenSvc.Generate(signer.Hex())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.AdminTokenResponse{Token: token, Expiry: expiry.Unix()})
}

// CreateRegistry handles POST /api/v1/admin/registries.
func (h *AdminHandler) CreateRegistry(c *gin.Context) {
	var req dto.CreateRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	manager, err := domain.ParseAddress(req.Manager)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.dappSvc.CreateRegistry(c.Request.Context(), h.globalOwner, req.ID, manager); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": req.ID, "manager": manager.Hex()})
}

// RemoveRegistry handles DELETE /api/v1/admin/registries/:id.
func (h *AdminHandler) RemoveRegistry(c *gin.Context) {
	id, ok := registryIDParam(c)
	if !ok {
		return
	}
	if err := h.dappSvc.RemoveRegistry(c.Request.Context(), h.globalOwner, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"removed": true})
}

// AddAuthorisation handles POST /api/v1/admin/registries/:id/authorisations.
func (h *AdminHandler) AddAuthorisation(c *gin.Context) {
	id, ok := registryIDParam(c)
	if !ok {
		return
	}
	var req dto.AuthorisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	contract, err := domain.ParseAddress(req.Contract)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var filter *domain.Filter
	if req.Filter != nil {
		filter = &domain.Filter{
			Type:      domain.FilterType(req.Filter.Type),
			Selectors: req.Filter.Selectors,
		}
	}
	if err := h.dappSvc.AddAuthorisation(c.Request.Context(), h.globalOwner, id, contract, filter); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"registry_id": id, "contract": contract.Hex()})
}

func registryIDParam(c *gin.Context) (uint8, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 8)
	if err != nil || raw > uint64(domain.MaxRegistryID) {
		response.Error(c, apperror.Validation("registry id must be an integer in [0, 63]"))
		return 0, false
	}
	return uint8(raw), true
}
