package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smart-wallet-core/internal/adapter/http/dto"
	"smart-wallet-core/internal/adapter/http/middleware"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/internal/core/ports/mocks"
	"smart-wallet-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handlerAddr(last byte) domain.Address {
	var a domain.Address
	a[len(a)-1] = last
	return a
}

func jsonContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func setSigner(c *gin.Context, addr domain.Address) {
	c.Set(middleware.CtxSigner, addr)
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "missing data envelope: %s", w.Body.String())
	return data
}

// --- Wallet Handler Tests ---

func TestWalletCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	h := NewWalletHandler(walletRepo, nil, nil, nil)

	addr := handlerAddr(0x10)
	owner := handlerAddr(0x11)

	walletRepo.EXPECT().Get(gomock.Any(), addr).Return(nil, nil)
	walletRepo.EXPECT().Create(gomock.Any(), gomock.Cond(func(w *domain.Wallet) bool {
		return w.Address == addr && w.Owner == owner && w.Nonce == 0
	})).Return(nil)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/wallets", dto.CreateWalletRequest{
		Address: addr.Hex(),
		Owner:   owner.Hex(),
	})
	setSigner(c, owner)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, addr.Hex(), data["address"])
	assert.Equal(t, owner.Hex(), data["owner"])
	assert.Equal(t, float64(0), data["nonce"])
}

func TestWalletCreate_SignerIsNotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	h := NewWalletHandler(walletRepo, nil, nil, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.CreateWalletRequest{
		Address: handlerAddr(0x10).Hex(),
		Owner:   handlerAddr(0x11).Hex(),
	})
	setSigner(c, handlerAddr(0xDD))

	h.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWalletCreate_AlreadyRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	h := NewWalletHandler(walletRepo, nil, nil, nil)

	addr := handlerAddr(0x10)
	owner := handlerAddr(0x11)
	walletRepo.EXPECT().Get(gomock.Any(), addr).Return(&domain.Wallet{Address: addr, Owner: owner}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.CreateWalletRequest{
		Address: addr.Hex(),
		Owner:   owner.Hex(),
	})
	setSigner(c, owner)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWalletCreate_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletRepository(ctrl), nil, nil, nil)

	c, w := jsonContext(t, http.MethodPost, "/", map[string]string{"address": "not-an-address"})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWalletGet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	h := NewWalletHandler(walletRepo, nil, nil, nil)

	addr := handlerAddr(0x10)
	walletRepo.EXPECT().Get(gomock.Any(), addr).Return(&domain.Wallet{
		Address:   addr,
		Owner:     handlerAddr(0x11),
		Nonce:     4,
		CreatedAt: time.Now().UTC(),
	}, nil)

	c, w := jsonContext(t, http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: addr.Hex()}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(4), data["nonce"])
}

func TestWalletGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	h := NewWalletHandler(walletRepo, nil, nil, nil)

	addr := handlerAddr(0xEE)
	walletRepo.EXPECT().Get(gomock.Any(), addr).Return(nil, nil)

	c, w := jsonContext(t, http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: addr.Hex()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWalletLockStatus_InactiveLockReadsUnlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lockSvc := mocks.NewMockLockService(ctrl)
	h := NewWalletHandler(nil, nil, lockSvc, nil)

	addr := handlerAddr(0x10)
	lockSvc.EXPECT().GetLock(gomock.Any(), addr).Return(&domain.Lock{
		Wallet:       addr,
		ReleaseAfter: time.Now().UTC().Add(-time.Hour),
		Imposer:      domain.OpLock,
	}, nil)

	c, w := jsonContext(t, http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: addr.Hex()}}

	h.Lock(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, false, data["locked"])
}

// --- Guardian Handler Tests ---

func TestGuardianRequestAddition_Bootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guardianSvc := mocks.NewMockGuardianService(ctrl)
	h := NewGuardianHandler(guardianSvc)

	wallet := handlerAddr(0x10)
	owner := handlerAddr(0x11)
	guardian := handlerAddr(0x20)

	// nil change: the first guardian is added immediately.
	guardianSvc.EXPECT().RequestAddition(gomock.Any(), owner, wallet, guardian).Return(nil, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.GuardianRequest{Guardian: guardian.Hex()})
	c.Params = gin.Params{{Key: "address", Value: wallet.Hex()}}
	setSigner(c, owner)

	h.RequestAddition(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, guardian.Hex(), data["guardian"])
}

func TestGuardianRequestAddition_TimeLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guardianSvc := mocks.NewMockGuardianService(ctrl)
	h := NewGuardianHandler(guardianSvc)

	wallet := handlerAddr(0x10)
	owner := handlerAddr(0x11)
	guardian := handlerAddr(0x21)
	confirmAfter := time.Now().UTC().Add(24 * time.Hour)

	guardianSvc.EXPECT().RequestAddition(gomock.Any(), owner, wallet, guardian).Return(&domain.PendingGuardianChange{
		Wallet:       wallet,
		Guardian:     guardian,
		Kind:         domain.GuardianAddition,
		ConfirmAfter: confirmAfter,
	}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.GuardianRequest{Guardian: guardian.Hex()})
	c.Params = gin.Params{{Key: "address", Value: wallet.Hex()}}
	setSigner(c, owner)

	h.RequestAddition(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, string(domain.GuardianAddition), data["kind"])
	assert.Equal(t, confirmAfter.Format(time.RFC3339), data["confirm_after"])
}

func TestGuardianRequestAddition_MissingSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewGuardianHandler(mocks.NewMockGuardianService(ctrl))

	c, w := jsonContext(t, http.MethodPost, "/", dto.GuardianRequest{Guardian: handlerAddr(0x20).Hex()})
	c.Params = gin.Params{{Key: "address", Value: handlerAddr(0x10).Hex()}}

	h.RequestAddition(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardianConfirmAddition_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guardianSvc := mocks.NewMockGuardianService(ctrl)
	h := NewGuardianHandler(guardianSvc)

	wallet := handlerAddr(0x10)
	guardian := handlerAddr(0x20)
	guardianSvc.EXPECT().ConfirmAddition(gomock.Any(), wallet, guardian).Return(apperror.ErrConfirmationTooEarly())

	c, w := jsonContext(t, http.MethodPost, "/", nil)
	c.Params = gin.Params{
		{Key: "address", Value: wallet.Hex()},
		{Key: "guardian", Value: guardian.Hex()},
	}
	setSigner(c, handlerAddr(0x99))

	h.ConfirmAddition(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Security Handler Tests ---

func TestSecurityLock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lockSvc := mocks.NewMockLockService(ctrl)
	h := NewSecurityHandler(lockSvc, nil)

	wallet := handlerAddr(0x10)
	guardian := handlerAddr(0x20)
	releaseAfter := time.Now().UTC().Add(120 * time.Hour)

	lockSvc.EXPECT().Lock(gomock.Any(), guardian, wallet).Return(&domain.Lock{
		Wallet:       wallet,
		ReleaseAfter: releaseAfter,
		Imposer:      domain.OpLock,
	}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: wallet.Hex()}}
	setSigner(c, guardian)

	h.Lock(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["locked"])
	assert.Equal(t, string(domain.OpLock), data["imposer"])
}

func TestSecurityLock_NotGuardian(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lockSvc := mocks.NewMockLockService(ctrl)
	h := NewSecurityHandler(lockSvc, nil)

	wallet := handlerAddr(0x10)
	lockSvc.EXPECT().Lock(gomock.Any(), gomock.Any(), wallet).Return(nil, apperror.ErrNotGuardian())

	c, w := jsonContext(t, http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "address", Value: wallet.Hex()}}
	setSigner(c, handlerAddr(0xDD))

	h.Lock(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Relay Handler Tests ---

func TestRelaySubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relaySvc := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(relaySvc)

	wallet := handlerAddr(0x10)
	var captured ports.RelayRequest
	relaySvc.EXPECT().Relay(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RelayRequest) (*ports.RelayReceipt, error) {
			captured = req
			return &ports.RelayReceipt{
				Wallet:   req.Wallet,
				Kind:     req.Kind,
				Nonce:    req.Nonce,
				Executed: true,
				Refund:   big.NewInt(460000),
			}, nil
		})

	c, w := jsonContext(t, http.MethodPost, "/api/v1/relay", dto.RelaySubmission{
		Wallet:     wallet.Hex(),
		Kind:       string(domain.OpMultiCall),
		OpData:     json.RawMessage(`{"calls":[]}`),
		Nonce:      3,
		Signatures: "0xaa",
		Refund: &dto.RefundPayload{
			Relayer:  handlerAddr(0x50).Hex(),
			GasPrice: "10",
			GasLimit: 100000,
		},
	})

	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wallet, captured.Wallet)
	assert.Equal(t, domain.OpMultiCall, captured.Kind)
	assert.Equal(t, uint64(3), captured.Nonce)
	assert.Equal(t, []byte{0xaa}, captured.Signatures)
	require.NotNil(t, captured.Refund)
	assert.Equal(t, big.NewInt(10), captured.Refund.GasPrice)

	data := dataField(t, w)
	assert.Equal(t, true, data["executed"])
	assert.Equal(t, "460000", data["refund"])
}

func TestRelaySubmit_SessionPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relaySvc := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(relaySvc)

	wallet := handlerAddr(0x10)
	key := handlerAddr(0x33)
	expiresAt := time.Now().Add(time.Hour).Unix()

	relaySvc.EXPECT().Relay(gomock.Any(), gomock.Cond(func(req ports.RelayRequest) bool {
		return req.Session != nil &&
			req.Session.Key == key &&
			req.Session.Wallet == wallet &&
			req.Session.ExpiresAt.Unix() == expiresAt
	})).Return(&ports.RelayReceipt{Wallet: wallet, Executed: true}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.RelaySubmission{
		Wallet:     wallet.Hex(),
		Kind:       string(domain.OpMultiCallWithSession),
		OpData:     json.RawMessage(`{"calls":[]}`),
		Signatures: "0xaa",
		Session: &dto.SessionPayload{
			Key:       key.Hex(),
			ExpiresAt: expiresAt,
		},
	})

	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRelaySubmit_FailedOperationStillOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relaySvc := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(relaySvc)

	wallet := handlerAddr(0x10)
	relaySvc.EXPECT().Relay(gomock.Any(), gomock.Any()).Return(&ports.RelayReceipt{
		Wallet:   wallet,
		Kind:     domain.OpMultiCall,
		Nonce:    3,
		Executed: false,
		Reason:   "[AUTH_009] Call to 0x77 is neither whitelisted nor registry-approved",
	}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.RelaySubmission{
		Wallet:     wallet.Hex(),
		Kind:       string(domain.OpMultiCall),
		OpData:     json.RawMessage(`{"calls":[]}`),
		Nonce:      3,
		Signatures: "0xaa",
	})

	h.Submit(c)

	// A consumed nonce with a failed operation is still a 200: the receipt
	// carries the failure.
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, false, data["executed"])
	assert.Contains(t, data["reason"], "AUTH_009")
}

func TestRelaySubmit_VerificationErrorMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relaySvc := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(relaySvc)

	relaySvc.EXPECT().Relay(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidNonce(4, 3))

	c, w := jsonContext(t, http.MethodPost, "/", dto.RelaySubmission{
		Wallet:     handlerAddr(0x10).Hex(),
		Kind:       string(domain.OpMultiCall),
		OpData:     json.RawMessage(`{"calls":[]}`),
		Nonce:      3,
		Signatures: "0xaa",
	})

	h.Submit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRelaySubmit_BadSignatureHex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRelayHandler(mocks.NewMockRelayService(ctrl))

	c, w := jsonContext(t, http.MethodPost, "/", map[string]interface{}{
		"wallet":     handlerAddr(0x10).Hex(),
		"kind":       "multiCall",
		"signatures": "zzzz",
	})

	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin Handler Tests ---

func TestAdminToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	globalOwner := handlerAddr(0x01)
	h := NewAdminHandler(nil, tokenSvc, globalOwner)

	expiry := time.Now().Add(24 * time.Hour)
	tokenSvc.EXPECT().Generate(globalOwner.Hex()).Return("jwt-token-123", expiry, nil)

	c, w := jsonContext(t, http.MethodPost, "/", nil)
	setSigner(c, globalOwner)

	h.Token(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "jwt-token-123", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestAdminToken_NotGlobalOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(nil, mocks.NewMockTokenService(ctrl), handlerAddr(0x01))

	c, w := jsonContext(t, http.MethodPost, "/", nil)
	setSigner(c, handlerAddr(0xDD))

	h.Token(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCreateRegistry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dappSvc := mocks.NewMockDappService(ctrl)
	globalOwner := handlerAddr(0x01)
	h := NewAdminHandler(dappSvc, nil, globalOwner)

	manager := handlerAddr(0x60)
	dappSvc.EXPECT().CreateRegistry(gomock.Any(), globalOwner, uint8(3), manager).Return(nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.CreateRegistryRequest{
		ID:      3,
		Manager: manager.Hex(),
	})

	h.CreateRegistry(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminAddAuthorisation_WithFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dappSvc := mocks.NewMockDappService(ctrl)
	globalOwner := handlerAddr(0x01)
	h := NewAdminHandler(dappSvc, nil, globalOwner)

	contract := handlerAddr(0x40)
	dappSvc.EXPECT().AddAuthorisation(gomock.Any(), globalOwner, uint8(0), contract,
		gomock.Cond(func(f *domain.Filter) bool {
			return f != nil && f.Type == domain.FilterMethodAllowlist && len(f.Selectors) == 1
		})).Return(nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.AuthorisationRequest{
		Contract: contract.Hex(),
		Filter: &dto.FilterPayload{
			Type:      string(domain.FilterMethodAllowlist),
			Selectors: []string{"a9059cbb"},
		},
	})
	c.Params = gin.Params{{Key: "id", Value: "0"}}

	h.AddAuthorisation(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminRemoveRegistry_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockDappService(ctrl), nil, handlerAddr(0x01))

	c, w := jsonContext(t, http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "200"}}

	h.RemoveRegistry(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
