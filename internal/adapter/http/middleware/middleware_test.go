package middleware

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"smart-wallet-core/internal/adapter/storage/memory"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/internal/core/ports/mocks"
	"smart-wallet-core/internal/service"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testSigner struct {
	key  *secp256k1.PrivateKey
	addr domain.Address
}

func newTestSigner(t *testing.T) testSigner {
	t.Helper()
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	return testSigner{key: key, addr: service.PubKeyAddress(key.PubKey())}
}

func signedRequest(t *testing.T, s testSigner, sigSvc ports.SignatureService, method, path, nonce, body string) *http.Request {
	t.Helper()
	ts := time.Now().Unix()
	digest := sigSvc.RequestDigest(method, path, ts, nonce, []byte(body))
	sig := secpecdsa.SignCompact(s.key, digest, true)

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(HeaderSigner, s.addr.Hex())
	req.Header.Set(HeaderSignature, "0x"+hex.EncodeToString(sig))
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderNonce, nonce)
	return req
}

func signerAuthRouter(sigSvc ports.SignatureService, guard ports.ReplayGuard) (*gin.Engine, *domain.Address) {
	var captured domain.Address
	router := gin.New()
	router.POST("/test", SignerAuth(sigSvc, guard, zerolog.Nop()), func(c *gin.Context) {
		v, _ := c.Get(CtxSigner)
		captured = v.(domain.Address)
		c.JSON(200, gin.H{"ok": true})
	})
	return router, &captured
}

func TestSignerAuth_MissingHeaders(t *testing.T) {
	router, _ := signerAuthRouter(service.NewECDSASignatureService(), memory.NewReplayGuard())

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignerAuth_ExpiredTimestamp(t *testing.T) {
	sigSvc := service.NewECDSASignatureService()
	router, _ := signerAuthRouter(sigSvc, memory.NewReplayGuard())
	s := newTestSigner(t)

	req := signedRequest(t, s, sigSvc, http.MethodPost, "/test", "nonce-1", `{}`)
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Add(-5*time.Minute).Unix(), 10))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignerAuth_NonceReplay(t *testing.T) {
	sigSvc := service.NewECDSASignatureService()
	router, _ := signerAuthRouter(sigSvc, memory.NewReplayGuard())
	s := newTestSigner(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, s, sigSvc, http.MethodPost, "/test", "nonce-1", `{}`))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, s, sigSvc, http.MethodPost, "/test", "nonce-1", `{}`))
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STATE_009", resp["error_code"])
}

func TestSignerAuth_WrongSigner(t *testing.T) {
	sigSvc := service.NewECDSASignatureService()
	router, _ := signerAuthRouter(sigSvc, memory.NewReplayGuard())
	s := newTestSigner(t)
	other := newTestSigner(t)

	// Signed by s but claiming to be other.
	req := signedRequest(t, s, sigSvc, http.MethodPost, "/test", "nonce-1", `{}`)
	req.Header.Set(HeaderSigner, other.addr.Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignerAuth_TamperedBody(t *testing.T) {
	sigSvc := service.NewECDSASignatureService()
	router, _ := signerAuthRouter(sigSvc, memory.NewReplayGuard())
	s := newTestSigner(t)

	req := signedRequest(t, s, sigSvc, http.MethodPost, "/test", "nonce-1", `{"a":1}`)
	req.Body = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"a":2}`)).Body
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignerAuth_Success(t *testing.T) {
	sigSvc := service.NewECDSASignatureService()
	router, captured := signerAuthRouter(sigSvc, memory.NewReplayGuard())
	s := newTestSigner(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, s, sigSvc, http.MethodPost, "/test", "nonce-1", `{"amount":1}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.addr, *captured)
}

func TestAdminJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)

	router := gin.New()
	router.GET("/test", AdminJWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("bad_token").Return(nil, assert.AnError)

	router := gin.New()
	router.GET("/test", AdminJWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad_token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminJWTAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good_token").Return(&ports.TokenClaims{Subject: "0xadmin"}, nil)

	var captured string
	router := gin.New()
	router.GET("/test", AdminJWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		v, _ := c.Get(CtxAdminSubject)
		captured = v.(string)
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good_token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xadmin", captured)
}

func TestRecovery_PanicRecovered(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
}

func TestMaxBodySize_RejectsOversized(t *testing.T) {
	router := gin.New()
	router.Use(MaxBodySize(8))
	router.POST("/test", func(c *gin.Context) {
		var v map[string]interface{}
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"key":"a long enough value"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
