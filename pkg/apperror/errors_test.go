package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("AUTH_002", "Caller is not the wallet owner", http.StatusForbidden),
			expected: "[AUTH_002] Caller is not the wallet owner",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_009", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthorizationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidSignature", ErrInvalidSignature(), "AUTH_001", 401},
		{"NotOwner", ErrNotOwner(), "AUTH_002", 403},
		{"NotGuardian", ErrNotGuardian(), "AUTH_003", 403},
		{"InsufficientQuorum", ErrInsufficientQuorum(2, 1), "AUTH_004", 403},
		{"OwnerSignatureDisallowed", ErrOwnerSignatureDisallowed(), "AUTH_005", 403},
		{"InvalidSession", ErrInvalidSession(), "AUTH_006", 403},
		{"NotAuthorisedModule", ErrNotAuthorisedModule(), "AUTH_007", 403},
		{"NotRegistryManager", ErrNotRegistryManager(), "AUTH_008", 403},
		{"CallNotAuthorised", ErrCallNotAuthorised("0xdead"), "AUTH_009", 403},
		{"InvalidToken", ErrInvalidToken(), "AUTH_010", 401},
		{"UnexpectedSigner", ErrUnexpectedSigner(), "AUTH_011", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestStateErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NoPendingChange", ErrNoPendingChange(), "STATE_001", 409},
		{"PendingChangeExists", ErrPendingChangeExists(), "STATE_002", 409},
		{"RecoveryInProgress", ErrRecoveryInProgress(), "STATE_003", 409},
		{"NoRecoveryInProgress", ErrNoRecoveryInProgress(), "STATE_004", 409},
		{"WalletLocked", ErrWalletLocked(), "STATE_005", 409},
		{"LockStateMismatch", ErrLockStateMismatch(), "STATE_006", 409},
		{"RegistryToggleNoop", ErrRegistryToggleNoop(), "STATE_007", 409},
		{"InvalidNonce", ErrInvalidNonce(4, 3), "STATE_008", 409},
		{"DuplicateSubmission", ErrDuplicateSubmission(), "STATE_009", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestTimingErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"ConfirmationTooEarly", ErrConfirmationTooEarly(), "TIME_001", 403},
		{"ConfirmationWindowExpired", ErrConfirmationWindowExpired(), "TIME_002", 403},
		{"RecoveryPeriodNotElapsed", ErrRecoveryPeriodNotElapsed(), "TIME_003", 403},
		{"WhitelistNotActive", ErrWhitelistNotActive(), "TIME_004", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NullAddress", ErrNullAddress("owner"), "VAL_001", 400},
		{"OwnerAsGuardian", ErrOwnerAsGuardian(), "VAL_002", 400},
		{"DuplicateGuardian", ErrDuplicateGuardian(), "VAL_003", 409},
		{"UnknownGuardian", ErrUnknownGuardian(), "VAL_004", 400},
		{"GuardianProbeFailed", ErrGuardianProbeFailed(), "VAL_005", 400},
		{"UnknownOperation", ErrUnknownOperation("teleport"), "VAL_006", 400},
		{"UnknownRegistry", ErrUnknownRegistry(9), "VAL_007", 404},
		{"DuplicateRegistry", ErrDuplicateRegistry(9), "VAL_008", 409},
		{"InvalidPayload", ErrInvalidPayload("bad"), "VAL_009", 400},
		{"WalletNotFound", ErrWalletNotFound(), "VAL_010", 404},
		{"GuardianAsNewOwner", ErrGuardianAsNewOwner(), "VAL_011", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	execErr := ErrExecutionFailure(inner)
	assert.Equal(t, "SYS_002", execErr.Code)
	assert.Equal(t, 500, execErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestMessagesCarryParameters(t *testing.T) {
	assert.Contains(t, ErrInvalidNonce(4, 7).Message, "expected 4, got 7")
	assert.Contains(t, ErrCallNotAuthorised("0xdead").Message, "0xdead")
	assert.Contains(t, ErrUnknownOperation("teleport").Message, `"teleport"`)
	assert.Contains(t, ErrNullAddress("manager").Message, "manager")
}
