package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Every rejection carries a stable code so relayer tooling can decide
// whether to retry, wait for a timelock, or abandon the operation.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authorization (AUTH) ----

func ErrInvalidSignature() *AppError {
	return New("AUTH_001", "Invalid signature", http.StatusUnauthorized)
}

func ErrNotOwner() *AppError {
	return New("AUTH_002", "Caller is not the wallet owner", http.StatusForbidden)
}

func ErrNotGuardian() *AppError {
	return New("AUTH_003", "Caller is not a guardian of this wallet", http.StatusForbidden)
}

func ErrInsufficientQuorum(required, got int) *AppError {
	return New("AUTH_004", fmt.Sprintf("Insufficient signatures: need %d, got %d", required, got), http.StatusForbidden)
}

func ErrOwnerSignatureDisallowed() *AppError {
	return New("AUTH_005", "Owner signature is not allowed for this operation", http.StatusForbidden)
}

func ErrInvalidSession() *AppError {
	return New("AUTH_006", "Session key is invalid or expired", http.StatusForbidden)
}

func ErrNotAuthorisedModule() *AppError {
	return New("AUTH_007", "Caller is not an authorised module for this wallet", http.StatusForbidden)
}

func ErrNotRegistryManager() *AppError {
	return New("AUTH_008", "Caller does not manage this registry", http.StatusForbidden)
}

func ErrCallNotAuthorised(target string) *AppError {
	return New("AUTH_009", fmt.Sprintf("Call to %s is neither whitelisted nor registry-approved", target), http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_010", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrUnexpectedSigner() *AppError {
	return New("AUTH_011", "Recovered signer is neither owner nor guardian", http.StatusForbidden)
}

// ---- State machine (STATE) ----

func ErrNoPendingChange() *AppError {
	return New("STATE_001", "No pending guardian change to confirm or cancel", http.StatusConflict)
}

func ErrPendingChangeExists() *AppError {
	return New("STATE_002", "A pending guardian change already exists for this tuple", http.StatusConflict)
}

func ErrRecoveryInProgress() *AppError {
	return New("STATE_003", "A recovery is already in progress for this wallet", http.StatusConflict)
}

func ErrNoRecoveryInProgress() *AppError {
	return New("STATE_004", "No recovery in progress for this wallet", http.StatusConflict)
}

func ErrWalletLocked() *AppError {
	return New("STATE_005", "Wallet is locked", http.StatusConflict)
}

func ErrLockStateMismatch() *AppError {
	return New("STATE_006", "Lock state does not permit this operation", http.StatusConflict)
}

func ErrRegistryToggleNoop() *AppError {
	return New("STATE_007", "Registry is already in the requested state", http.StatusConflict)
}

func ErrInvalidNonce(expected, got uint64) *AppError {
	return New("STATE_008", fmt.Sprintf("Nonce mismatch: expected %d, got %d", expected, got), http.StatusConflict)
}

func ErrDuplicateSubmission() *AppError {
	return New("STATE_009", "A relay for this nonce has already been submitted", http.StatusConflict)
}

// ---- Timing windows (TIME) ----

func ErrConfirmationTooEarly() *AppError {
	return New("TIME_001", "Confirmation window has not opened yet", http.StatusForbidden)
}

func ErrConfirmationWindowExpired() *AppError {
	return New("TIME_002", "Confirmation window has expired; re-request the change", http.StatusForbidden)
}

func ErrRecoveryPeriodNotElapsed() *AppError {
	return New("TIME_003", "Recovery period has not elapsed yet", http.StatusForbidden)
}

func ErrWhitelistNotActive() *AppError {
	return New("TIME_004", "Whitelist entry is still in its security delay", http.StatusForbidden)
}

// ---- Validation (VAL) ----

func ErrNullAddress(field string) *AppError {
	return New("VAL_001", fmt.Sprintf("%s must not be the zero address", field), http.StatusBadRequest)
}

func ErrOwnerAsGuardian() *AppError {
	return New("VAL_002", "Wallet owner or session key cannot be a guardian", http.StatusBadRequest)
}

func ErrDuplicateGuardian() *AppError {
	return New("VAL_003", "Address is already a guardian", http.StatusConflict)
}

func ErrUnknownGuardian() *AppError {
	return New("VAL_004", "Address is not a guardian", http.StatusBadRequest)
}

func ErrGuardianProbeFailed() *AppError {
	return New("VAL_005", "Guardian must be an EOA or expose an owner accessor", http.StatusBadRequest)
}

func ErrUnknownOperation(kind string) *AppError {
	return New("VAL_006", fmt.Sprintf("Unknown operation kind %q", kind), http.StatusBadRequest)
}

func ErrUnknownRegistry(id uint8) *AppError {
	return New("VAL_007", fmt.Sprintf("Registry %d does not exist", id), http.StatusNotFound)
}

func ErrDuplicateRegistry(id uint8) *AppError {
	return New("VAL_008", fmt.Sprintf("Registry %d already exists", id), http.StatusConflict)
}

func ErrInvalidPayload(reason string) *AppError {
	return New("VAL_009", reason, http.StatusBadRequest)
}

func ErrWalletNotFound() *AppError {
	return New("VAL_010", "Wallet is not registered with this module", http.StatusNotFound)
}

func ErrGuardianAsNewOwner() *AppError {
	return New("VAL_011", "Proposed owner cannot be a current guardian", http.StatusBadRequest)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrExecutionFailure(err error) *AppError {
	return Wrap("SYS_002", "Underlying call execution failed", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_009-style validation error.
func Validation(message string) *AppError {
	return New("VAL_009", message, http.StatusBadRequest)
}
