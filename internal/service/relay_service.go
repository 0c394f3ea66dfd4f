package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// replayGuardTTL bounds how long a submission fingerprint blocks an exact
// duplicate. The durable nonce CAS is the real replay barrier; this only
// absorbs accidental double-submits.
const replayGuardTTL = 10 * time.Minute

// RelayParams carries the relayer gas-refund constants.
type RelayParams struct {
	BaseGas    uint64
	GasPerCall uint64
}

// RelayServiceImpl implements ports.RelayService. It is the single entry
// point for relayed operations: it resolves the owner-signature policy for
// the operation kind, verifies the signature set against it, consumes the
// wallet nonce, and dispatches to the owning service.
type RelayServiceImpl struct {
	sigSvc      ports.SignatureService
	guardianSvc ports.GuardianService
	recoverySvc ports.RecoveryService
	lockSvc     ports.LockService
	dappSvc     ports.DappService
	auditSvc    ports.AuditService
	executor    ports.CallExecutor

	walletRepo    ports.WalletRepository
	guardRepo     ports.GuardianRepository
	recoveryRepo  ports.RecoveryRepository
	whitelistRepo ports.WhitelistRepository
	moduleRepo    ports.ModuleRepository
	sessions      ports.SessionStore
	replayGuard   ports.ReplayGuard

	relay    RelayParams
	timelock TimelockParams
	log      zerolog.Logger
	now      func() time.Time
}

// NewRelayService creates a new RelayServiceImpl.
func NewRelayService(
	sigSvc ports.SignatureService,
	guardianSvc ports.GuardianService,
	recoverySvc ports.RecoveryService,
	lockSvc ports.LockService,
	dappSvc ports.DappService,
	auditSvc ports.AuditService,
	executor ports.CallExecutor,
	walletRepo ports.WalletRepository,
	guardRepo ports.GuardianRepository,
	recoveryRepo ports.RecoveryRepository,
	whitelistRepo ports.WhitelistRepository,
	moduleRepo ports.ModuleRepository,
	sessions ports.SessionStore,
	replayGuard ports.ReplayGuard,
	relay RelayParams,
	timelock TimelockParams,
	log zerolog.Logger,
) *RelayServiceImpl {
	return &RelayServiceImpl{
		sigSvc:        sigSvc,
		guardianSvc:   guardianSvc,
		recoverySvc:   recoverySvc,
		lockSvc:       lockSvc,
		dappSvc:       dappSvc,
		auditSvc:      auditSvc,
		executor:      executor,
		walletRepo:    walletRepo,
		guardRepo:     guardRepo,
		recoveryRepo:  recoveryRepo,
		whitelistRepo: whitelistRepo,
		moduleRepo:    moduleRepo,
		sessions:      sessions,
		replayGuard:   replayGuard,
		relay:         relay,
		timelock:      timelock,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Relay verifies and executes one relayed operation.
//
// Verification failures (bad signatures, wrong nonce, policy violations)
// return an error and leave the nonce untouched. Once the nonce is consumed,
// a failing operation is reported through the receipt (Executed=false)
// rather than an error: the submission was valid, the operation was not.
func (s *RelayServiceImpl) Relay(ctx context.Context, req ports.RelayRequest) (*ports.RelayReceipt, error) {
	policy, known := domain.PolicyFor(req.Kind)
	if !known {
		return nil, apperror.ErrUnknownOperation(string(req.Kind))
	}

	// Fast-path duplicate guard keyed on the full submission fingerprint,
	// so a corrected resubmission with the same nonce is not blocked.
	fp := sha256.Sum256(append(append([]byte(req.Wallet.Hex()), req.Signatures...), req.OpData...))
	guardKey := fmt.Sprintf("relay:%s:%d:%x", req.Wallet.Hex(), req.Nonce, fp[:8])
	fresh, err := s.replayGuard.SetOnce(ctx, guardKey, replayGuardTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("replay guard: %w", err))
	}
	if !fresh {
		return nil, apperror.ErrDuplicateSubmission()
	}

	w, err := s.walletRepo.Get(ctx, req.Wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet lookup: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	if req.Nonce != w.Nonce {
		return nil, apperror.ErrInvalidNonce(w.Nonce, req.Nonce)
	}

	signers, err := s.verifySignatures(ctx, req, w, policy)
	if err != nil {
		return nil, err
	}

	// The nonce is consumed before dispatch; a concurrent submission for the
	// same nonce loses the compare-and-set.
	advanced, err := s.walletRepo.AdvanceNonce(ctx, req.Wallet, req.Nonce)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("advance nonce: %w", err))
	}
	if !advanced {
		return nil, apperror.ErrInvalidNonce(req.Nonce, req.Nonce)
	}

	receipt := &ports.RelayReceipt{
		Wallet:   req.Wallet,
		Kind:     req.Kind,
		Nonce:    req.Nonce,
		Executed: true,
	}
	callCount := 1
	if execErr := s.dispatch(ctx, req, signers, &callCount); execErr != nil {
		receipt.Executed = false
		receipt.Reason = execErr.Error()
		s.log.Warn().
			Str("wallet", req.Wallet.Hex()).
			Str("kind", string(req.Kind)).
			Uint64("nonce", req.Nonce).
			Err(execErr).
			Msg("relayed operation failed after nonce consumption")
	}

	if receipt.Executed && req.Refund != nil {
		refund, refundErr := s.refundRelayer(ctx, req.Wallet, req.Refund, callCount)
		if refundErr != nil {
			s.log.Error().Err(refundErr).
				Str("wallet", req.Wallet.Hex()).
				Str("relayer", req.Refund.Relayer.Hex()).
				Msg("relayer refund failed")
		} else {
			receipt.Refund = refund
		}
	}

	s.recordAudit(ctx, req, receipt)
	return receipt, nil
}

// verifySignatures recovers the signer set from the concatenated signatures
// and checks it against the owner-signature policy for the operation kind.
// It returns the recovered signers for dispatch (lock/unlock act as the
// recovered guardian).
func (s *RelayServiceImpl) verifySignatures(ctx context.Context, req ports.RelayRequest, w *domain.Wallet, policy domain.OwnerPolicy) ([]domain.Address, error) {
	guardianCount, err := s.guardRepo.Count(ctx, req.Wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("guardian count: %w", err))
	}
	snapshot := 0
	if req.Kind == domain.OpCancelRecovery {
		rec, err := s.recoveryRepo.Get(ctx, req.Wallet)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("recovery lookup: %w", err))
		}
		if rec == nil {
			return nil, apperror.ErrNoRecoveryInProgress()
		}
		snapshot = rec.GuardianCount
	}
	required, _ := domain.RequiredSignatures(req.Kind, guardianCount, snapshot)

	if required == 0 {
		if policy == domain.OwnerAnyone {
			return nil, nil
		}
		// executeRecovery on a wallet with no guardians resolves to a
		// zero quorum. No signer set may start a recovery there, so the
		// empty set must not pass.
		return nil, apperror.ErrInsufficientQuorum(1, 0)
	}

	digest := s.sigSvc.RelayDigest(req.Wallet, req.Kind, req.OpData, req.Nonce)
	signers, err := s.sigSvc.RecoverSigners(digest, req.Signatures)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}
	if len(signers) != required {
		return nil, apperror.ErrInsufficientQuorum(required, len(signers))
	}

	switch policy {
	case domain.OwnerSession:
		return signers, s.verifySessionSigner(ctx, req, signers[0])

	case domain.OwnerRequired:
		ownerSeen := false
		for _, signer := range signers {
			if signer == w.Owner {
				ownerSeen = true
				continue
			}
			isGuardian, err := s.guardRepo.IsGuardian(ctx, req.Wallet, signer)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
			}
			if !isGuardian {
				return nil, apperror.ErrUnexpectedSigner()
			}
		}
		if !ownerSeen {
			return nil, apperror.ErrNotOwner()
		}
		return signers, nil

	case domain.OwnerOptional:
		for _, signer := range signers {
			if signer == w.Owner {
				continue
			}
			isGuardian, err := s.guardRepo.IsGuardian(ctx, req.Wallet, signer)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
			}
			if !isGuardian {
				return nil, apperror.ErrUnexpectedSigner()
			}
		}
		return signers, nil

	case domain.OwnerDisallowed:
		for _, signer := range signers {
			if signer == w.Owner {
				return nil, apperror.ErrOwnerSignatureDisallowed()
			}
			isGuardian, err := s.guardRepo.IsGuardian(ctx, req.Wallet, signer)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
			}
			if !isGuardian {
				return nil, apperror.ErrUnexpectedSigner()
			}
		}
		return signers, nil
	}

	return nil, apperror.ErrUnknownOperation(string(req.Kind))
}

// verifySessionSigner accepts a signer backed by the wallet's stored session
// key, or registers the session supplied with the request when none is
// stored. A session with zero expiry is single-use and never persisted.
func (s *RelayServiceImpl) verifySessionSigner(ctx context.Context, req ports.RelayRequest, signer domain.Address) error {
	now := s.now()
	stored, err := s.sessions.Get(ctx, req.Wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("session lookup: %w", err))
	}
	if stored != nil {
		if !stored.Valid(now) || stored.Key != signer {
			return apperror.ErrInvalidSession()
		}
		return nil
	}
	sess := req.Session
	if sess == nil || sess.Key != signer || sess.Wallet != req.Wallet {
		return apperror.ErrInvalidSession()
	}
	if !sess.SingleUse() {
		if !sess.Valid(now) {
			return apperror.ErrInvalidSession()
		}
		if err := s.sessions.Put(ctx, sess); err != nil {
			return apperror.InternalError(fmt.Errorf("store session: %w", err))
		}
	}
	return nil
}

// dispatch decodes the operation payload and routes it to the owning
// service. caller=wallet means "the core acting with the verified quorum".
func (s *RelayServiceImpl) dispatch(ctx context.Context, req ports.RelayRequest, signers []domain.Address, callCount *int) error {
	wallet := req.Wallet

	switch req.Kind {
	case domain.OpMultiCall, domain.OpMultiCallWithSession:
		var p ports.MultiCallOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed multi-call payload")
		}
		if len(p.Calls) == 0 {
			return apperror.ErrInvalidPayload("empty call batch")
		}
		*callCount = len(p.Calls)
		return s.executeBatch(ctx, wallet, p.Calls, req.Kind == domain.OpMultiCallWithSession)

	case domain.OpAddToWhitelist:
		var p ports.WhitelistOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed whitelist payload")
		}
		if p.Target.IsZero() {
			return apperror.ErrNullAddress("target")
		}
		return s.whitelistRepo.Set(ctx, &domain.WhitelistEntry{
			Wallet:      wallet,
			Target:      p.Target,
			ActiveAfter: s.now().Add(s.timelock.SecurityPeriod),
		})

	case domain.OpRemoveFromWhitelist:
		var p ports.WhitelistOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed whitelist payload")
		}
		return s.whitelistRepo.Delete(ctx, wallet, p.Target)

	case domain.OpAddModule:
		var p ports.ModuleOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed module payload")
		}
		if p.Module.IsZero() {
			return apperror.ErrNullAddress("module")
		}
		return s.moduleRepo.Add(ctx, wallet, p.Module)

	case domain.OpClearSession:
		return s.sessions.Delete(ctx, wallet)

	case domain.OpAddGuardian:
		p, err := guardianPayload(req.OpData)
		if err != nil {
			return err
		}
		_, err = s.guardianSvc.RequestAddition(ctx, wallet, wallet, p.Guardian)
		return err

	case domain.OpRevokeGuardian:
		p, err := guardianPayload(req.OpData)
		if err != nil {
			return err
		}
		_, err = s.guardianSvc.RequestRevocation(ctx, wallet, wallet, p.Guardian)
		return err

	case domain.OpConfirmGuardianAddition:
		p, err := guardianPayload(req.OpData)
		if err != nil {
			return err
		}
		return s.guardianSvc.ConfirmAddition(ctx, wallet, p.Guardian)

	case domain.OpConfirmGuardianRevocation:
		p, err := guardianPayload(req.OpData)
		if err != nil {
			return err
		}
		return s.guardianSvc.ConfirmRevocation(ctx, wallet, p.Guardian)

	case domain.OpCancelGuardianAddition:
		p, err := guardianPayload(req.OpData)
		if err != nil {
			return err
		}
		return s.guardianSvc.CancelAddition(ctx, wallet, wallet, p.Guardian)

	case domain.OpCancelGuardianRevocation:
		p, err := guardianPayload(req.OpData)
		if err != nil {
			return err
		}
		return s.guardianSvc.CancelRevocation(ctx, wallet, wallet, p.Guardian)

	case domain.OpExecuteRecovery:
		var p ports.RecoveryOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed recovery payload")
		}
		_, err := s.recoverySvc.Execute(ctx, wallet, p.NewOwner)
		return err

	case domain.OpFinalizeRecovery:
		return s.recoverySvc.Finalize(ctx, wallet)

	case domain.OpCancelRecovery:
		return s.recoverySvc.Cancel(ctx, wallet)

	case domain.OpTransferOwnership:
		var p ports.RecoveryOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed recovery payload")
		}
		return s.recoverySvc.TransferOwnership(ctx, wallet, wallet, p.NewOwner)

	case domain.OpLock:
		_, err := s.lockSvc.Lock(ctx, signers[0], wallet)
		return err

	case domain.OpUnlock:
		return s.lockSvc.Unlock(ctx, signers[0], wallet)

	case domain.OpToggleDappRegistry:
		var p ports.ToggleRegistryOpPayload
		if err := json.Unmarshal(req.OpData, &p); err != nil {
			return apperror.ErrInvalidPayload("malformed registry payload")
		}
		return s.dappSvc.ToggleRegistry(ctx, wallet, wallet, p.RegistryID, p.Enabled)
	}

	return apperror.ErrUnknownOperation(string(req.Kind))
}

// executeBatch runs a call batch. Non-session batches gate every call on the
// whitelist or the dapp registry before any call executes, so a rejected
// batch leaves no partial effects. Session batches bypass per-call checks:
// the session key itself is the authorization.
func (s *RelayServiceImpl) executeBatch(ctx context.Context, wallet domain.Address, calls []domain.Call, session bool) error {
	locked, err := s.lockSvc.IsLocked(ctx, wallet)
	if err != nil {
		return err
	}
	if locked {
		return apperror.ErrWalletLocked()
	}

	if !session {
		now := s.now()
		for _, call := range calls {
			authorised, err := s.callAuthorised(ctx, wallet, call, now)
			if err != nil {
				return err
			}
			if !authorised {
				return apperror.ErrCallNotAuthorised(call.Target.Hex())
			}
		}
	}

	for i, call := range calls {
		if _, err := s.executor.Invoke(ctx, wallet, call); err != nil {
			return apperror.ErrExecutionFailure(fmt.Errorf("call %d to %s: %w", i, call.Target.Hex(), err))
		}
	}
	return nil
}

// callAuthorised accepts a call when its effective spender is actively
// whitelisted, or when the target is authorised by one of the wallet's
// enabled dapp registries. For token transfers the spender is the decoded
// recipient, not the token contract. A whitelist entry still inside its
// security delay does not block the registry path; it only changes the
// rejection reason when the registry declines too.
func (s *RelayServiceImpl) callAuthorised(ctx context.Context, wallet domain.Address, call domain.Call, now time.Time) (bool, error) {
	spender, err := call.Spender()
	if err != nil {
		return false, apperror.ErrInvalidPayload(err.Error())
	}
	entry, err := s.whitelistRepo.Get(ctx, wallet, spender)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("whitelist lookup: %w", err))
	}
	if entry != nil && entry.Active(now) {
		return true, nil
	}
	authorised, err := s.dappSvc.IsAuthorised(ctx, wallet, call.Target, call.Data)
	if err != nil || authorised {
		return authorised, err
	}
	if entry != nil {
		return false, apperror.ErrWhitelistNotActive()
	}
	return false, nil
}

// refundRelayer pays the relayer from the wallet. The refund is capped by
// the submitted gas limit.
func (s *RelayServiceImpl) refundRelayer(ctx context.Context, wallet domain.Address, refund *ports.RefundRequest, callCount int) (*big.Int, error) {
	if refund.Relayer.IsZero() {
		return nil, fmt.Errorf("relayer address is zero")
	}
	if refund.GasPrice == nil || refund.GasPrice.Sign() <= 0 {
		return nil, fmt.Errorf("gas price missing or non-positive")
	}
	gas := s.relay.BaseGas + s.relay.GasPerCall*uint64(callCount)
	if refund.GasLimit > 0 && gas > refund.GasLimit {
		gas = refund.GasLimit
	}
	amount := new(big.Int).Mul(new(big.Int).SetUint64(gas), refund.GasPrice)
	if _, err := s.executor.Invoke(ctx, wallet, domain.Call{
		Target: refund.Relayer,
		Value:  amount,
	}); err != nil {
		return nil, fmt.Errorf("refund transfer: %w", err)
	}
	return amount, nil
}

func (s *RelayServiceImpl) recordAudit(ctx context.Context, req ports.RelayRequest, receipt *ports.RelayReceipt) {
	nonce := req.Nonce
	outcome := "OK"
	if !receipt.Executed {
		outcome = receipt.Reason
	}
	s.auditSvc.Record(ctx, &domain.AuditEntry{
		ID:        uuid.New(),
		Wallet:    req.Wallet,
		Kind:      req.Kind,
		Nonce:     &nonce,
		Outcome:   outcome,
		Executed:  receipt.Executed,
		ClientIP:  req.ClientIP,
		CreatedAt: s.now(),
	})
}

func guardianPayload(data []byte) (*ports.GuardianOpPayload, error) {
	var p ports.GuardianOpPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperror.ErrInvalidPayload("malformed guardian payload")
	}
	if p.Guardian.IsZero() {
		return nil, apperror.ErrNullAddress("guardian")
	}
	return &p, nil
}
