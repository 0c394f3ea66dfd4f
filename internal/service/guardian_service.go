package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// GuardianServiceImpl implements ports.GuardianService: two-phase,
// time-locked guardian addition and revocation.
type GuardianServiceImpl struct {
	walletRepo  ports.WalletRepository
	guardRepo   ports.GuardianRepository
	pendingRepo ports.PendingChangeRepository
	lockRepo    ports.LockRepository
	sessions    ports.SessionStore
	prober      ports.CapabilityProber
	transactor  ports.DBTransactor
	timelock    TimelockParams
	log         zerolog.Logger
	now         func() time.Time
}

// TimelockParams carries the deployment-fixed timing constants.
// SecurityWindow = RecoveryPeriod - SecurityPeriod, validated at startup.
type TimelockParams struct {
	SecurityPeriod time.Duration
	SecurityWindow time.Duration
	RecoveryPeriod time.Duration
	LockPeriod     time.Duration
}

// NewGuardianService creates a new GuardianServiceImpl.
func NewGuardianService(
	walletRepo ports.WalletRepository,
	guardRepo ports.GuardianRepository,
	pendingRepo ports.PendingChangeRepository,
	lockRepo ports.LockRepository,
	sessions ports.SessionStore,
	prober ports.CapabilityProber,
	transactor ports.DBTransactor,
	timelock TimelockParams,
	log zerolog.Logger,
) *GuardianServiceImpl {
	return &GuardianServiceImpl{
		walletRepo:  walletRepo,
		guardRepo:   guardRepo,
		pendingRepo: pendingRepo,
		lockRepo:    lockRepo,
		sessions:    sessions,
		prober:      prober,
		transactor:  transactor,
		timelock:    timelock,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RequestAddition starts a guardian addition. The first guardian of a wallet
// is added immediately (bootstrap, no quorum exists yet); later additions
// become pending and must be confirmed inside the security window.
func (s *GuardianServiceImpl) RequestAddition(ctx context.Context, caller, wallet, guardian domain.Address) (*domain.PendingGuardianChange, error) {
	w, err := s.requireWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrSelf(caller, w); err != nil {
		return nil, err
	}
	if err := s.requireUnlocked(ctx, wallet); err != nil {
		return nil, err
	}
	if guardian.IsZero() {
		return nil, apperror.ErrNullAddress("guardian")
	}
	if guardian == w.Owner {
		return nil, apperror.ErrOwnerAsGuardian()
	}
	sess, err := s.sessions.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("session lookup: %w", err))
	}
	if sess != nil && sess.Key == guardian {
		return nil, apperror.ErrOwnerAsGuardian()
	}
	already, err := s.guardRepo.IsGuardian(ctx, wallet, guardian)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if already {
		return nil, apperror.ErrDuplicateGuardian()
	}

	ok, err := s.prober.ExposesOwner(ctx, guardian)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("capability probe: %w", err))
	}
	if !ok {
		return nil, apperror.ErrGuardianProbeFailed()
	}

	count, err := s.guardRepo.Count(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("guardian count: %w", err))
	}

	// Bootstrap: no quorum exists yet, so the first guardian goes in directly.
	if count == 0 {
		if err := s.inTx(ctx, func(tx pgx.Tx) error {
			return s.guardRepo.Add(ctx, tx, wallet, guardian)
		}); err != nil {
			return nil, err
		}
		s.log.Info().
			Str("wallet", wallet.Hex()).
			Str("guardian", guardian.Hex()).
			Msg("first guardian added without confirmation")
		return nil, nil
	}

	if err := s.rejectLivePending(ctx, wallet, guardian, domain.GuardianAddition); err != nil {
		return nil, err
	}

	change := &domain.PendingGuardianChange{
		Wallet:       wallet,
		Guardian:     guardian,
		Kind:         domain.GuardianAddition,
		ConfirmAfter: s.now().Add(s.timelock.SecurityPeriod),
	}
	if err := s.pendingRepo.Create(ctx, change); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pending addition: %w", err))
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("guardian", guardian.Hex()).
		Time("confirm_after", change.ConfirmAfter).
		Msg("guardian addition requested")
	return change, nil
}

// ConfirmAddition finalizes a pending addition. Callable by anyone, but only
// inside (confirmAfter, confirmAfter+securityWindow).
func (s *GuardianServiceImpl) ConfirmAddition(ctx context.Context, wallet, guardian domain.Address) error {
	change, err := s.livePendingChange(ctx, wallet, guardian, domain.GuardianAddition)
	if err != nil {
		return err
	}
	already, err := s.guardRepo.IsGuardian(ctx, wallet, guardian)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if already {
		return apperror.ErrDuplicateGuardian()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.guardRepo.Add(ctx, tx, wallet, guardian); err != nil {
			return err
		}
		return s.pendingRepo.Delete(ctx, tx, change.Key())
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("guardian", guardian.Hex()).
		Msg("guardian addition confirmed")
	return nil
}

// CancelAddition drops a pending addition. Owner-or-self only.
func (s *GuardianServiceImpl) CancelAddition(ctx context.Context, caller, wallet, guardian domain.Address) error {
	return s.cancelChange(ctx, caller, wallet, guardian, domain.GuardianAddition)
}

// RequestRevocation starts a guardian revocation. There is no bootstrap
// shortcut: revocation always waits for its confirmation window.
func (s *GuardianServiceImpl) RequestRevocation(ctx context.Context, caller, wallet, guardian domain.Address) (*domain.PendingGuardianChange, error) {
	w, err := s.requireWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrSelf(caller, w); err != nil {
		return nil, err
	}
	if err := s.requireUnlocked(ctx, wallet); err != nil {
		return nil, err
	}
	isGuardian, err := s.guardRepo.IsGuardian(ctx, wallet, guardian)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if !isGuardian {
		return nil, apperror.ErrUnknownGuardian()
	}
	if err := s.rejectLivePending(ctx, wallet, guardian, domain.GuardianRevocation); err != nil {
		return nil, err
	}

	change := &domain.PendingGuardianChange{
		Wallet:       wallet,
		Guardian:     guardian,
		Kind:         domain.GuardianRevocation,
		ConfirmAfter: s.now().Add(s.timelock.SecurityPeriod),
	}
	if err := s.pendingRepo.Create(ctx, change); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pending revocation: %w", err))
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("guardian", guardian.Hex()).
		Time("confirm_after", change.ConfirmAfter).
		Msg("guardian revocation requested")
	return change, nil
}

// ConfirmRevocation finalizes a pending revocation inside its window.
func (s *GuardianServiceImpl) ConfirmRevocation(ctx context.Context, wallet, guardian domain.Address) error {
	change, err := s.livePendingChange(ctx, wallet, guardian, domain.GuardianRevocation)
	if err != nil {
		return err
	}
	isGuardian, err := s.guardRepo.IsGuardian(ctx, wallet, guardian)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if !isGuardian {
		return apperror.ErrUnknownGuardian()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.guardRepo.Remove(ctx, tx, wallet, guardian); err != nil {
			return err
		}
		return s.pendingRepo.Delete(ctx, tx, change.Key())
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("guardian", guardian.Hex()).
		Msg("guardian revocation confirmed")
	return nil
}

// CancelRevocation drops a pending revocation. Owner-or-self only.
func (s *GuardianServiceImpl) CancelRevocation(ctx context.Context, caller, wallet, guardian domain.Address) error {
	return s.cancelChange(ctx, caller, wallet, guardian, domain.GuardianRevocation)
}

// Guardians lists the wallet's guardian set.
func (s *GuardianServiceImpl) Guardians(ctx context.Context, wallet domain.Address) ([]domain.Address, error) {
	list, err := s.guardRepo.List(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list guardians: %w", err))
	}
	return list, nil
}

// GuardianCount returns the size of the wallet's guardian set.
func (s *GuardianServiceImpl) GuardianCount(ctx context.Context, wallet domain.Address) (int, error) {
	count, err := s.guardRepo.Count(ctx, wallet)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("guardian count: %w", err))
	}
	return count, nil
}

// --- helpers ---

func (s *GuardianServiceImpl) cancelChange(ctx context.Context, caller, wallet, guardian domain.Address, kind domain.GuardianChangeKind) error {
	w, err := s.requireWallet(ctx, wallet)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrSelf(caller, w); err != nil {
		return err
	}
	key := domain.GuardianChangeKey(wallet, guardian, kind)
	change, err := s.pendingRepo.Get(ctx, key)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("pending change lookup: %w", err))
	}
	if change == nil {
		return apperror.ErrNoPendingChange()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		return s.pendingRepo.Delete(ctx, tx, key)
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("guardian", guardian.Hex()).
		Str("kind", string(kind)).
		Msg("pending guardian change cancelled")
	return nil
}

// livePendingChange fetches a pending change and enforces its window.
func (s *GuardianServiceImpl) livePendingChange(ctx context.Context, wallet, guardian domain.Address, kind domain.GuardianChangeKind) (*domain.PendingGuardianChange, error) {
	key := domain.GuardianChangeKey(wallet, guardian, kind)
	change, err := s.pendingRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("pending change lookup: %w", err))
	}
	if change == nil {
		return nil, apperror.ErrNoPendingChange()
	}
	now := s.now()
	if change.TooEarly(now) {
		return nil, apperror.ErrConfirmationTooEarly()
	}
	if change.Expired(now, s.timelock.SecurityWindow) {
		return nil, apperror.ErrConfirmationWindowExpired()
	}
	return change, nil
}

// rejectLivePending rejects a new request while a confirmable pending change
// exists for the same tuple. An expired pending change may be re-requested.
func (s *GuardianServiceImpl) rejectLivePending(ctx context.Context, wallet, guardian domain.Address, kind domain.GuardianChangeKind) error {
	key := domain.GuardianChangeKey(wallet, guardian, kind)
	existing, err := s.pendingRepo.Get(ctx, key)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("pending change lookup: %w", err))
	}
	if existing != nil && !existing.Expired(s.now(), s.timelock.SecurityWindow) {
		return apperror.ErrPendingChangeExists()
	}
	return nil
}

func (s *GuardianServiceImpl) requireWallet(ctx context.Context, wallet domain.Address) (*domain.Wallet, error) {
	w, err := s.walletRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet lookup: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return w, nil
}

// requireOwnerOrSelf accepts the wallet owner or the wallet's own address
// (the core acting on the owner's behalf through the relay).
func (s *GuardianServiceImpl) requireOwnerOrSelf(caller domain.Address, w *domain.Wallet) error {
	if caller != w.Owner && caller != w.Address {
		return apperror.ErrNotOwner()
	}
	return nil
}

func (s *GuardianServiceImpl) requireUnlocked(ctx context.Context, wallet domain.Address) error {
	lock, err := s.lockRepo.Get(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock lookup: %w", err))
	}
	if lock != nil && lock.Active(s.now()) {
		return apperror.ErrWalletLocked()
	}
	return nil
}

func (s *GuardianServiceImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck
	if err := fn(tx); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperror.InternalError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
