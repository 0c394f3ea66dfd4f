package service

import (
	"context"
	"fmt"
	"time"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// RecoveryServiceImpl implements ports.RecoveryService: the
// NoRecovery -> PendingRecovery -> (Finalized | Cancelled) state machine.
// Quorum verification happens in the relay; this service owns the state
// transitions and their timing rules.
type RecoveryServiceImpl struct {
	walletRepo   ports.WalletRepository
	guardRepo    ports.GuardianRepository
	lockRepo     ports.LockRepository
	recoveryRepo ports.RecoveryRepository
	transactor   ports.DBTransactor
	timelock     TimelockParams
	log          zerolog.Logger
	now          func() time.Time
}

// NewRecoveryService creates a new RecoveryServiceImpl.
func NewRecoveryService(
	walletRepo ports.WalletRepository,
	guardRepo ports.GuardianRepository,
	lockRepo ports.LockRepository,
	recoveryRepo ports.RecoveryRepository,
	transactor ports.DBTransactor,
	timelock TimelockParams,
	log zerolog.Logger,
) *RecoveryServiceImpl {
	return &RecoveryServiceImpl{
		walletRepo:   walletRepo,
		guardRepo:    guardRepo,
		lockRepo:     lockRepo,
		recoveryRepo: recoveryRepo,
		transactor:   transactor,
		timelock:     timelock,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute starts an ownership recovery and simultaneously locks the wallet.
// The guardian quorum (majority, owner disallowed) is enforced by the relay
// before this runs.
func (s *RecoveryServiceImpl) Execute(ctx context.Context, wallet, proposedOwner domain.Address) (*domain.RecoveryConfig, error) {
	w, err := s.requireWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if proposedOwner.IsZero() {
		return nil, apperror.ErrNullAddress("proposed owner")
	}
	isGuardian, err := s.guardRepo.IsGuardian(ctx, wallet, proposedOwner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if isGuardian {
		return nil, apperror.ErrGuardianAsNewOwner()
	}
	existing, err := s.recoveryRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("recovery lookup: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrRecoveryInProgress()
	}
	count, err := s.guardRepo.Count(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("guardian count: %w", err))
	}
	// Recovery is guardian-driven. A wallet without guardians has no one
	// who may start it, whatever the relay's quorum math said.
	if count == 0 {
		return nil, apperror.ErrInsufficientQuorum(1, 0)
	}

	now := s.now()
	rec := &domain.RecoveryConfig{
		Wallet:        wallet,
		ProposedOwner: proposedOwner,
		ExecuteAfter:  now.Add(s.timelock.RecoveryPeriod),
		GuardianCount: count,
		CreatedAt:     now,
	}
	lock := &domain.Lock{
		Wallet:       wallet,
		ReleaseAfter: now.Add(s.timelock.LockPeriod),
		Imposer:      domain.OpExecuteRecovery,
	}
	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.recoveryRepo.Create(ctx, tx, rec); err != nil {
			return err
		}
		return s.lockRepo.Set(ctx, tx, lock)
	}); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("current_owner", w.Owner.Hex()).
		Str("proposed_owner", proposedOwner.Hex()).
		Time("execute_after", rec.ExecuteAfter).
		Int("guardian_count", count).
		Msg("recovery started, wallet locked")
	return rec, nil
}

// Finalize completes a pending recovery once the recovery period elapsed.
// Callable by anyone: the waiting period itself is the authorization.
func (s *RecoveryServiceImpl) Finalize(ctx context.Context, wallet domain.Address) error {
	if _, err := s.requireWallet(ctx, wallet); err != nil {
		return err
	}
	rec, err := s.recoveryRepo.Get(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("recovery lookup: %w", err))
	}
	if rec == nil {
		return apperror.ErrNoRecoveryInProgress()
	}
	if !rec.Finalizable(s.now()) {
		return apperror.ErrRecoveryPeriodNotElapsed()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.walletRepo.SetOwner(ctx, tx, wallet, rec.ProposedOwner); err != nil {
			return err
		}
		if err := s.recoveryRepo.Delete(ctx, tx, wallet); err != nil {
			return err
		}
		return s.lockRepo.Clear(ctx, tx, wallet)
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("new_owner", rec.ProposedOwner.Hex()).
		Msg("recovery finalized, ownership transferred")
	return nil
}

// Cancel aborts a pending recovery and releases its lock. The quorum
// (majority of owner + guardians at recovery start) is enforced by the relay.
func (s *RecoveryServiceImpl) Cancel(ctx context.Context, wallet domain.Address) error {
	if _, err := s.requireWallet(ctx, wallet); err != nil {
		return err
	}
	rec, err := s.recoveryRepo.Get(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("recovery lookup: %w", err))
	}
	if rec == nil {
		return apperror.ErrNoRecoveryInProgress()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.recoveryRepo.Delete(ctx, tx, wallet); err != nil {
			return err
		}
		return s.lockRepo.Clear(ctx, tx, wallet)
	}); err != nil {
		return err
	}

	s.log.Info().Str("wallet", wallet.Hex()).Msg("recovery cancelled")
	return nil
}

// TransferOwnership changes the owner immediately. Owner-only, permitted
// only while unlocked and with no recovery in flight.
func (s *RecoveryServiceImpl) TransferOwnership(ctx context.Context, caller, wallet, newOwner domain.Address) error {
	w, err := s.requireWallet(ctx, wallet)
	if err != nil {
		return err
	}
	if caller != w.Owner && caller != w.Address {
		return apperror.ErrNotOwner()
	}
	lock, err := s.lockRepo.Get(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock lookup: %w", err))
	}
	if lock != nil && lock.Active(s.now()) {
		return apperror.ErrWalletLocked()
	}
	rec, err := s.recoveryRepo.Get(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("recovery lookup: %w", err))
	}
	if rec != nil {
		return apperror.ErrRecoveryInProgress()
	}
	if newOwner.IsZero() {
		return apperror.ErrNullAddress("new owner")
	}
	isGuardian, err := s.guardRepo.IsGuardian(ctx, wallet, newOwner)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if isGuardian {
		return apperror.ErrGuardianAsNewOwner()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		return s.walletRepo.SetOwner(ctx, tx, wallet, newOwner)
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("new_owner", newOwner.Hex()).
		Msg("ownership transferred")
	return nil
}

// Get returns the in-flight recovery, or nil when the wallet is in NoRecovery.
func (s *RecoveryServiceImpl) Get(ctx context.Context, wallet domain.Address) (*domain.RecoveryConfig, error) {
	rec, err := s.recoveryRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("recovery lookup: %w", err))
	}
	return rec, nil
}

func (s *RecoveryServiceImpl) requireWallet(ctx context.Context, wallet domain.Address) (*domain.Wallet, error) {
	w, err := s.walletRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet lookup: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return w, nil
}

func (s *RecoveryServiceImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck
	if err := fn(tx); err != nil {
		return apperror.InternalError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
