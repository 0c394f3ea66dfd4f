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

// LockServiceImpl implements ports.LockService: guardian-triggered wallet
// freezing. A recovery-imposed lock is not manually releasable; it clears
// when the recovery finalizes or cancels, or when it expires.
type LockServiceImpl struct {
	walletRepo ports.WalletRepository
	guardRepo  ports.GuardianRepository
	lockRepo   ports.LockRepository
	transactor ports.DBTransactor
	timelock   TimelockParams
	log        zerolog.Logger
	now        func() time.Time
}

// NewLockService creates a new LockServiceImpl.
func NewLockService(
	walletRepo ports.WalletRepository,
	guardRepo ports.GuardianRepository,
	lockRepo ports.LockRepository,
	transactor ports.DBTransactor,
	timelock TimelockParams,
	log zerolog.Logger,
) *LockServiceImpl {
	return &LockServiceImpl{
		walletRepo: walletRepo,
		guardRepo:  guardRepo,
		lockRepo:   lockRepo,
		transactor: transactor,
		timelock:   timelock,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Lock freezes an unlocked wallet for the configured lock period.
func (s *LockServiceImpl) Lock(ctx context.Context, caller, wallet domain.Address) (*domain.Lock, error) {
	if _, err := s.requireWallet(ctx, wallet); err != nil {
		return nil, err
	}
	if err := s.requireGuardianOrSelf(ctx, caller, wallet); err != nil {
		return nil, err
	}
	existing, err := s.lockRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock lookup: %w", err))
	}
	if existing != nil && existing.Active(s.now()) {
		return nil, apperror.ErrWalletLocked()
	}

	lock := &domain.Lock{
		Wallet:       wallet,
		ReleaseAfter: s.now().Add(s.timelock.LockPeriod),
		Imposer:      domain.OpLock,
	}
	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		return s.lockRepo.Set(ctx, tx, lock)
	}); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("caller", caller.Hex()).
		Time("release_after", lock.ReleaseAfter).
		Msg("wallet locked")
	return lock, nil
}

// Unlock releases a manual lock. Recovery-imposed locks are refused.
func (s *LockServiceImpl) Unlock(ctx context.Context, caller, wallet domain.Address) error {
	if _, err := s.requireWallet(ctx, wallet); err != nil {
		return err
	}
	if err := s.requireGuardianOrSelf(ctx, caller, wallet); err != nil {
		return err
	}
	lock, err := s.lockRepo.Get(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock lookup: %w", err))
	}
	if lock == nil || !lock.Active(s.now()) {
		return apperror.ErrLockStateMismatch()
	}
	if lock.Imposer != domain.OpLock {
		return apperror.ErrLockStateMismatch()
	}

	if err := s.inTx(ctx, func(tx pgx.Tx) error {
		return s.lockRepo.Clear(ctx, tx, wallet)
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Str("caller", caller.Hex()).
		Msg("wallet unlocked")
	return nil
}

// IsLocked reports whether an unexpired lock is in force.
func (s *LockServiceImpl) IsLocked(ctx context.Context, wallet domain.Address) (bool, error) {
	lock, err := s.lockRepo.Get(ctx, wallet)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("lock lookup: %w", err))
	}
	return lock != nil && lock.Active(s.now()), nil
}

// GetLock returns the wallet's lock, or nil when none is stored.
func (s *LockServiceImpl) GetLock(ctx context.Context, wallet domain.Address) (*domain.Lock, error) {
	lock, err := s.lockRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock lookup: %w", err))
	}
	return lock, nil
}

func (s *LockServiceImpl) requireWallet(ctx context.Context, wallet domain.Address) (*domain.Wallet, error) {
	w, err := s.walletRepo.Get(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet lookup: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return w, nil
}

func (s *LockServiceImpl) requireGuardianOrSelf(ctx context.Context, caller, wallet domain.Address) error {
	if caller == wallet {
		return nil
	}
	isGuardian, err := s.guardRepo.IsGuardian(ctx, wallet, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("guardian lookup: %w", err))
	}
	if !isGuardian {
		return apperror.ErrNotGuardian()
	}
	return nil
}

func (s *LockServiceImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
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
