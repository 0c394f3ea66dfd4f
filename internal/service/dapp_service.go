package service

import (
	"context"
	"fmt"
	"time"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// DappServiceImpl implements ports.DappService: the dapp/contract
// authorization registry with the per-wallet enabled-registries bitmap.
type DappServiceImpl struct {
	registryRepo ports.RegistryRepository
	moduleRepo   ports.ModuleRepository
	globalOwner  domain.Address
	log          zerolog.Logger
	now          func() time.Time
}

// NewDappService creates a new DappServiceImpl. globalOwner administers
// registry creation/removal and the default registry's entries.
func NewDappService(
	registryRepo ports.RegistryRepository,
	moduleRepo ports.ModuleRepository,
	globalOwner domain.Address,
	log zerolog.Logger,
) *DappServiceImpl {
	return &DappServiceImpl{
		registryRepo: registryRepo,
		moduleRepo:   moduleRepo,
		globalOwner:  globalOwner,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// IsAuthorised reports whether the contract is active under any registry
// enabled for the wallet. The default registry is consulted first (inverted
// bit-0 convention), then the remaining enabled ids in ascending order. A
// matching entry's filter is applied to the calldata; no filter, or empty
// calldata, accepts.
func (s *DappServiceImpl) IsAuthorised(ctx context.Context, wallet, contract domain.Address, data []byte) (bool, error) {
	bitmap, err := s.registryRepo.GetBitmap(ctx, wallet)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("bitmap lookup: %w", err))
	}
	for id := uint8(0); id <= domain.MaxRegistryID; id++ {
		if !bitmap.Enabled(id) {
			continue
		}
		auth, err := s.registryRepo.GetAuthorisation(ctx, id, contract)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("authorisation lookup: %w", err))
		}
		if auth == nil || !auth.Active {
			continue
		}
		if auth.Filter.Accept(data) {
			return true, nil
		}
	}
	return false, nil
}

// ToggleRegistry flips a registry bit for a wallet. Only the wallet itself
// (via the relay quorum) or an authorised module may toggle; no-op toggles
// and unknown registry ids are rejected.
func (s *DappServiceImpl) ToggleRegistry(ctx context.Context, caller, wallet domain.Address, id uint8, enabled bool) error {
	if caller != wallet {
		authorised, err := s.moduleRepo.IsAuthorised(ctx, wallet, caller)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("module lookup: %w", err))
		}
		if !authorised {
			return apperror.ErrNotAuthorisedModule()
		}
	}
	if id > domain.MaxRegistryID {
		return apperror.ErrUnknownRegistry(id)
	}
	if id != domain.DefaultRegistryID {
		reg, err := s.registryRepo.GetRegistry(ctx, id)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("registry lookup: %w", err))
		}
		if reg == nil {
			return apperror.ErrUnknownRegistry(id)
		}
	}
	bitmap, err := s.registryRepo.GetBitmap(ctx, wallet)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("bitmap lookup: %w", err))
	}
	if bitmap.Enabled(id) == enabled {
		return apperror.ErrRegistryToggleNoop()
	}
	if err := s.registryRepo.SetBitmap(ctx, wallet, bitmap.WithEnabled(id, enabled)); err != nil {
		return apperror.InternalError(fmt.Errorf("set bitmap: %w", err))
	}

	s.log.Info().
		Str("wallet", wallet.Hex()).
		Uint8("registry", id).
		Bool("enabled", enabled).
		Msg("registry toggled")
	return nil
}

// CreateRegistry registers a new non-zero registry id under a manager.
// Global-owner only.
func (s *DappServiceImpl) CreateRegistry(ctx context.Context, caller domain.Address, id uint8, manager domain.Address) error {
	if caller != s.globalOwner {
		return apperror.ErrNotRegistryManager()
	}
	if id == domain.DefaultRegistryID || id > domain.MaxRegistryID {
		return apperror.ErrInvalidPayload(fmt.Sprintf("registry id must be in [1, %d]", domain.MaxRegistryID))
	}
	if manager.IsZero() {
		return apperror.ErrNullAddress("manager")
	}
	existing, err := s.registryRepo.GetRegistry(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("registry lookup: %w", err))
	}
	if existing != nil {
		return apperror.ErrDuplicateRegistry(id)
	}
	reg := &domain.Registry{ID: id, Manager: manager, CreatedAt: s.now()}
	if err := s.registryRepo.CreateRegistry(ctx, reg); err != nil {
		return apperror.InternalError(fmt.Errorf("create registry: %w", err))
	}

	s.log.Info().Uint8("registry", id).Str("manager", manager.Hex()).Msg("registry created")
	return nil
}

// RemoveRegistry deletes a non-zero registry. Global-owner only.
func (s *DappServiceImpl) RemoveRegistry(ctx context.Context, caller domain.Address, id uint8) error {
	if caller != s.globalOwner {
		return apperror.ErrNotRegistryManager()
	}
	if id == domain.DefaultRegistryID {
		return apperror.ErrInvalidPayload("the default registry cannot be removed")
	}
	existing, err := s.registryRepo.GetRegistry(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("registry lookup: %w", err))
	}
	if existing == nil {
		return apperror.ErrUnknownRegistry(id)
	}
	if err := s.registryRepo.DeleteRegistry(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete registry: %w", err))
	}

	s.log.Info().Uint8("registry", id).Msg("registry removed")
	return nil
}

// AddAuthorisation activates (contract, filter) under a registry. The
// registry's manager only; the global owner stands in for the default
// registry's manager.
func (s *DappServiceImpl) AddAuthorisation(ctx context.Context, caller domain.Address, id uint8, contract domain.Address, filter *domain.Filter) error {
	if contract.IsZero() {
		return apperror.ErrNullAddress("contract")
	}
	if id == domain.DefaultRegistryID {
		if caller != s.globalOwner {
			return apperror.ErrNotRegistryManager()
		}
	} else {
		reg, err := s.registryRepo.GetRegistry(ctx, id)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("registry lookup: %w", err))
		}
		if reg == nil {
			return apperror.ErrUnknownRegistry(id)
		}
		if caller != reg.Manager {
			return apperror.ErrNotRegistryManager()
		}
	}
	auth := &domain.RegistryAuthorisation{
		RegistryID: id,
		Contract:   contract,
		Active:     true,
		Filter:     filter,
	}
	if err := s.registryRepo.UpsertAuthorisation(ctx, auth); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert authorisation: %w", err))
	}

	s.log.Info().
		Uint8("registry", id).
		Str("contract", contract.Hex()).
		Bool("filtered", filter != nil).
		Msg("contract authorised in registry")
	return nil
}
