package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smart-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RegistryRepo implements ports.RegistryRepository. Filters are stored as
// JSONB; the wallet bitmap is stored as BIGINT via a two's-complement cast,
// which round-trips all 64 bits.
type RegistryRepo struct {
	pool Pool
}

// NewRegistryRepo creates a new RegistryRepo.
func NewRegistryRepo(pool Pool) *RegistryRepo {
	return &RegistryRepo{pool: pool}
}

// CreateRegistry inserts a registry.
func (r *RegistryRepo) CreateRegistry(ctx context.Context, reg *domain.Registry) error {
	query := `INSERT INTO registries (id, manager, created_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, int16(reg.ID), reg.Manager.Hex(), reg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert registry: %w", err)
	}
	return nil
}

// GetRegistry fetches a registry by id.
func (r *RegistryRepo) GetRegistry(ctx context.Context, id uint8) (*domain.Registry, error) {
	query := `SELECT id, manager, created_at FROM registries WHERE id = $1`

	var (
		reg     domain.Registry
		regID   int16
		manager string
	)
	err := r.pool.QueryRow(ctx, query, int16(id)).Scan(&regID, &manager, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registry: %w", err)
	}
	reg.ID = uint8(regID)
	if reg.Manager, err = domain.ParseAddress(manager); err != nil {
		return nil, fmt.Errorf("stored registry manager: %w", err)
	}
	return &reg, nil
}

// DeleteRegistry removes a registry and its authorisations.
func (r *RegistryRepo) DeleteRegistry(ctx context.Context, id uint8) error {
	query := `DELETE FROM registries WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, int16(id)); err != nil {
		return fmt.Errorf("delete registry: %w", err)
	}
	return nil
}

// UpsertAuthorisation activates or updates (registry, contract, filter).
func (r *RegistryRepo) UpsertAuthorisation(ctx context.Context, auth *domain.RegistryAuthorisation) error {
	var filterJSON []byte
	if auth.Filter != nil {
		var err error
		if filterJSON, err = json.Marshal(auth.Filter); err != nil {
			return fmt.Errorf("marshal filter: %w", err)
		}
	}

	query := `INSERT INTO registry_authorisations (registry_id, contract, active, filter)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (registry_id, contract) DO UPDATE SET active = EXCLUDED.active, filter = EXCLUDED.filter`

	_, err := r.pool.Exec(ctx, query, int16(auth.RegistryID), auth.Contract.Hex(), auth.Active, filterJSON)
	if err != nil {
		return fmt.Errorf("upsert authorisation: %w", err)
	}
	return nil
}

// GetAuthorisation fetches one (registry, contract) authorisation.
func (r *RegistryRepo) GetAuthorisation(ctx context.Context, id uint8, contract domain.Address) (*domain.RegistryAuthorisation, error) {
	query := `SELECT registry_id, contract, active, filter FROM registry_authorisations
		WHERE registry_id = $1 AND contract = $2`

	var (
		auth       domain.RegistryAuthorisation
		regID      int16
		contr      string
		filterJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, int16(id), contract.Hex()).Scan(&regID, &contr, &auth.Active, &filterJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get authorisation: %w", err)
	}
	auth.RegistryID = uint8(regID)
	if auth.Contract, err = domain.ParseAddress(contr); err != nil {
		return nil, fmt.Errorf("stored authorisation contract: %w", err)
	}
	if len(filterJSON) > 0 {
		auth.Filter = &domain.Filter{}
		if err := json.Unmarshal(filterJSON, auth.Filter); err != nil {
			return nil, fmt.Errorf("unmarshal filter: %w", err)
		}
	}
	return &auth, nil
}

// GetBitmap fetches the wallet's enabled-registries bitmap. A missing row is
// the zero bitmap (default registry enabled, nothing else).
func (r *RegistryRepo) GetBitmap(ctx context.Context, wallet domain.Address) (domain.RegistryBitmap, error) {
	query := `SELECT bitmap FROM registry_bitmaps WHERE wallet = $1`
	var raw int64
	err := r.pool.QueryRow(ctx, query, wallet.Hex()).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get bitmap: %w", err)
	}
	return domain.RegistryBitmap(uint64(raw)), nil
}

// SetBitmap upserts the wallet's bitmap.
func (r *RegistryRepo) SetBitmap(ctx context.Context, wallet domain.Address, bitmap domain.RegistryBitmap) error {
	query := `INSERT INTO registry_bitmaps (wallet, bitmap) VALUES ($1, $2)
		ON CONFLICT (wallet) DO UPDATE SET bitmap = EXCLUDED.bitmap`
	if _, err := r.pool.Exec(ctx, query, wallet.Hex(), int64(bitmap)); err != nil {
		return fmt.Errorf("set bitmap: %w", err)
	}
	return nil
}
