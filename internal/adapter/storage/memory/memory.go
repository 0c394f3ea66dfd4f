// Package memory provides in-memory implementations of the storage ports.
// They back the test suites and the storage-free demo mode; semantics mirror
// the postgres/redis adapters, including (nil, nil) misses.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- Wallet repo ---

type WalletRepo struct {
	mu      sync.RWMutex
	wallets map[domain.Address]*domain.Wallet
}

func NewWalletRepo() *WalletRepo {
	return &WalletRepo{wallets: make(map[domain.Address]*domain.Wallet)}
}

func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.Address]; ok {
		return fmt.Errorf("wallet already exists")
	}
	cp := *w
	r.wallets[w.Address] = &cp
	return nil
}

func (r *WalletRepo) Get(ctx context.Context, addr domain.Address) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[addr]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *WalletRepo) SetOwner(ctx context.Context, tx pgx.Tx, wallet, newOwner domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[wallet]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.Owner = newOwner
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *WalletRepo) AdvanceNonce(ctx context.Context, wallet domain.Address, expected uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[wallet]
	if !ok {
		return false, fmt.Errorf("wallet not found")
	}
	if w.Nonce != expected {
		return false, nil
	}
	w.Nonce++
	return true, nil
}

// --- Guardian repo ---

type GuardianRepo struct {
	mu        sync.RWMutex
	guardians map[domain.Address]map[domain.Address]bool
}

func NewGuardianRepo() *GuardianRepo {
	return &GuardianRepo{guardians: make(map[domain.Address]map[domain.Address]bool)}
}

func (r *GuardianRepo) Add(ctx context.Context, tx pgx.Tx, wallet, guardian domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.guardians[wallet]
	if !ok {
		set = make(map[domain.Address]bool)
		r.guardians[wallet] = set
	}
	set[guardian] = true
	return nil
}

func (r *GuardianRepo) Remove(ctx context.Context, tx pgx.Tx, wallet, guardian domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guardians[wallet], guardian)
	return nil
}

func (r *GuardianRepo) IsGuardian(ctx context.Context, wallet, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guardians[wallet][addr], nil
}

func (r *GuardianRepo) Count(ctx context.Context, wallet domain.Address) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.guardians[wallet]), nil
}

func (r *GuardianRepo) List(ctx context.Context, wallet domain.Address) ([]domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Address, 0, len(r.guardians[wallet]))
	for g := range r.guardians[wallet] {
		list = append(list, g)
	}
	return list, nil
}

// --- Pending guardian change repo ---

type PendingChangeRepo struct {
	mu      sync.RWMutex
	changes map[string]*domain.PendingGuardianChange
}

func NewPendingChangeRepo() *PendingChangeRepo {
	return &PendingChangeRepo{changes: make(map[string]*domain.PendingGuardianChange)}
}

func (r *PendingChangeRepo) Create(ctx context.Context, change *domain.PendingGuardianChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *change
	r.changes[change.Key()] = &cp
	return nil
}

func (r *PendingChangeRepo) Get(ctx context.Context, key string) (*domain.PendingGuardianChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.changes[key]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *PendingChangeRepo) Delete(ctx context.Context, tx pgx.Tx, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.changes, key)
	return nil
}

// --- Recovery repo ---

type RecoveryRepo struct {
	mu         sync.RWMutex
	recoveries map[domain.Address]*domain.RecoveryConfig
}

func NewRecoveryRepo() *RecoveryRepo {
	return &RecoveryRepo{recoveries: make(map[domain.Address]*domain.RecoveryConfig)}
}

func (r *RecoveryRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.RecoveryConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recoveries[rec.Wallet]; ok {
		return fmt.Errorf("recovery already in progress")
	}
	cp := *rec
	r.recoveries[rec.Wallet] = &cp
	return nil
}

func (r *RecoveryRepo) Get(ctx context.Context, wallet domain.Address) (*domain.RecoveryConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recoveries[wallet]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *RecoveryRepo) Delete(ctx context.Context, tx pgx.Tx, wallet domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.recoveries, wallet)
	return nil
}

// --- Lock repo ---

type LockRepo struct {
	mu    sync.RWMutex
	locks map[domain.Address]*domain.Lock
}

func NewLockRepo() *LockRepo {
	return &LockRepo{locks: make(map[domain.Address]*domain.Lock)}
}

func (r *LockRepo) Set(ctx context.Context, tx pgx.Tx, lock *domain.Lock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *lock
	r.locks[lock.Wallet] = &cp
	return nil
}

func (r *LockRepo) Get(ctx context.Context, wallet domain.Address) (*domain.Lock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locks[wallet]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *LockRepo) Clear(ctx context.Context, tx pgx.Tx, wallet domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, wallet)
	return nil
}

// --- Whitelist repo ---

type whitelistKey struct {
	wallet, target domain.Address
}

type WhitelistRepo struct {
	mu      sync.RWMutex
	entries map[whitelistKey]*domain.WhitelistEntry
}

func NewWhitelistRepo() *WhitelistRepo {
	return &WhitelistRepo{entries: make(map[whitelistKey]*domain.WhitelistEntry)}
}

func (r *WhitelistRepo) Set(ctx context.Context, entry *domain.WhitelistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[whitelistKey{entry.Wallet, entry.Target}] = &cp
	return nil
}

func (r *WhitelistRepo) Get(ctx context.Context, wallet, target domain.Address) (*domain.WhitelistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[whitelistKey{wallet, target}]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *WhitelistRepo) Delete(ctx context.Context, wallet, target domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, whitelistKey{wallet, target})
	return nil
}

// --- Registry repo ---

type authKey struct {
	id       uint8
	contract domain.Address
}

type RegistryRepo struct {
	mu         sync.RWMutex
	registries map[uint8]*domain.Registry
	auths      map[authKey]*domain.RegistryAuthorisation
	bitmaps    map[domain.Address]domain.RegistryBitmap
}

func NewRegistryRepo() *RegistryRepo {
	return &RegistryRepo{
		registries: make(map[uint8]*domain.Registry),
		auths:      make(map[authKey]*domain.RegistryAuthorisation),
		bitmaps:    make(map[domain.Address]domain.RegistryBitmap),
	}
}

func (r *RegistryRepo) CreateRegistry(ctx context.Context, reg *domain.Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.registries[reg.ID]; ok {
		return fmt.Errorf("registry already exists")
	}
	cp := *reg
	r.registries[reg.ID] = &cp
	return nil
}

func (r *RegistryRepo) GetRegistry(ctx context.Context, id uint8) (*domain.Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registries[id]
	if !ok {
		return nil, nil
	}
	cp := *reg
	return &cp, nil
}

func (r *RegistryRepo) DeleteRegistry(ctx context.Context, id uint8) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.registries, id)
	for k := range r.auths {
		if k.id == id {
			delete(r.auths, k)
		}
	}
	return nil
}

func (r *RegistryRepo) UpsertAuthorisation(ctx context.Context, auth *domain.RegistryAuthorisation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *auth
	r.auths[authKey{auth.RegistryID, auth.Contract}] = &cp
	return nil
}

func (r *RegistryRepo) GetAuthorisation(ctx context.Context, id uint8, contract domain.Address) (*domain.RegistryAuthorisation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.auths[authKey{id, contract}]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *RegistryRepo) GetBitmap(ctx context.Context, wallet domain.Address) (domain.RegistryBitmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bitmaps[wallet], nil
}

func (r *RegistryRepo) SetBitmap(ctx context.Context, wallet domain.Address, bitmap domain.RegistryBitmap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bitmaps[wallet] = bitmap
	return nil
}

// --- Module repo ---

type moduleKey struct {
	wallet, module domain.Address
}

type ModuleRepo struct {
	mu      sync.RWMutex
	modules map[moduleKey]bool
}

func NewModuleRepo() *ModuleRepo {
	return &ModuleRepo{modules: make(map[moduleKey]bool)}
}

func (r *ModuleRepo) Add(ctx context.Context, wallet, module domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[moduleKey{wallet, module}] = true
	return nil
}

func (r *ModuleRepo) IsAuthorised(ctx context.Context, wallet, module domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules[moduleKey{wallet, module}], nil
}

// --- Audit repo ---

type AuditRepo struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns a snapshot of all recorded entries.
func (r *AuditRepo) Entries() []domain.AuditEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// --- Session store ---

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.Address]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[domain.Address]*domain.Session)}
}

func (s *SessionStore) Put(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.Wallet] = &cp
	return nil
}

func (s *SessionStore) Get(ctx context.Context, wallet domain.Address) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[wallet]
	if !ok {
		return nil, nil
	}
	if !sess.SingleUse() && !time.Now().UTC().Before(sess.ExpiresAt) {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (s *SessionStore) Delete(ctx context.Context, wallet domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, wallet)
	return nil
}

// --- Replay guard ---

type ReplayGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewReplayGuard() *ReplayGuard {
	return &ReplayGuard{seen: make(map[string]time.Time)}
}

func (g *ReplayGuard) SetOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now()
	if expiry, ok := g.seen[key]; ok && now.Before(expiry) {
		return false, nil
	}
	g.seen[key] = now.Add(ttl)
	return true, nil
}

// --- Transactor (no-op tx) ---

type Transactor struct{}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx for in-memory use: the repos above apply writes
// immediately, so commit and rollback have nothing to do.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

var _ ports.WalletRepository = (*WalletRepo)(nil)
var _ ports.GuardianRepository = (*GuardianRepo)(nil)
var _ ports.PendingChangeRepository = (*PendingChangeRepo)(nil)
var _ ports.RecoveryRepository = (*RecoveryRepo)(nil)
var _ ports.LockRepository = (*LockRepo)(nil)
var _ ports.WhitelistRepository = (*WhitelistRepo)(nil)
var _ ports.RegistryRepository = (*RegistryRepo)(nil)
var _ ports.ModuleRepository = (*ModuleRepo)(nil)
var _ ports.AuditRepository = (*AuditRepo)(nil)
var _ ports.SessionStore = (*SessionStore)(nil)
var _ ports.ReplayGuard = (*ReplayGuard)(nil)
var _ ports.DBTransactor = (*Transactor)(nil)
