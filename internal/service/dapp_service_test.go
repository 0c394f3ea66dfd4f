package service

import (
	"context"
	"testing"

	"smart-wallet-core/internal/adapter/storage/memory"
	"smart-wallet-core/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dappFixture struct {
	svc        *DappServiceImpl
	registries *memory.RegistryRepo
	modules    *memory.ModuleRepo

	wallet      domain.Address
	globalOwner domain.Address
	contract    domain.Address
}

func setupDappService(t *testing.T) *dappFixture {
	t.Helper()
	f := &dappFixture{
		registries:  memory.NewRegistryRepo(),
		modules:     memory.NewModuleRepo(),
		wallet:      testAddr(0x10),
		globalOwner: testAddr(0x01),
		contract:    testAddr(0x40),
	}
	f.svc = NewDappService(f.registries, f.modules, f.globalOwner, zerolog.Nop())
	return f
}

func TestDappService_DefaultRegistryAuthorisation(t *testing.T) {
	f := setupDappService(t)
	ctx := context.Background()

	// Not listed anywhere yet.
	ok, err := f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// The global owner lists the contract in the default registry; every
	// fresh wallet accepts it without a toggle.
	require.NoError(t, f.svc.AddAuthorisation(ctx, f.globalOwner, domain.DefaultRegistryID, f.contract, nil))

	ok, err = f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDappService_ToggleDefaultRegistryOff(t *testing.T) {
	f := setupDappService(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddAuthorisation(ctx, f.globalOwner, domain.DefaultRegistryID, f.contract, nil))
	require.NoError(t, f.svc.ToggleRegistry(ctx, f.wallet, f.wallet, domain.DefaultRegistryID, false))

	ok, err := f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
	require.NoError(t, err)
	assert.False(t, ok, "opted-out wallet rejects default-registry contracts")

	// Other wallets are unaffected.
	ok, err = f.svc.IsAuthorised(ctx, testAddr(0x11), f.contract, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDappService_ToggleRegistry_Rejections(t *testing.T) {
	f := setupDappService(t)
	ctx := context.Background()

	t.Run("caller neither wallet nor module", func(t *testing.T) {
		err := f.svc.ToggleRegistry(ctx, testAddr(0xDD), f.wallet, domain.DefaultRegistryID, false)
		assertCode(t, err, "AUTH_007")
	})

	t.Run("authorised module may toggle", func(t *testing.T) {
		module := testAddr(0x50)
		require.NoError(t, f.modules.Add(ctx, f.wallet, module))
		require.NoError(t, f.svc.ToggleRegistry(ctx, module, f.wallet, domain.DefaultRegistryID, false))
		require.NoError(t, f.svc.ToggleRegistry(ctx, module, f.wallet, domain.DefaultRegistryID, true))
	})

	t.Run("id out of range", func(t *testing.T) {
		err := f.svc.ToggleRegistry(ctx, f.wallet, f.wallet, domain.MaxRegistryID+1, true)
		assertCode(t, err, "VAL_007")
	})

	t.Run("unknown non-default registry", func(t *testing.T) {
		err := f.svc.ToggleRegistry(ctx, f.wallet, f.wallet, 5, true)
		assertCode(t, err, "VAL_007")
	})

	t.Run("no-op toggle", func(t *testing.T) {
		err := f.svc.ToggleRegistry(ctx, f.wallet, f.wallet, domain.DefaultRegistryID, true)
		assertCode(t, err, "STATE_007")
	})
}

func TestDappService_CommunityRegistryLifecycle(t *testing.T) {
	f := setupDappService(t)
	ctx := context.Background()
	manager := testAddr(0x60)

	t.Run("create is global-owner only", func(t *testing.T) {
		err := f.svc.CreateRegistry(ctx, manager, 3, manager)
		assertCode(t, err, "AUTH_008")
	})

	require.NoError(t, f.svc.CreateRegistry(ctx, f.globalOwner, 3, manager))

	t.Run("duplicate id", func(t *testing.T) {
		err := f.svc.CreateRegistry(ctx, f.globalOwner, 3, manager)
		assertCode(t, err, "VAL_008")
	})

	t.Run("id zero reserved", func(t *testing.T) {
		err := f.svc.CreateRegistry(ctx, f.globalOwner, 0, manager)
		assertCode(t, err, "VAL_009")
	})

	t.Run("manager authorises, global owner may not", func(t *testing.T) {
		err := f.svc.AddAuthorisation(ctx, f.globalOwner, 3, f.contract, nil)
		assertCode(t, err, "AUTH_008")
		require.NoError(t, f.svc.AddAuthorisation(ctx, manager, 3, f.contract, nil))
	})

	t.Run("wallet must opt in", func(t *testing.T) {
		ok, err := f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, f.svc.ToggleRegistry(ctx, f.wallet, f.wallet, 3, true))
		ok, err = f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		err := f.svc.RemoveRegistry(ctx, manager, 3)
		assertCode(t, err, "AUTH_008")
		require.NoError(t, f.svc.RemoveRegistry(ctx, f.globalOwner, 3))

		// Authorisations die with the registry.
		ok, err := f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
		require.NoError(t, err)
		assert.False(t, ok)

		err = f.svc.RemoveRegistry(ctx, f.globalOwner, 3)
		assertCode(t, err, "VAL_007")
	})
}

func TestDappService_RemoveDefaultRegistryRefused(t *testing.T) {
	f := setupDappService(t)
	err := f.svc.RemoveRegistry(context.Background(), f.globalOwner, domain.DefaultRegistryID)
	assertCode(t, err, "VAL_009")
}

func TestDappService_FilterEnforcement(t *testing.T) {
	f := setupDappService(t)
	ctx := context.Background()

	filter := &domain.Filter{
		Type:      domain.FilterMethodAllowlist,
		Selectors: []string{"a9059cbb"},
	}
	require.NoError(t, f.svc.AddAuthorisation(ctx, f.globalOwner, domain.DefaultRegistryID, f.contract, filter))

	allowed := append([]byte{0xa9, 0x05, 0x9c, 0xbb}, make([]byte, 64)...)
	blocked := append([]byte{0xde, 0xad, 0xbe, 0xef}, make([]byte, 64)...)

	ok, err := f.svc.IsAuthorised(ctx, f.wallet, f.contract, allowed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.IsAuthorised(ctx, f.wallet, f.contract, blocked)
	require.NoError(t, err)
	assert.False(t, ok)

	// Plain value transfer (no calldata) always passes the filter.
	ok, err = f.svc.IsAuthorised(ctx, f.wallet, f.contract, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDappService_AddAuthorisation_Validation(t *testing.T) {
	f := setupDappService(t)
	ctx := context.Background()

	t.Run("zero contract", func(t *testing.T) {
		err := f.svc.AddAuthorisation(ctx, f.globalOwner, domain.DefaultRegistryID, domain.ZeroAddress, nil)
		assertCode(t, err, "VAL_001")
	})

	t.Run("unknown registry", func(t *testing.T) {
		err := f.svc.AddAuthorisation(ctx, f.globalOwner, 9, f.contract, nil)
		assertCode(t, err, "VAL_007")
	})
}
