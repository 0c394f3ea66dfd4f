package postgres

import (
	"context"
	"testing"
	"time"

	"smart-wallet-core/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(last byte) domain.Address {
	var a domain.Address
	a[len(a)-1] = last
	return a
}

func newTestWallet() *domain.Wallet {
	return &domain.Wallet{
		Address:   testAddress(0x10),
		Owner:     testAddress(0x11),
		Nonce:     7,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"address", "owner", "nonce", "created_at", "updated_at"}).
		AddRow(w.Address.Hex(), w.Owner.Hex(), int64(w.Nonce), w.CreatedAt, w.UpdatedAt)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.Address.Hex(), w.Owner.Hex(), int64(w.Nonce), w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE address").
		WithArgs(w.Address.Hex()).
		WillReturnRows(walletRow(w))

	result, err := repo.Get(context.Background(), w.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.Address, result.Address)
	assert.Equal(t, w.Owner, result.Owner)
	assert.Equal(t, uint64(7), result.Nonce)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	addr := testAddress(0xEE)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE address").
		WithArgs(addr.Hex()).
		WillReturnRows(pgxmock.NewRows([]string{"address", "owner", "nonce", "created_at", "updated_at"}))

	result, err := repo.Get(context.Background(), addr)
	require.NoError(t, err)
	assert.Nil(t, result, "a miss is (nil, nil), not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_SetOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	wallet := testAddress(0x10)
	newOwner := testAddress(0x30)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET owner").
		WithArgs(newOwner.Hex(), wallet.Hex()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetOwner(context.Background(), tx, wallet, newOwner)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_SetOwner_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET owner").
		WithArgs(testAddress(0x30).Hex(), testAddress(0xEE).Hex()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetOwner(context.Background(), tx, testAddress(0xEE), testAddress(0x30))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wallet not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AdvanceNonce(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	wallet := testAddress(0x10)

	mock.ExpectExec("UPDATE wallets SET nonce = nonce \\+ 1").
		WithArgs(wallet.Hex(), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	advanced, err := repo.AdvanceNonce(context.Background(), wallet, 7)
	require.NoError(t, err)
	assert.True(t, advanced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AdvanceNonce_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	wallet := testAddress(0x10)

	// The compare-and-set misses when another submission consumed the nonce.
	mock.ExpectExec("UPDATE wallets SET nonce = nonce \\+ 1").
		WithArgs(wallet.Hex(), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	advanced, err := repo.AdvanceNonce(context.Background(), wallet, 7)
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.NoError(t, mock.ExpectationsWereMet())
}
