package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardianRepo_Add(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardianRepo(mock)
	wallet := testAddress(0x10)
	guardian := testAddress(0x20)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO guardians").
		WithArgs(wallet.Hex(), guardian.Hex()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Add(context.Background(), tx, wallet, guardian)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardianRepo_Remove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardianRepo(mock)
	wallet := testAddress(0x10)
	guardian := testAddress(0x20)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM guardians").
		WithArgs(wallet.Hex(), guardian.Hex()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Remove(context.Background(), tx, wallet, guardian)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardianRepo_IsGuardian(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardianRepo(mock)
	wallet := testAddress(0x10)
	guardian := testAddress(0x20)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(wallet.Hex(), guardian.Hex()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.IsGuardian(context.Background(), wallet, guardian)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardianRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardianRepo(mock)
	wallet := testAddress(0x10)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(wallet.Hex()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), wallet)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardianRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardianRepo(mock)
	wallet := testAddress(0x10)
	g1 := testAddress(0x20)
	g2 := testAddress(0x21)

	mock.ExpectQuery("SELECT guardian FROM guardians").
		WithArgs(wallet.Hex()).
		WillReturnRows(pgxmock.NewRows([]string{"guardian"}).
			AddRow(g1.Hex()).
			AddRow(g2.Hex()))

	guardians, err := repo.List(context.Background(), wallet)
	require.NoError(t, err)
	require.Len(t, guardians, 2)
	assert.Equal(t, g1, guardians[0])
	assert.Equal(t, g2, guardians[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}
