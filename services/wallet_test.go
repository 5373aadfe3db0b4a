package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicebet/apperr"
	"dicebet/models"
)

func TestDebitWalletRejectsOverdraft(t *testing.T) {
	wallet := &models.Wallet{Balance: decimal.NewFromInt(50)}

	// The guard fires before any write is attempted.
	_, err := DebitWallet(nil, wallet, decimal.NewFromInt(100))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInsufficientFunds, apperr.KindOf(err))
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(50)))
}

func TestGetWalletForUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = .+FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := GetWalletForUpdate(db, 42)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreditAndDebitArithmetic(t *testing.T) {
	db, mock := newMockDB(t)

	wallet := &models.Wallet{Balance: decimal.NewFromInt(400)}
	wallet.ID = 7

	mock.ExpectExec(`UPDATE "wallets" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	balance, err := CreditWallet(db, wallet, decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(600)))
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(600)))

	mock.ExpectExec(`UPDATE "wallets" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	balance, err = DebitWallet(db, wallet, decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
