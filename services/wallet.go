package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dicebet/apperr"
	"dicebet/models"
)

// Wallet accessor. Every function here takes the caller's transaction handle;
// pairing a balance mutation with its ledger append inside one transaction is
// the caller's job.

// GetWalletForUpdate loads a user's wallet under a row-level exclusive lock
// (SELECT ... FOR UPDATE). Concurrent placement/settlement on the same wallet
// serializes on this lock.
func GetWalletForUpdate(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "WALLET_NOT_FOUND")
		}
		return nil, err
	}
	return &wallet, nil
}

// FindOrCreateWallet returns the user's wallet, creating it with the given
// opening balance on first login. The second return reports whether a new
// wallet was created. The lock on the existing-wallet path keeps concurrent
// logins from computing stale bonus balances.
func FindOrCreateWallet(tx *gorm.DB, userID uint, initialBalance decimal.Decimal) (*models.Wallet, bool, error) {
	var wallet models.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&wallet).Error
	if err == nil {
		return &wallet, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	wallet = models.Wallet{UserID: userID, Balance: initialBalance}
	if err := tx.Create(&wallet).Error; err != nil {
		return nil, false, err
	}
	return &wallet, true, nil
}

// CreditWallet adds amount to the wallet balance and persists it, returning
// the new balance.
func CreditWallet(tx *gorm.DB, wallet *models.Wallet, amount decimal.Decimal) (decimal.Decimal, error) {
	newBalance := wallet.Balance.Add(amount)
	if err := tx.Model(wallet).Update("balance", newBalance).Error; err != nil {
		return decimal.Zero, err
	}
	wallet.Balance = newBalance
	return newBalance, nil
}

// DebitWallet subtracts amount from the wallet balance and persists it.
// Fails with InsufficientFunds when amount exceeds the balance, so a wallet
// can never go negative.
func DebitWallet(tx *gorm.DB, wallet *models.Wallet, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(wallet.Balance) {
		return decimal.Zero, apperr.New(apperr.KindInsufficientFunds, "INSUFFICIENT_BALANCE")
	}
	newBalance := wallet.Balance.Sub(amount)
	if err := tx.Model(wallet).Update("balance", newBalance).Error; err != nil {
		return decimal.Zero, err
	}
	wallet.Balance = newBalance
	return newBalance, nil
}
