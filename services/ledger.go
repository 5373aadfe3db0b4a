package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dicebet/models"
)

// AppendLedger writes one append-only ledger entry on the caller's
// transaction handle. Must run in the same transaction as the balance
// mutation it records; existing entries are never updated or removed.
func AppendLedger(
	tx *gorm.DB,
	walletID uint,
	trxType, reason string,
	amount, prevBalance, newBalance decimal.Decimal,
	betID, gameID *uint,
) (*models.WalletTransaction, error) {
	entry := models.WalletTransaction{
		WalletID:    walletID,
		TrxType:     trxType,
		Amount:      amount,
		Reason:      reason,
		BetID:       betID,
		GameID:      gameID,
		PrevBalance: prevBalance,
		NewBalance:  newBalance,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
