package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Wallet struct {
	gorm.Model

	UserID  uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"balance"`

	Transactions []WalletTransaction `gorm:"foreignKey:WalletID" json:"-"`
}
