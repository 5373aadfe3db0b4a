package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ledger entry directions.
const (
	TrxTypeCredit = "CREDIT"
	TrxTypeDebit  = "DEBIT"
)

// Ledger entry reasons.
const (
	TrxReasonPlaceBet = "PLACE_BET"
	TrxReasonBetWin   = "BET_WIN"
	TrxReasonBonus    = "BONUS"
)

// WalletTransaction is the append-only audit ledger. Wallet balance is a
// cached projection of these rows; entries are never updated, only
// soft-deleted. BetID and GameID link the entry back to its origin and may
// be absent (login bonus).
type WalletTransaction struct {
	gorm.Model

	WalletID    uint            `gorm:"index;not null" json:"wallet_id"`
	TrxType     string          `gorm:"size:8;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Reason      string          `gorm:"size:16;not null" json:"reason"`
	BetID       *uint           `gorm:"index" json:"bet_id,omitempty"`
	GameID      *uint           `json:"game_id,omitempty"`
	PrevBalance decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"prev_balance"`
	NewBalance  decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"new_balance"`
}
