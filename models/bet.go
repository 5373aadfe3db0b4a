package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bet options. The player wagers on where the two-dice total lands
// relative to seven.
const (
	BetOptionUp    = "UP"
	BetOptionDown  = "DOWN"
	BetOptionExact = "EXACT"
)

// Bet statuses. PENDING moves exactly once to WON or LOST.
const (
	BetStatusPending = "PENDING"
	BetStatusWon     = "WON"
	BetStatusLost    = "LOST"
)

// ValidBetOption reports whether s is one of the allowed options.
func ValidBetOption(s string) bool {
	return s == BetOptionUp || s == BetOptionDown || s == BetOptionExact
}

type Bet struct {
	gorm.Model

	UserID    uint            `gorm:"index;not null" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	BetOption string          `gorm:"size:8;not null" json:"bet_option"`
	Status    string          `gorm:"size:8;not null;default:PENDING;index" json:"status"`
	Payout    decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"payout"`

	Game *Game `gorm:"foreignKey:BetID" json:"game,omitempty"`
}
