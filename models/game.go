package models

import "gorm.io/gorm"

// Game is the dice outcome tied 1:1 to a resolved bet. The unique index on
// BetID is the second integrity layer against double resolution.
type Game struct {
	gorm.Model

	BetID  uint   `gorm:"uniqueIndex;not null" json:"bet_id"`
	Dice1  int    `gorm:"not null" json:"dice1"`
	Dice2  int    `gorm:"not null" json:"dice2"`
	Total  int    `gorm:"not null" json:"total"`
	Result string `gorm:"size:8;not null" json:"result"`
}
