package services

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"dicebet/models"
)

// Payout multipliers. EXACT pays 4x because only 6 of 36 dice pairs sum to
// seven; UP and DOWN pay 2x.
var (
	multiplierExact = decimal.NewFromInt(4)
	multiplierSide  = decimal.NewFromInt(2)
)

// DiceRoller returns two die values in [1,6]. Injected so settlement paths
// are deterministic under test.
type DiceRoller func() (int, int)

// RollDice is the production roller.
func RollDice() (int, int) {
	return rand.IntN(6) + 1, rand.IntN(6) + 1
}

// Classify maps a dice pair to its total and result category:
// UP for totals above seven, DOWN below, EXACT on seven.
func Classify(dice1, dice2 int) (total int, result string) {
	total = dice1 + dice2
	switch {
	case total > 7:
		result = models.BetOptionUp
	case total < 7:
		result = models.BetOptionDown
	default:
		result = models.BetOptionExact
	}
	return total, result
}

// Settle decides a bet given the roll's result category. The payout is zero
// on a loss, amount times the option's multiplier on a win.
func Settle(betOption, result string, amount decimal.Decimal) (won bool, payout decimal.Decimal) {
	if betOption != result {
		return false, decimal.Zero
	}
	if betOption == models.BetOptionExact {
		return true, amount.Mul(multiplierExact)
	}
	return true, amount.Mul(multiplierSide)
}
