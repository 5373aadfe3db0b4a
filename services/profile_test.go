package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"dicebet/models"
)

func mkBet(id uint, createdAt time.Time, option, status string, amount, payout int64, game *models.Game) models.Bet {
	return models.Bet{
		Model:     gorm.Model{ID: id, CreatedAt: createdAt},
		UserID:    1,
		Amount:    decimal.NewFromInt(amount),
		BetOption: option,
		Status:    status,
		Payout:    decimal.NewFromInt(payout),
		Game:      game,
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Overview.TotalBets)
	assert.Equal(t, 0.0, stats.Overview.WinRate)
	assert.True(t, stats.Overview.TotalWagered.IsZero())
	assert.Equal(t, 0, stats.Streaks.Current)
	assert.Len(t, stats.BetOptions, 3)
}

func TestComputeStatsOverview(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bets := []models.Bet{
		mkBet(1, base, models.BetOptionUp, models.BetStatusWon, 100, 200,
			&models.Game{BetID: 1, Dice1: 5, Dice2: 6, Total: 11, Result: models.BetOptionUp}),
		mkBet(2, base.Add(time.Minute), models.BetOptionDown, models.BetStatusLost, 50, 0,
			&models.Game{BetID: 2, Dice1: 4, Dice2: 5, Total: 9, Result: models.BetOptionUp}),
		mkBet(3, base.Add(2*time.Minute), models.BetOptionExact, models.BetStatusWon, 5, 20,
			&models.Game{BetID: 3, Dice1: 3, Dice2: 4, Total: 7, Result: models.BetOptionExact}),
		mkBet(4, base.Add(3*time.Minute), models.BetOptionUp, models.BetStatusPending, 10, 0, nil),
	}

	stats := ComputeStats(bets)

	assert.Equal(t, 4, stats.Overview.TotalBets)
	assert.Equal(t, 3, stats.Overview.CompletedBets)
	assert.Equal(t, 2, stats.Overview.WonBets)
	assert.Equal(t, 1, stats.Overview.LostBets)
	assert.Equal(t, 1, stats.Overview.PendingBets)
	assert.InDelta(t, 66.67, stats.Overview.WinRate, 0.001)
	assert.True(t, stats.Overview.TotalWagered.Equal(decimal.NewFromInt(165)))
	assert.True(t, stats.Overview.TotalWon.Equal(decimal.NewFromInt(220)))
	assert.True(t, stats.Overview.NetProfit.Equal(decimal.NewFromInt(55)))
	assert.InDelta(t, 33.33, stats.Overview.ROI, 0.001)

	assert.Equal(t, 2, stats.BetOptions[models.BetOptionUp].Total)
	assert.Equal(t, 1, stats.BetOptions[models.BetOptionUp].Won)
	assert.InDelta(t, 50.0, stats.BetOptions[models.BetOptionUp].WinRate, 0.001)
	assert.Equal(t, 1, stats.BetOptions[models.BetOptionExact].Won)
	assert.InDelta(t, 100.0, stats.BetOptions[models.BetOptionExact].WinRate, 0.001)

	assert.True(t, stats.Averages.BetAmount.Equal(decimal.NewFromFloat(41.25)))
	assert.True(t, stats.Averages.Payout.Equal(decimal.NewFromInt(110)))
}

func TestComputeStatsDiceFrequency(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bets := []models.Bet{
		mkBet(1, base, models.BetOptionUp, models.BetStatusWon, 10, 20,
			&models.Game{BetID: 1, Dice1: 5, Dice2: 6, Total: 11, Result: models.BetOptionUp}),
		mkBet(2, base.Add(time.Minute), models.BetOptionUp, models.BetStatusWon, 10, 20,
			&models.Game{BetID: 2, Dice1: 5, Dice2: 4, Total: 9, Result: models.BetOptionUp}),
	}

	stats := ComputeStats(bets)

	assert.Equal(t, 2, stats.Frequency.Dice1[4]) // two fives
	assert.Equal(t, 1, stats.Frequency.Dice2[5])
	assert.Equal(t, 1, stats.Frequency.Dice2[3])
	assert.Equal(t, 1, stats.Frequency.Total[9]) // total 11
	assert.Equal(t, 1, stats.Frequency.Total[7]) // total 9

	assert.Equal(t, 5, stats.MostCommon.Dice1)
}

func TestComputeStreaks(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bets := []models.Bet{
		mkBet(1, base, models.BetOptionUp, models.BetStatusWon, 10, 20, nil),
		mkBet(2, base.Add(time.Minute), models.BetOptionUp, models.BetStatusWon, 10, 20, nil),
		mkBet(3, base.Add(2*time.Minute), models.BetOptionUp, models.BetStatusLost, 10, 0, nil),
		mkBet(4, base.Add(3*time.Minute), models.BetOptionUp, models.BetStatusPending, 10, 0, nil),
		mkBet(5, base.Add(4*time.Minute), models.BetOptionUp, models.BetStatusWon, 10, 20, nil),
	}

	stats := ComputeStats(bets)

	assert.Equal(t, 2, stats.Streaks.LongestWin)
	assert.Equal(t, 1, stats.Streaks.LongestLose)
	assert.Equal(t, 1, stats.Streaks.Current)
}

func TestComputeStreaksSameTimestampOrdersByID(t *testing.T) {
	// Two bets share a created_at; the bet id breaks the tie, so the later
	// id decides the current streak.
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bets := []models.Bet{
		mkBet(8, ts, models.BetOptionUp, models.BetStatusWon, 10, 20, nil),
		mkBet(7, ts, models.BetOptionUp, models.BetStatusLost, 10, 0, nil),
	}

	stats := ComputeStats(bets)

	assert.Equal(t, 1, stats.Streaks.Current)
	assert.Equal(t, 1, stats.Streaks.LongestWin)
	assert.Equal(t, 1, stats.Streaks.LongestLose)
}

func TestComputeStreaksAllLosses(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bets := []models.Bet{
		mkBet(1, base, models.BetOptionUp, models.BetStatusLost, 10, 0, nil),
		mkBet(2, base.Add(time.Minute), models.BetOptionDown, models.BetStatusLost, 10, 0, nil),
		mkBet(3, base.Add(2*time.Minute), models.BetOptionUp, models.BetStatusLost, 10, 0, nil),
	}

	stats := ComputeStats(bets)

	assert.Equal(t, -3, stats.Streaks.Current)
	assert.Equal(t, 0, stats.Streaks.LongestWin)
	assert.Equal(t, 3, stats.Streaks.LongestLose)
}
