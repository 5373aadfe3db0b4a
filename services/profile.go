package services

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dicebet/apperr"
	"dicebet/models"
)

// ProfileService is the read-only reporting layer. Everything here is derived
// from committed Bet/Game/WalletTransaction rows; it never mutates state.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type OptionStats struct {
	Total   int     `json:"total"`
	Won     int     `json:"won"`
	WinRate float64 `json:"win_rate"`
}

type DiceFrequency struct {
	Dice1 [6]int  `json:"dice1"`
	Dice2 [6]int  `json:"dice2"`
	Total [11]int `json:"total"` // totals 2..12
}

type MostCommon struct {
	Dice1 int `json:"dice1"`
	Dice2 int `json:"dice2"`
	Total int `json:"total"`
}

type Streaks struct {
	Current     int `json:"current"` // positive = win streak, negative = lose streak
	LongestWin  int `json:"longest_win"`
	LongestLose int `json:"longest_lose"`
}

type Overview struct {
	TotalBets     int             `json:"total_bets"`
	CompletedBets int             `json:"completed_bets"`
	WonBets       int             `json:"won_bets"`
	LostBets      int             `json:"lost_bets"`
	PendingBets   int             `json:"pending_bets"`
	WinRate       float64         `json:"win_rate"`
	TotalWagered  decimal.Decimal `json:"total_wagered"`
	TotalWon      decimal.Decimal `json:"total_won"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROI           float64         `json:"roi"`
}

type Averages struct {
	BetAmount decimal.Decimal `json:"bet_amount"`
	Payout    decimal.Decimal `json:"payout"`
}

type GameStats struct {
	Overview   Overview               `json:"overview"`
	BetOptions map[string]OptionStats `json:"bet_options"`
	Frequency  DiceFrequency          `json:"dice_frequency"`
	MostCommon MostCommon             `json:"most_common"`
	Streaks    Streaks                `json:"streaks"`
	Averages   Averages               `json:"averages"`
}

type Profile struct {
	User               *models.User               `json:"user"`
	Balance            decimal.Decimal            `json:"balance"`
	Stats              GameStats                  `json:"stats"`
	RecentBets         []models.Bet               `json:"recent_bets"`
	RecentTransactions []models.WalletTransaction `json:"recent_transactions"`
}

// GetProfile aggregates a user's betting statistics with their recent
// activity.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	err := db.Preload("Wallet").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "USER_NOT_FOUND")
		}
		return nil, err
	}

	var bets []models.Bet
	if err := db.Preload("Game").Where("user_id = ?", userID).Find(&bets).Error; err != nil {
		return nil, err
	}

	var recentBets []models.Bet
	if err := db.Preload("Game").Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Limit(10).Find(&recentBets).Error; err != nil {
		return nil, err
	}

	var recentTrx []models.WalletTransaction
	balance := decimal.Zero
	if user.Wallet != nil {
		balance = user.Wallet.Balance
		if err := db.Where("wallet_id = ?", user.Wallet.ID).
			Order("created_at DESC, id DESC").Limit(10).Find(&recentTrx).Error; err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:               &user,
		Balance:            balance,
		Stats:              ComputeStats(bets),
		RecentBets:         recentBets,
		RecentTransactions: recentTrx,
	}, nil
}

// ComputeStats derives the full statistics block from a user's bets. Streaks
// walk the bets ordered by creation time with the bet id as the secondary
// key, so same-timestamp bets count in insertion order; pending bets are
// skipped.
func ComputeStats(bets []models.Bet) GameStats {
	stats := GameStats{
		BetOptions: map[string]OptionStats{},
		Overview: Overview{
			TotalWagered: decimal.Zero,
			TotalWon:     decimal.Zero,
			NetProfit:    decimal.Zero,
		},
		Averages: Averages{BetAmount: decimal.Zero, Payout: decimal.Zero},
	}

	options := map[string]*OptionStats{
		models.BetOptionUp:    {},
		models.BetOptionDown:  {},
		models.BetOptionExact: {},
	}

	for _, bet := range bets {
		stats.Overview.TotalBets++
		stats.Overview.TotalWagered = stats.Overview.TotalWagered.Add(bet.Amount)

		opt := options[bet.BetOption]
		if opt == nil {
			opt = &OptionStats{}
			options[bet.BetOption] = opt
		}
		opt.Total++

		switch bet.Status {
		case models.BetStatusWon:
			stats.Overview.WonBets++
			stats.Overview.CompletedBets++
			stats.Overview.TotalWon = stats.Overview.TotalWon.Add(bet.Payout)
			opt.Won++
		case models.BetStatusLost:
			stats.Overview.LostBets++
			stats.Overview.CompletedBets++
		default:
			stats.Overview.PendingBets++
		}

		if bet.Game != nil {
			g := bet.Game
			if g.Dice1 >= 1 && g.Dice1 <= 6 {
				stats.Frequency.Dice1[g.Dice1-1]++
			}
			if g.Dice2 >= 1 && g.Dice2 <= 6 {
				stats.Frequency.Dice2[g.Dice2-1]++
			}
			if g.Total >= 2 && g.Total <= 12 {
				stats.Frequency.Total[g.Total-2]++
			}
		}
	}

	stats.Overview.NetProfit = stats.Overview.TotalWon.Sub(stats.Overview.TotalWagered)
	if stats.Overview.CompletedBets > 0 {
		stats.Overview.WinRate = round2(float64(stats.Overview.WonBets) / float64(stats.Overview.CompletedBets) * 100)
	}
	if stats.Overview.TotalWagered.IsPositive() {
		roi, _ := stats.Overview.NetProfit.Div(stats.Overview.TotalWagered).Float64()
		stats.Overview.ROI = round2(roi * 100)
	}

	for name, opt := range options {
		if opt.Total > 0 {
			opt.WinRate = round2(float64(opt.Won) / float64(opt.Total) * 100)
		}
		stats.BetOptions[name] = *opt
	}

	stats.MostCommon = MostCommon{
		Dice1: maxIndex(stats.Frequency.Dice1[:]) + 1,
		Dice2: maxIndex(stats.Frequency.Dice2[:]) + 1,
		Total: maxIndex(stats.Frequency.Total[:]) + 2,
	}

	if stats.Overview.TotalBets > 0 {
		stats.Averages.BetAmount = stats.Overview.TotalWagered.
			Div(decimal.NewFromInt(int64(stats.Overview.TotalBets))).Round(2)
	}
	if stats.Overview.WonBets > 0 {
		stats.Averages.Payout = stats.Overview.TotalWon.
			Div(decimal.NewFromInt(int64(stats.Overview.WonBets))).Round(2)
	}

	stats.Streaks = computeStreaks(bets)
	return stats
}

func computeStreaks(bets []models.Bet) Streaks {
	sorted := make([]models.Bet, len(bets))
	copy(sorted, bets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var streaks Streaks
	winRun, loseRun := 0, 0
	for _, bet := range sorted {
		switch bet.Status {
		case models.BetStatusWon:
			winRun++
			loseRun = 0
			if winRun > streaks.LongestWin {
				streaks.LongestWin = winRun
			}
		case models.BetStatusLost:
			loseRun++
			winRun = 0
			if loseRun > streaks.LongestLose {
				streaks.LongestLose = loseRun
			}
		}
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		switch sorted[i].Status {
		case models.BetStatusPending:
			continue
		case models.BetStatusWon:
			streaks.Current = winRun
		default:
			streaks.Current = -loseRun
		}
		break
	}
	return streaks
}

func maxIndex(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
