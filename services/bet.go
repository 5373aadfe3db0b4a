package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dicebet/apperr"
	"dicebet/models"
)

// LoginBonusAmount is credited on every login; on first login it is the
// wallet's opening balance.
var LoginBonusAmount = decimal.NewFromInt(500)

// minBetAmount is the smallest allowed stake.
var minBetAmount = decimal.NewFromInt(1)

// BetService is the bet lifecycle engine. Every operation runs as one
// database transaction: the wallet mutation, its ledger entry, and the bet or
// game row commit together or not at all.
type BetService struct {
	db     *gorm.DB
	roll   DiceRoller
	events *EventPublisher
}

func NewBetService(db *gorm.DB, roll DiceRoller, events *EventPublisher) *BetService {
	if roll == nil {
		roll = RollDice
	}
	return &BetService{db: db, roll: roll, events: events}
}

type PlaceBetResult struct {
	Bet         *models.Bet
	PrevBalance decimal.Decimal
	NewBalance  decimal.Decimal
}

type ResolveBetResult struct {
	Bet     *models.Bet
	Game    *models.Game
	Won     bool
	Payout  decimal.Decimal
	Balance decimal.Decimal
}

type LoginBonusResult struct {
	Wallet        *models.Wallet
	WalletCreated bool
	Entry         *models.WalletTransaction
}

// PlaceBet debits the stake from the caller's wallet, appends the DEBIT
// ledger entry, and creates the PENDING bet, atomically. Validation is
// re-asserted here even though the handler checks it first.
func (s *BetService) PlaceBet(ctx context.Context, userID uint, amount decimal.Decimal, betOption string) (*PlaceBetResult, error) {
	if amount.LessThan(minBetAmount) {
		return nil, apperr.New(apperr.KindValidation, "BET_AMOUNT_TOO_LOW")
	}
	if !models.ValidBetOption(betOption) {
		return nil, apperr.New(apperr.KindValidation, "INVALID_BET_OPTION")
	}

	var result PlaceBetResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallet, err := GetWalletForUpdate(tx, userID)
		if err != nil {
			return err
		}
		if wallet.Balance.LessThan(amount) {
			return apperr.New(apperr.KindInsufficientFunds, "INSUFFICIENT_BALANCE")
		}
		prevBalance := wallet.Balance

		bet := models.Bet{
			UserID:    userID,
			Amount:    amount,
			BetOption: betOption,
			Status:    models.BetStatusPending,
			Payout:    decimal.Zero,
		}
		if err := tx.Create(&bet).Error; err != nil {
			return err
		}

		newBalance, err := DebitWallet(tx, wallet, amount)
		if err != nil {
			return err
		}
		if _, err := AppendLedger(tx, wallet.ID, models.TrxTypeDebit, models.TrxReasonPlaceBet,
			amount, prevBalance, newBalance, &bet.ID, nil); err != nil {
			return err
		}

		result = PlaceBetResult{Bet: &bet, PrevBalance: prevBalance, NewBalance: newBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ResolveBet rolls the dice for a PENDING bet owned by the caller, records
// the outcome, flips the bet to its terminal status, and on a win credits the
// payout with its CREDIT ledger entry. A bet can only ever be resolved once:
// the status check plus the unique game-per-bet constraint reject a second
// attempt with Conflict and no mutation.
func (s *BetService) ResolveBet(ctx context.Context, userID, betID uint) (*ResolveBetResult, error) {
	var result ResolveBetResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bet models.Bet
		if err := tx.First(&bet, betID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.KindNotFound, "BET_NOT_FOUND")
			}
			return err
		}

		if bet.UserID != userID {
			return apperr.New(apperr.KindForbidden, "NOT_YOUR_BET")
		}
		if bet.Status != models.BetStatusPending {
			return apperr.New(apperr.KindConflict, "BET_ALREADY_RESOLVED")
		}

		// Second integrity layer: even if the status were inconsistent, an
		// existing outcome row blocks a double roll.
		var existing models.Game
		err := tx.Where("bet_id = ?", bet.ID).First(&existing).Error
		if err == nil {
			return apperr.New(apperr.KindConflict, "DICE_ALREADY_ROLLED")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		dice1, dice2 := s.roll()
		total, rollResult := Classify(dice1, dice2)
		won, payout := Settle(bet.BetOption, rollResult, bet.Amount)

		game := models.Game{BetID: bet.ID, Dice1: dice1, Dice2: dice2, Total: total, Result: rollResult}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		status := models.BetStatusLost
		if won {
			status = models.BetStatusWon
		}
		if err := tx.Model(&bet).Updates(map[string]any{"status": status, "payout": payout}).Error; err != nil {
			return err
		}
		bet.Status = status
		bet.Payout = payout

		var balance decimal.Decimal
		if won {
			wallet, err := GetWalletForUpdate(tx, userID)
			if err != nil {
				return err
			}
			prevBalance := wallet.Balance
			balance, err = CreditWallet(tx, wallet, payout)
			if err != nil {
				return err
			}
			if _, err := AppendLedger(tx, wallet.ID, models.TrxTypeCredit, models.TrxReasonBetWin,
				payout, prevBalance, balance, &bet.ID, &game.ID); err != nil {
				return err
			}
		} else {
			var wallet models.Wallet
			if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
				return err
			}
			balance = wallet.Balance
		}

		result = ResolveBetResult{Bet: &bet, Game: &game, Won: won, Payout: payout, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishBetSettled(ctx, BetSettledEvent{
		BetID:    result.Bet.ID,
		UserID:   userID,
		Option:   result.Bet.BetOption,
		Status:   result.Bet.Status,
		Amount:   result.Bet.Amount.String(),
		Payout:   result.Payout.String(),
		Dice1:    result.Game.Dice1,
		Dice2:    result.Game.Dice2,
		Total:    result.Game.Total,
		Result:   result.Game.Result,
		Occurred: time.Now().UTC(),
	})

	return &result, nil
}

// LoginBonus credits the fixed bonus on every login. First login creates the
// wallet with the bonus as its opening balance; both paths append exactly one
// BONUS ledger entry.
func (s *BetService) LoginBonus(ctx context.Context, userID uint) (*LoginBonusResult, error) {
	var result *LoginBonusResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = applyLoginBonus(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyLoginBonus runs the bonus inside the caller's transaction so login can
// fold it into the same unit of work as user and session creation.
func applyLoginBonus(tx *gorm.DB, userID uint) (*LoginBonusResult, error) {
	wallet, created, err := FindOrCreateWallet(tx, userID, LoginBonusAmount)
	if err != nil {
		return nil, err
	}

	prevBalance := decimal.Zero
	newBalance := wallet.Balance
	if !created {
		prevBalance = wallet.Balance
		newBalance, err = CreditWallet(tx, wallet, LoginBonusAmount)
		if err != nil {
			return nil, err
		}
	}

	entry, err := AppendLedger(tx, wallet.ID, models.TrxTypeCredit, models.TrxReasonBonus,
		LoginBonusAmount, prevBalance, newBalance, nil, nil)
	if err != nil {
		return nil, err
	}

	return &LoginBonusResult{Wallet: wallet, WalletCreated: created, Entry: entry}, nil
}
