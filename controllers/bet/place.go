package bet

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/metrics"
	"dicebet/middlewares"
	"dicebet/models"
)

type PlaceRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	BetOption string          `json:"bet_option"`
}

// Place stakes an amount on a dice option. The stake leaves the wallet
// immediately; the bet stays PENDING until rolled.
func (h *Handler) Place(c *fiber.Ctx) error {
	started := time.Now()

	userID, ok := middlewares.UserID(c)
	if !ok {
		return helpers.JSONError(c, apperr.New(apperr.KindUnauthorized, "UNAUTHORIZED"))
	}

	var req PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "INVALID_JSON"))
	}

	req.BetOption = strings.ToUpper(strings.TrimSpace(req.BetOption))
	if !models.ValidBetOption(req.BetOption) {
		metrics.RecordPlace("fail", req.BetOption, started)
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "INVALID_BET_OPTION"))
	}
	if req.Amount.LessThan(decimal.NewFromInt(1)) {
		metrics.RecordPlace("fail", req.BetOption, started)
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "BET_AMOUNT_TOO_LOW"))
	}

	result, err := h.engine.PlaceBet(c.UserContext(), userID, req.Amount, req.BetOption)
	if err != nil {
		metrics.RecordPlace("fail", req.BetOption, started)
		return helpers.JSONError(c, err)
	}

	metrics.RecordPlace("success", req.BetOption, started)
	return helpers.JSONSuccess(c, fiber.StatusCreated, "BET_PLACED", fiber.Map{
		"bet": result.Bet,
		"wallet": fiber.Map{
			"previous_balance": result.PrevBalance,
			"current_balance":  result.NewBalance,
		},
	})
}
