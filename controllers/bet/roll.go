package bet

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/metrics"
	"dicebet/middlewares"
)

type RollRequest struct {
	BetID uint `json:"bet_id"`
}

// Roll resolves a pending bet: rolls the dice, settles, and pays out a win.
func (h *Handler) Roll(c *fiber.Ctx) error {
	started := time.Now()

	userID, ok := middlewares.UserID(c)
	if !ok {
		return helpers.JSONError(c, apperr.New(apperr.KindUnauthorized, "UNAUTHORIZED"))
	}

	var req RollRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "INVALID_JSON"))
	}
	if req.BetID == 0 {
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "BET_ID_REQUIRED"))
	}

	result, err := h.engine.ResolveBet(c.UserContext(), userID, req.BetID)
	if err != nil {
		metrics.RecordResolve("fail", started)
		return helpers.JSONError(c, err)
	}

	metrics.RecordResolve(strings.ToLower(result.Bet.Status), started)

	message := "BET_LOST"
	if result.Won {
		message = "BET_WON"
	}
	return helpers.JSONSuccess(c, fiber.StatusOK, message, fiber.Map{
		"bet":  result.Bet,
		"game": result.Game,
		"outcome": fiber.Map{
			"status": result.Bet.Status,
			"payout": result.Payout,
		},
		"wallet": fiber.Map{
			"balance": result.Balance,
		},
	})
}
