package bet

import (
	"github.com/gofiber/fiber/v2"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/middlewares"
	"dicebet/models"
)

// History returns the caller's bets with their dice outcomes, newest first.
func (h *Handler) History(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return helpers.JSONError(c, apperr.New(apperr.KindUnauthorized, "UNAUTHORIZED"))
	}

	var bets []models.Bet
	err := h.db.WithContext(c.UserContext()).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(50).
		Find(&bets).Error
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.StatusOK, "BET_HISTORY", fiber.Map{
		"bets": bets,
	})
}
