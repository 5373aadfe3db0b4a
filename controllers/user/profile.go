package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/middlewares"
)

// Profile returns aggregated statistics for the caller, or for the user in
// the :id param when present.
func (h *Handler) Profile(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return helpers.JSONError(c, apperr.New(apperr.KindUnauthorized, "UNAUTHORIZED"))
	}

	if param := c.Params("id"); param != "" {
		id, err := strconv.ParseUint(param, 10, 32)
		if err != nil {
			return helpers.JSONError(c, apperr.New(apperr.KindValidation, "INVALID_USER_ID"))
		}
		userID = uint(id)
	}

	profile, err := h.profile.GetProfile(c.UserContext(), userID)
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.StatusOK, "PROFILE_FETCHED", profile)
}
