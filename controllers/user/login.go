package user

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/logger"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates (or registers) a user, applies the login bonus, and
// returns a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "INVALID_JSON"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "INVALID_EMAIL"))
	}
	if len(req.Password) < 6 {
		return helpers.JSONError(c, apperr.New(apperr.KindValidation, "PASSWORD_TOO_SHORT"))
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helpers.JSONError(c, err)
	}

	logger.Log.Infow("user logged in",
		"user_id", result.User.ID,
		"wallet_created", result.WalletCreated,
	)

	return helpers.JSONSuccess(c, fiber.StatusOK, "LOGIN_SUCCESS", fiber.Map{
		"user": fiber.Map{
			"id":    result.User.ID,
			"email": result.User.Email,
		},
		"wallet": fiber.Map{
			"balance": result.Wallet.Balance,
			"created": result.WalletCreated,
		},
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}
