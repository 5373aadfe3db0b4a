package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dicebet/apperr"
	"dicebet/logger"
)

func JSONSuccess(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError maps a domain error onto the HTTP response. The body carries the
// stable error code; unknown errors are logged and masked as 500.
func JSONError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		logger.Log.Errorw("internal error", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": apperr.CodeOf(err),
		"data":    nil,
	})
}

func statusFor(err error) int {
	var e *apperr.Error
	if !errors.As(err, &e) {
		return fiber.StatusInternalServerError
	}
	switch e.Kind {
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindValidation, apperr.KindInsufficientFunds:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
