package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/models"
)

// UserAuth validates the bearer token and checks its session is still live,
// then stores the caller's user id in Locals("user_id").
func UserAuth(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return helpers.JSONError(c, apperr.New(apperr.KindUnauthorized, "MISSING_TOKEN"))
		}

		claims, err := helpers.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return helpers.JSONError(c, err)
		}

		var session models.Session
		err = db.Where("sid = ? AND user_id = ? AND expires_at > ?", claims.SID, claims.UserID, time.Now()).
			First(&session).Error
		if err != nil {
			return helpers.JSONError(c, apperr.New(apperr.KindUnauthorized, "SESSION_EXPIRED"))
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}

// UserID reads the authenticated user id set by UserAuth.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}
