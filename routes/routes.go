package routes

import (
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"dicebet/config"
	"dicebet/controllers/bet"
	"dicebet/controllers/user"
	"dicebet/middlewares"
	"dicebet/services"
)

// Setup registers the API surface. The public login route sits behind the
// rate limiter; everything else also requires a bearer token.
func Setup(app *fiber.App, cfg config.Config, db *gorm.DB, rdb *goredis.Client,
	auth *services.AuthService, engine *services.BetService, profile *services.ProfileService) {

	userHandler := user.NewHandler(auth, profile)
	betHandler := bet.NewHandler(engine, db)

	app.Use(middlewares.RateLimit(rdb, cfg.RateLimitPerMin))

	app.Post("/user/login", userHandler.Login)

	userRoutes := app.Group("/user", middlewares.UserAuth(db, cfg.JWTSecret))
	userRoutes.Get("/profile", userHandler.Profile)
	userRoutes.Get("/profile/:id", userHandler.Profile)

	betRoutes := app.Group("/bet", middlewares.UserAuth(db, cfg.JWTSecret))
	betRoutes.Post("/place", betHandler.Place)
	betRoutes.Post("/roll", betHandler.Roll)
	betRoutes.Get("/history", betHandler.History)
}
