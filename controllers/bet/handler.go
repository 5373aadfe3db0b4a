package bet

import (
	"gorm.io/gorm"

	"dicebet/services"
)

// Handler bundles the bet engine for the /bet routes.
type Handler struct {
	engine *services.BetService
	db     *gorm.DB
}

func NewHandler(engine *services.BetService, db *gorm.DB) *Handler {
	return &Handler{engine: engine, db: db}
}
