package user

import "dicebet/services"

// Handler bundles the user-facing services for the /user routes.
type Handler struct {
	auth    *services.AuthService
	profile *services.ProfileService
}

func NewHandler(auth *services.AuthService, profile *services.ProfileService) *Handler {
	return &Handler{auth: auth, profile: profile}
}
