package api

import (
	"github.com/terraincognita07/tastebook/internal/db"
	"github.com/terraincognita07/tastebook/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.recipeService == nil {
		handler.recipeService = services.NewRecipeService(handler.repositories.Recipes, handler.repositories.Users)
	}
}
