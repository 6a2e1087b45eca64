package api

import "github.com/terraincognita07/tastebook/internal/models"

// newUserSnapshot is the only serialization path for users; it carries no
// password material by construction.
func newUserSnapshot(user *models.User) UserSnapshot {
	return UserSnapshot{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}

func newRecipeSnapshot(recipe *models.Recipe) RecipeSnapshot {
	return RecipeSnapshot{
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		User:              newUserSnapshot(&recipe.User),
	}
}
