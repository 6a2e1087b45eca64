package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tastebook/internal/services"
)

func (handler *Handler) ListRecipes(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not logged in.")
	}

	handler.ensureDependencies()
	recipes, err := handler.recipeService.ListForOwner(userID)
	if err != nil {
		return handler.internalError(c, "list recipes", err)
	}

	snapshots := make([]RecipeSnapshot, 0, len(recipes))
	for index := range recipes {
		snapshots = append(snapshots, newRecipeSnapshot(&recipes[index]))
	}
	return c.JSON(snapshots)
}

func (handler *Handler) CreateRecipe(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not logged in.")
	}

	payload := recipePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "Missing required fields: title, instructions, and minutes_to_complete.")
	}

	handler.ensureDependencies()
	recipe, err := handler.recipeService.Create(userID, payload.Title, payload.Instructions, payload.MinutesToComplete)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecipeFieldsMissing):
			return apiError(c, fiber.StatusUnprocessableEntity, "Missing required fields: title, instructions, and minutes_to_complete.")
		case errors.Is(err, services.ErrInstructionsTooShort):
			return apiError(c, fiber.StatusUnprocessableEntity, "Instructions must be at least 50 characters long.")
		case errors.Is(err, services.ErrRecipeOwnerNotFound), errors.Is(err, services.ErrRecipeConflict):
			return apiError(c, fiber.StatusUnprocessableEntity, "There was an issue with the data provided.")
		default:
			return handler.internalError(c, "create recipe", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(newRecipeSnapshot(&recipe))
}
