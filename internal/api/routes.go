package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/signup", handler.Signup)
	app.Post("/login", handler.Login)
	app.Get("/check_session", handler.AuthRequired, handler.CheckSession)
	app.Delete("/logout", handler.AuthRequired, handler.Logout)

	recipes := app.Group("/recipes", handler.AuthRequired)
	recipes.Get("", handler.ListRecipes)
	recipes.Post("", handler.CreateRecipe)
}
