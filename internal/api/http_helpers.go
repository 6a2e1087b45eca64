package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs the cause and returns a generic message; raw errors
// never reach the response body.
func (handler *Handler) internalError(c *fiber.Ctx, operation string, err error) error {
	log.Printf("%s failed: %v", operation, err)
	return apiError(c, fiber.StatusInternalServerError, "Internal server error.")
}
