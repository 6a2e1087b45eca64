package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired places the verified identity claim into the request context.
// Session identity is always read from there, never from ambient state.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Not logged in.")
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}
