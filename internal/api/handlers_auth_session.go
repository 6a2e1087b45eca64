package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tastebook/internal/services"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "Username and password are required.")
	}

	handler.ensureDependencies()
	user, err := handler.authService.CreateUser(input.Username, input.Password, input.ImageURL, input.Bio)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusUnprocessableEntity, "Username and password are required.")
		case errors.Is(err, services.ErrUsernameTaken):
			return apiError(c, fiber.StatusUnprocessableEntity, "Username already exists.")
		default:
			return handler.internalError(c, "signup", err)
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.internalError(c, "signup session", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newUserSnapshot(&user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "Too many login attempts.")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "Invalid username or password.")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "Invalid username or password.")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.internalError(c, "login session", err)
	}

	return c.JSON(newUserSnapshot(&user))
}

func (handler *Handler) CheckSession(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not logged in.")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(userID)
	if err != nil {
		// The session outlived its user.
		return apiError(c, fiber.StatusNotFound, "User not found.")
	}

	return c.JSON(newUserSnapshot(&user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
