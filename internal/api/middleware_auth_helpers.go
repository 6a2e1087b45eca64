package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const contextUserIDKey = "current_user_id"

// authenticateRequest verifies the session cookie and returns the user id
// claim. It deliberately does not load the user row; handlers that need the
// full record look it up and decide how to treat a deleted user.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (uint, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return 0, errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return 0, errors.New("token expired")
	}
	if claims.UserID == 0 {
		return 0, errors.New("invalid token subject")
	}

	return claims.UserID, nil
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(contextUserIDKey).(uint)
	return userID, ok
}
