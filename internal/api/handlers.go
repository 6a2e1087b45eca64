package api

import (
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, cookieSecure bool) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(),
	}
	handler.ensureDependencies()
	return handler
}
