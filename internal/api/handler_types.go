package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/tastebook/internal/db"
	"github.com/terraincognita07/tastebook/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	cookieSecure  bool
	repositories  *db.Repositories
	authService   *services.AuthService
	recipeService *services.RecipeService
	loginLimiter  *attemptLimiter
}

const authTokenTTL = 7 * 24 * time.Hour

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type signupInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	ImageURL string `json:"image_url" form:"image_url"`
	Bio      string `json:"bio" form:"bio"`
}

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// recipePayload keeps MinutesToComplete as a pointer so an absent field is
// distinguishable from an explicit zero.
type recipePayload struct {
	Title             string `json:"title" form:"title"`
	Instructions      string `json:"instructions" form:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete" form:"minutes_to_complete"`
}

type UserSnapshot struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type RecipeSnapshot struct {
	Title             string       `json:"title"`
	Instructions      string       `json:"instructions"`
	MinutesToComplete int          `json:"minutes_to_complete"`
	User              UserSnapshot `json:"user"`
}
