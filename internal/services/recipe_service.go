package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/tastebook/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeOwnerNotFound = errors.New("recipe owner not found")
	ErrRecipeConflict      = errors.New("recipe conflicts with stored data")
)

type RecipeStore interface {
	Create(recipe *models.Recipe) error
	ListByOwner(ownerID uint) ([]models.Recipe, error)
}

type RecipeOwnerRepository interface {
	FindByID(userID uint) (models.User, error)
}

type RecipeService struct {
	recipes RecipeStore
	users   RecipeOwnerRepository
}

func NewRecipeService(recipes RecipeStore, users RecipeOwnerRepository) *RecipeService {
	return &RecipeService{recipes: recipes, users: users}
}

// Create persists a recipe owned by the caller. The owner is always the
// authenticated identity; there is no fallback owner assignment, so creation
// fails when the identity no longer resolves to a stored user.
func (service *RecipeService) Create(ownerID uint, title string, instructions string, minutesToComplete *int) (models.Recipe, error) {
	if err := ValidateRecipeInput(title, instructions, minutesToComplete); err != nil {
		return models.Recipe{}, err
	}

	owner, err := service.users.FindByID(ownerID)
	if err != nil {
		return models.Recipe{}, ErrRecipeOwnerNotFound
	}

	recipe := models.Recipe{
		Title:             strings.TrimSpace(title),
		Instructions:      instructions,
		MinutesToComplete: *minutesToComplete,
		UserID:            owner.ID,
		CreatedAt:         time.Now(),
	}
	if err := service.recipes.Create(&recipe); err != nil {
		if isConstraintViolation(err) {
			return models.Recipe{}, ErrRecipeConflict
		}
		return models.Recipe{}, err
	}

	recipe.User = owner
	return recipe, nil
}

func (service *RecipeService) ListForOwner(ownerID uint) ([]models.Recipe, error) {
	return service.recipes.ListByOwner(ownerID)
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint")
}
