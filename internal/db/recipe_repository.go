package db

import (
	"github.com/terraincognita07/tastebook/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

// ListByOwner returns the owner's recipes in creation order. Listing order is
// deliberately id ASC so repeated reads are deterministic.
func (repo *RecipeRepository) ListByOwner(ownerID uint) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.
		Preload("User").
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Omit("User").Create(recipe).Error
}

func (repo *RecipeRepository) CountRecipes() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *RecipeRepository) DeleteAll() error {
	return repo.database.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Recipe{}).Error
}
