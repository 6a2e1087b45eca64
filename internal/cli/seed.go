package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/terraincognita07/tastebook/internal/db"
	"github.com/terraincognita07/tastebook/internal/models"
	"github.com/terraincognita07/tastebook/internal/security"
	"github.com/terraincognita07/tastebook/internal/services"
)

// RunSeedCommand wipes the store and fills it with fake development data.
// Every generated password is "<username>password" so seeded accounts can be
// logged into during development.
func RunSeedCommand(dbPath string, userCount int, recipeCount int) error {
	if userCount <= 0 {
		return fmt.Errorf("user count must be positive, got %d", userCount)
	}
	if recipeCount < 0 {
		return fmt.Errorf("recipe count must be non-negative, got %d", recipeCount)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repos := db.NewRepositories(database)

	fmt.Println("Deleting all records...")
	if err := repos.Recipes.DeleteAll(); err != nil {
		return fmt.Errorf("delete recipes: %w", err)
	}
	if err := repos.Users.DeleteAll(); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}

	fmt.Println("Creating users...")
	authService := services.NewAuthService(repos.Users)
	users := make([]models.User, 0, userCount)
	seenUsernames := make(map[string]struct{}, userCount)

	for len(users) < userCount {
		username := gofakeit.FirstName()
		normalized := services.NormalizeUsername(username)
		if _, taken := seenUsernames[normalized]; taken {
			// First names repeat quickly; disambiguate instead of retrying.
			suffix, err := security.RandomDigits(4)
			if err != nil {
				return fmt.Errorf("generate username suffix: %w", err)
			}
			username += suffix
			normalized = services.NormalizeUsername(username)
			if _, stillTaken := seenUsernames[normalized]; stillTaken {
				continue
			}
		}
		seenUsernames[normalized] = struct{}{}

		user, err := authService.CreateUser(
			username,
			username+"password",
			gofakeit.URL(),
			gofakeit.Paragraph(1, 3, 12, " "),
		)
		if err != nil {
			return fmt.Errorf("create user %s: %w", username, err)
		}
		users = append(users, user)
	}

	fmt.Println("Creating recipes...")
	recipeService := services.NewRecipeService(repos.Recipes, repos.Users)
	for i := 0; i < recipeCount; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		minutes := gofakeit.Number(15, 90)

		if _, err := recipeService.Create(
			owner.ID,
			gofakeit.Dinner(),
			seedInstructions(),
			&minutes,
		); err != nil {
			return fmt.Errorf("create recipe %d: %w", i+1, err)
		}
	}

	fmt.Printf("Complete. Seeded %d users and %d recipes.\n", userCount, recipeCount)
	return nil
}

// seedInstructions always satisfies the minimum-length rule.
func seedInstructions() string {
	instructions := gofakeit.Paragraph(1, 8, 10, " ")
	for utf8.RuneCountInString(instructions) < models.MinInstructionsLength {
		instructions += " " + gofakeit.Sentence(10)
	}
	return instructions
}
