package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const insecureSecretPlaceholder = "change_me_in_production"

type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	CookieSecure bool
	Env          string
}

// Load reads configuration from the environment, with a local .env file
// picked up first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "5555"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "tastebook.db")),
		SecretKey:    os.Getenv("SECRET_KEY"),
		CookieSecure: getEnv("COOKIE_SECURE", "") == "true",
		Env:          getEnv("ENV", "development"),
	}

	if err := validateSecretKey(cfg.SecretKey); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateSecretKey(secret string) error {
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	if secret == insecureSecretPlaceholder {
		return errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < 32 {
		return errors.New("SECRET_KEY must be at least 32 characters")
	}
	return nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
