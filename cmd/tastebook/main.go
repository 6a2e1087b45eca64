package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/tastebook/internal/api"
	"github.com/terraincognita07/tastebook/internal/cli"
	"github.com/terraincognita07/tastebook/internal/config"
	"github.com/terraincognita07/tastebook/internal/db"
)

type seedOptions struct {
	dbPath      string
	userCount   int
	recipeCount int
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		options, err := parseSeedArgs(os.Args[2:])
		if err != nil {
			log.Fatalf("invalid seed arguments: %v", err)
		}
		if err := cli.RunSeedCommand(options.dbPath, options.userCount, options.recipeCount); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg.SecretKey, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Tastebook",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Tastebook listening on http://0.0.0.0:%s (db: %s, env: %s)", cfg.Port, cfg.DBPath, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func parseSeedArgs(args []string) (seedOptions, error) {
	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	options := seedOptions{}
	flags.StringVar(&options.dbPath, "db", defaultDBPath(), "path to the SQLite database file")
	flags.IntVar(&options.userCount, "users", 20, "number of users to create")
	flags.IntVar(&options.recipeCount, "recipes", 100, "number of recipes to create")
	if err := flags.Parse(args); err != nil {
		return seedOptions{}, err
	}
	if options.userCount <= 0 {
		return seedOptions{}, fmt.Errorf("users must be positive, got %d", options.userCount)
	}
	if options.recipeCount < 0 {
		return seedOptions{}, fmt.Errorf("recipes must be non-negative, got %d", options.recipeCount)
	}
	return options, nil
}

func defaultDBPath() string {
	if value := os.Getenv("DB_PATH"); value != "" {
		return value
	}
	return filepath.Join("data", "tastebook.db")
}
