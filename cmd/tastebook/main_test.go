package main

import (
	"path/filepath"
	"testing"
)

func TestParseSeedArgsDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")

	options, err := parseSeedArgs(nil)
	if err != nil {
		t.Fatalf("parseSeedArgs returned error: %v", err)
	}
	if options.dbPath != filepath.Join("data", "tastebook.db") {
		t.Fatalf("default db path = %q, want data/tastebook.db", options.dbPath)
	}
	if options.userCount != 20 {
		t.Fatalf("default user count = %d, want 20", options.userCount)
	}
	if options.recipeCount != 100 {
		t.Fatalf("default recipe count = %d, want 100", options.recipeCount)
	}
}

func TestParseSeedArgsOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "")

	options, err := parseSeedArgs([]string{"-db", "custom.db", "-users", "3", "-recipes", "7"})
	if err != nil {
		t.Fatalf("parseSeedArgs returned error: %v", err)
	}
	if options.dbPath != "custom.db" {
		t.Fatalf("db path = %q, want custom.db", options.dbPath)
	}
	if options.userCount != 3 {
		t.Fatalf("user count = %d, want 3", options.userCount)
	}
	if options.recipeCount != 7 {
		t.Fatalf("recipe count = %d, want 7", options.recipeCount)
	}
}

func TestParseSeedArgsHonorsDBPathEnv(t *testing.T) {
	t.Setenv("DB_PATH", "from-env.db")

	options, err := parseSeedArgs(nil)
	if err != nil {
		t.Fatalf("parseSeedArgs returned error: %v", err)
	}
	if options.dbPath != "from-env.db" {
		t.Fatalf("db path = %q, want from-env.db", options.dbPath)
	}
}

func TestParseSeedArgsRejectsInvalidCounts(t *testing.T) {
	t.Setenv("DB_PATH", "")

	if _, err := parseSeedArgs([]string{"-users", "0"}); err == nil {
		t.Fatal("expected error for zero users")
	}
	if _, err := parseSeedArgs([]string{"-recipes", "-1"}); err == nil {
		t.Fatal("expected error for negative recipes")
	}
}
