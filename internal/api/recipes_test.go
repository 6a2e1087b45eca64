package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tastebook/internal/models"
)

func createRecipeRequest(t *testing.T, authCookie string, payload any) *http.Request {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/recipes", payload)
	request.Header.Set("Cookie", authCookie)
	return request
}

func TestCreateRecipeReturnsOwnerSnapshot(t *testing.T) {
	app, _ := newTestApp(t)
	created, authCookie := signupTestUser(t, app, "bob", "secret123")

	instructions := strings.Repeat("Chop, season, simmer. ", 3)
	response := doRequest(t, app, createRecipeRequest(t, authCookie, map[string]any{
		"title":               "Sunday stew",
		"instructions":        instructions,
		"minutes_to_complete": 90,
	}))

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	snapshot := RecipeSnapshot{}
	if err := json.NewDecoder(response.Body).Decode(&snapshot); err != nil {
		t.Fatalf("decode recipe snapshot: %v", err)
	}
	if snapshot.Title != "Sunday stew" || snapshot.MinutesToComplete != 90 {
		t.Fatalf("unexpected recipe snapshot: %+v", snapshot)
	}
	if snapshot.User.ID != created.ID || snapshot.User.Username != "bob" {
		t.Fatalf("expected nested owner snapshot for bob, got %+v", snapshot.User)
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	app, _ := newTestApp(t)
	_, authCookie := signupTestUser(t, app, "bob", "secret123")

	longEnough := strings.Repeat("x", 50)

	tests := []struct {
		name    string
		payload map[string]any
		message string
	}{
		{
			name:    "missing title",
			payload: map[string]any{"instructions": longEnough, "minutes_to_complete": 30},
			message: "Missing required fields: title, instructions, and minutes_to_complete.",
		},
		{
			name:    "missing instructions",
			payload: map[string]any{"title": "Toast", "minutes_to_complete": 5},
			message: "Missing required fields: title, instructions, and minutes_to_complete.",
		},
		{
			name:    "missing minutes",
			payload: map[string]any{"title": "Toast", "instructions": longEnough},
			message: "Missing required fields: title, instructions, and minutes_to_complete.",
		},
		{
			name:    "instructions too short",
			payload: map[string]any{"title": "Toast", "instructions": strings.Repeat("x", 49), "minutes_to_complete": 5},
			message: "Instructions must be at least 50 characters long.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := doRequest(t, app, createRecipeRequest(t, authCookie, testCase.payload))
			if response.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("expected status 422, got %d", response.StatusCode)
			}
			if message := readAPIError(t, response.Body); message != testCase.message {
				t.Fatalf("unexpected error message %q", message)
			}
		})
	}
}

func TestCreateRecipeInstructionsBoundary(t *testing.T) {
	app, _ := newTestApp(t)
	_, authCookie := signupTestUser(t, app, "bob", "secret123")

	atBoundary := doRequest(t, app, createRecipeRequest(t, authCookie, map[string]any{
		"title":               "Boundary dish",
		"instructions":        strings.Repeat("x", 50),
		"minutes_to_complete": 10,
	}))
	if atBoundary.StatusCode != http.StatusCreated {
		t.Fatalf("expected 50-char instructions to create, got %d", atBoundary.StatusCode)
	}

	belowBoundary := doRequest(t, app, createRecipeRequest(t, authCookie, map[string]any{
		"title":               "Boundary dish",
		"instructions":        strings.Repeat("x", 49),
		"minutes_to_complete": 10,
	}))
	if belowBoundary.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 49-char instructions to fail with 422, got %d", belowBoundary.StatusCode)
	}
}

func TestListRecipesIsOwnerScoped(t *testing.T) {
	app, _ := newTestApp(t)
	_, bobCookie := signupTestUser(t, app, "bob", "secret123")
	_, carolCookie := signupTestUser(t, app, "carol", "secret123")

	instructions := strings.Repeat("Whisk thoroughly and rest the batter overnight. ", 2)
	createResponse := doRequest(t, app, createRecipeRequest(t, bobCookie, map[string]any{
		"title":               "Overnight pancakes",
		"instructions":        instructions,
		"minutes_to_complete": 25,
	}))
	if createResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected create status 201, got %d", createResponse.StatusCode)
	}

	bobList := listRecipes(t, app, bobCookie)
	if len(bobList) != 1 {
		t.Fatalf("expected one recipe for bob, got %d", len(bobList))
	}
	if bobList[0].Title != "Overnight pancakes" || bobList[0].User.Username != "bob" {
		t.Fatalf("unexpected recipe in bob's list: %+v", bobList[0])
	}

	carolList := listRecipes(t, app, carolCookie)
	if len(carolList) != 0 {
		t.Fatalf("expected empty list for carol, got %d", len(carolList))
	}
}

func TestListRecipesOrderedByCreation(t *testing.T) {
	app, _ := newTestApp(t)
	_, authCookie := signupTestUser(t, app, "bob", "secret123")

	for _, title := range []string{"First", "Second", "Third"} {
		response := doRequest(t, app, createRecipeRequest(t, authCookie, map[string]any{
			"title":               title,
			"instructions":        strings.Repeat("x", 60),
			"minutes_to_complete": 15,
		}))
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("create %q: expected 201, got %d", title, response.StatusCode)
		}
	}

	listed := listRecipes(t, app, authCookie)
	if len(listed) != 3 {
		t.Fatalf("expected three recipes, got %d", len(listed))
	}
	for index, wantTitle := range []string{"First", "Second", "Third"} {
		if listed[index].Title != wantTitle {
			t.Fatalf("expected recipe %d to be %q, got %q", index, wantTitle, listed[index].Title)
		}
	}
}

func TestListRecipesNeverLeaksPasswordMaterial(t *testing.T) {
	app, _ := newTestApp(t)
	_, authCookie := signupTestUser(t, app, "bob", "secret123")

	response := doRequest(t, app, createRecipeRequest(t, authCookie, map[string]any{
		"title":               "Secret-free soup",
		"instructions":        strings.Repeat("x", 60),
		"minutes_to_complete": 40,
	}))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected create status 201, got %d", response.StatusCode)
	}

	listRequest := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	listRequest.Header.Set("Cookie", authCookie)
	listResponse := doRequest(t, app, listRequest)
	if listResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected list status 200, got %d", listResponse.StatusCode)
	}

	body, err := io.ReadAll(listResponse.Body)
	if err != nil {
		t.Fatalf("read list body: %v", err)
	}
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "$2") {
		t.Fatalf("recipe listing leaked password material: %s", body)
	}
}

func TestCreateRecipeAfterOwnerDeleted(t *testing.T) {
	app, database := newTestApp(t)
	created, authCookie := signupTestUser(t, app, "bob", "secret123")

	if err := database.Delete(&models.User{}, created.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	response := doRequest(t, app, createRecipeRequest(t, authCookie, map[string]any{
		"title":               "Orphan dish",
		"instructions":        strings.Repeat("x", 60),
		"minutes_to_complete": 20,
	}))

	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 when the owner is gone, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "There was an issue with the data provided." {
		t.Fatalf("unexpected error message %q", message)
	}
}

func listRecipes(t *testing.T, app *fiber.App, authCookie string) []RecipeSnapshot {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	request.Header.Set("Cookie", authCookie)
	response := doRequest(t, app, request)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected list status 200, got %d", response.StatusCode)
	}

	listed := make([]RecipeSnapshot, 0)
	if err := json.NewDecoder(response.Body).Decode(&listed); err != nil {
		t.Fatalf("decode recipe list: %v", err)
	}
	return listed
}
