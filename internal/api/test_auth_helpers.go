package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func signupTestUser(t *testing.T, app *fiber.App, username string, password string) (UserSnapshot, string) {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/signup", map[string]string{
		"username": username,
		"password": password,
	})
	response := doRequest(t, app, request)

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d", response.StatusCode)
	}

	snapshot := UserSnapshot{}
	if err := json.NewDecoder(response.Body).Decode(&snapshot); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}

	cookie := responseCookieValue(response.Cookies(), authCookieName)
	if cookie == "" {
		t.Fatal("auth cookie is missing in signup response")
	}
	return snapshot, authCookieName + "=" + cookie
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	})
	response := doRequest(t, app, request)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	cookie := responseCookieValue(response.Cookies(), authCookieName)
	if cookie == "" {
		t.Fatal("auth cookie is missing in login response")
	}
	return authCookieName + "=" + cookie
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}
