package services

import (
	"errors"
	"strings"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

// NormalizeUsername lowercases and trims a username for lookup and
// uniqueness checks. The stored username keeps its original casing.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeCredentialsInput trims the username but leaves the password
// byte-for-byte as submitted, so authentication round-trips the exact
// string that was set.
func NormalizeCredentialsInput(usernameRaw string, password string) (string, string, error) {
	username := strings.TrimSpace(usernameRaw)
	if username == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, password, nil
}
