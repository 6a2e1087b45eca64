package security

import (
	"crypto/rand"
	"errors"
	"fmt"
)

var errNegativeLength = errors.New("length must be non-negative")

// RandomDigits returns a uniformly distributed numeric string of the
// requested length, used to disambiguate generated usernames.
func RandomDigits(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}

	digits := make([]byte, 0, length)
	buffer := make([]byte, 1)
	for len(digits) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		// Reject the top of the byte range so every digit stays
		// equally likely.
		if buffer[0] >= 250 {
			continue
		}
		digits = append(digits, '0'+buffer[0]%10)
	}

	return string(digits), nil
}
