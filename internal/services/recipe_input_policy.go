package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/tastebook/internal/models"
)

var (
	ErrRecipeFieldsMissing  = errors.New("recipe required fields missing")
	ErrInstructionsTooShort = errors.New("recipe instructions too short")
)

// ValidateRecipeInput checks the creation payload. A nil minutesToComplete
// means the field was absent from the request, which is distinct from an
// explicit zero.
func ValidateRecipeInput(title string, instructions string, minutesToComplete *int) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(instructions) == "" || minutesToComplete == nil {
		return ErrRecipeFieldsMissing
	}
	if utf8.RuneCountInString(instructions) < models.MinInstructionsLength {
		return ErrInstructionsTooShort
	}
	return nil
}
