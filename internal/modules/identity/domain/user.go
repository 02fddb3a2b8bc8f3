package domain

import (
	"fmt"
	"strings"

	apperrors "notehub/internal/platform/errors"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", apperrors.ErrInvalidInput)
	}
	return nil
}
