package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "notehub/internal/platform/errors"
)

// Note is the durable document: identity is ID, timestamps are assigned by
// the repository on insert.
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	return nil
}
