package domain

import "time"

// Note is the workspace's cached view of a persisted document. The cache is
// the only local source of truth for persisted fields; sessions carry just
// the content being edited.
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
