package dto

import "time"

type NoteOutput struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateInput struct {
	UserID  string
	Title   string
	Content string
}

type UpdateInput struct {
	ID      string
	Title   string
	Content string
}

type RenameInput struct {
	UserID string
	ID     string
	Title  string
}
