package dto

import "time"

type NoteOutput struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionOutput struct {
	ID             string
	NoteID         string
	Title          string
	WorkingContent string
	Dirty          bool
}

type SessionListOutput struct {
	Sessions []SessionOutput
	ActiveID string
}

type DeleteOutput struct {
	NoteID          string
	ClosedSessionID string
	SessionClosed   bool
}
