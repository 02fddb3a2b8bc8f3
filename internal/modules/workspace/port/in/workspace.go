package in

import (
	"context"

	"notehub/internal/modules/workspace/dto"
)

type Usecase interface {
	// Refresh reloads the note cache from the repository for the current
	// user. Used at session start and for explicit external refresh.
	Refresh(ctx context.Context) error
	Notes(ctx context.Context) ([]dto.NoteOutput, error)
	Sessions(ctx context.Context) (dto.SessionListOutput, error)
	Open(ctx context.Context, noteID string) (dto.SessionOutput, error)
	Close(ctx context.Context, sessionID string) error
	SetActive(ctx context.Context, sessionID string) error
	Edit(ctx context.Context, sessionID, content string) error
	// Flush persists the session's working content now if it is dirty.
	Flush(ctx context.Context, sessionID string) error
	Create(ctx context.Context, title, content string) (dto.NoteOutput, error)
	Rename(ctx context.Context, noteID, title string) (dto.NoteOutput, error)
	Delete(ctx context.Context, noteID string) (dto.DeleteOutput, error)
	Search(ctx context.Context, query string) ([]dto.NoteOutput, error)
}
