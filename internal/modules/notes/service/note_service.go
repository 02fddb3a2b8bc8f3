package service

import (
	"context"

	"notehub/internal/modules/notes/domain"
	notesout "notehub/internal/modules/notes/port/out"
	"notehub/internal/platform/clock"
)

type NoteService struct {
	clock clock.Clock
	repo  notesout.Repository
}

func NewNoteService(clock clock.Clock, repo notesout.Repository) *NoteService {
	return &NoteService{clock: clock, repo: repo}
}

func (s *NoteService) Create(ctx context.Context, userID, title, content string) (domain.Note, error) {
	draft := domain.Note{Title: title, Content: content}
	if err := draft.Validate(); err != nil {
		return domain.Note{}, err
	}
	return s.repo.Insert(ctx, draft, userID)
}

func (s *NoteService) List(ctx context.Context, userID string) ([]domain.Note, error) {
	return s.repo.List(ctx, userID)
}

// Update sends the full note with a freshly stamped updated_at and returns
// the repository's canonical echo.
func (s *NoteService) Update(ctx context.Context, note domain.Note) (domain.Note, error) {
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	note.UpdatedAt = s.clock.Now()
	return s.repo.Update(ctx, note)
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
