package usecase

import (
	"context"
	"fmt"

	"notehub/internal/modules/notes/domain"
	"notehub/internal/modules/notes/dto"
	notesin "notehub/internal/modules/notes/port/in"
	"notehub/internal/modules/notes/service"
	apperrors "notehub/internal/platform/errors"
)

type Interactor struct {
	svc *service.NoteService
}

func NewInteractor(svc *service.NoteService) notesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.NoteOutput, error) {
	note, err := i.svc.Create(ctx, input.UserID, input.Title, input.Content)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toOutput(note), nil
}

func (i *Interactor) List(ctx context.Context, userID string) ([]dto.NoteOutput, error) {
	notes, err := i.svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, toOutput(note))
	}
	return out, nil
}

// Get scans the user's notes; the repository deliberately has no point
// lookup because the corpus stays small (see Repository contract).
func (i *Interactor) Get(ctx context.Context, userID, id string) (dto.NoteOutput, error) {
	notes, err := i.svc.List(ctx, userID)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	for _, note := range notes {
		if note.ID == id {
			return toOutput(note), nil
		}
	}
	return dto.NoteOutput{}, fmt.Errorf("note %s: %w", id, apperrors.ErrNotFound)
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.NoteOutput, error) {
	note, err := i.svc.Update(ctx, domain.Note{ID: input.ID, Title: input.Title, Content: input.Content})
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toOutput(note), nil
}

func (i *Interactor) Rename(ctx context.Context, input dto.RenameInput) (dto.NoteOutput, error) {
	current, err := i.Get(ctx, input.UserID, input.ID)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return i.Update(ctx, dto.UpdateInput{ID: current.ID, Title: input.Title, Content: current.Content})
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func toOutput(note domain.Note) dto.NoteOutput {
	return dto.NoteOutput{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
