package in

import (
	"context"

	"notehub/internal/modules/notes/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.NoteOutput, error)
	List(ctx context.Context, userID string) ([]dto.NoteOutput, error)
	Get(ctx context.Context, userID, id string) (dto.NoteOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.NoteOutput, error)
	Rename(ctx context.Context, input dto.RenameInput) (dto.NoteOutput, error)
	Delete(ctx context.Context, id string) error
}
