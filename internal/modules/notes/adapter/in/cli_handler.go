package in

import (
	"context"

	"notehub/internal/modules/notes/dto"
	notesin "notehub/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, userID, title, content string) (dto.NoteOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{UserID: userID, Title: title, Content: content})
}

func (h CLIHandler) List(ctx context.Context, userID string) ([]dto.NoteOutput, error) {
	return h.usecase.List(ctx, userID)
}

func (h CLIHandler) Get(ctx context.Context, userID, id string) (dto.NoteOutput, error) {
	return h.usecase.Get(ctx, userID, id)
}

func (h CLIHandler) Rename(ctx context.Context, userID, id, title string) (dto.NoteOutput, error) {
	return h.usecase.Rename(ctx, dto.RenameInput{UserID: userID, ID: id, Title: title})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
