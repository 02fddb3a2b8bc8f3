package out

import (
	"context"

	notesdto "notehub/internal/modules/notes/dto"
	notesin "notehub/internal/modules/notes/port/in"
	"notehub/internal/modules/workspace/domain"
	workspaceout "notehub/internal/modules/workspace/port/out"
)

// NotesGateway adapts the notes module's usecase to the workspace's
// repository port.
type NotesGateway struct {
	notes notesin.Usecase
}

func NewNotesGateway(notes notesin.Usecase) workspaceout.NoteGateway {
	return &NotesGateway{notes: notes}
}

func (g *NotesGateway) List(ctx context.Context, userID string) ([]domain.Note, error) {
	outs, err := g.notes.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	notes := make([]domain.Note, 0, len(outs))
	for _, out := range outs {
		notes = append(notes, fromOutput(out))
	}
	return notes, nil
}

func (g *NotesGateway) Create(ctx context.Context, userID, title, content string) (domain.Note, error) {
	out, err := g.notes.Create(ctx, notesdto.CreateInput{UserID: userID, Title: title, Content: content})
	if err != nil {
		return domain.Note{}, err
	}
	return fromOutput(out), nil
}

func (g *NotesGateway) Update(ctx context.Context, note domain.Note) (domain.Note, error) {
	out, err := g.notes.Update(ctx, notesdto.UpdateInput{ID: note.ID, Title: note.Title, Content: note.Content})
	if err != nil {
		return domain.Note{}, err
	}
	return fromOutput(out), nil
}

func (g *NotesGateway) Delete(ctx context.Context, id string) error {
	return g.notes.Delete(ctx, id)
}

func fromOutput(out notesdto.NoteOutput) domain.Note {
	return domain.Note{
		ID:        out.ID,
		Title:     out.Title,
		Content:   out.Content,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	}
}
