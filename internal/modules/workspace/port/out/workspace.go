package out

import (
	"context"

	"notehub/internal/modules/workspace/domain"
)

// NoteGateway is the workspace's view of the remote document repository.
// Every call may fail, and concurrent calls for the same note id may
// complete in any order; the service re-validates each completion against
// current state before applying it.
type NoteGateway interface {
	List(ctx context.Context, userID string) ([]domain.Note, error)
	Create(ctx context.Context, userID, title, content string) (domain.Note, error)
	Update(ctx context.Context, note domain.Note) (domain.Note, error)
	Delete(ctx context.Context, id string) error
}
