package out

import (
	"context"

	"notehub/internal/modules/notes/domain"
)

// Repository is the durable note store. Insert returns the canonical note
// with repository-assigned id and timestamps; Update returns the stored row
// so callers can reconcile against the echo. Calls for the same id are not
// guaranteed to complete in request order.
type Repository interface {
	List(ctx context.Context, userID string) ([]domain.Note, error)
	Insert(ctx context.Context, draft domain.Note, userID string) (domain.Note, error)
	Update(ctx context.Context, note domain.Note) (domain.Note, error)
	Delete(ctx context.Context, id string) error
}
