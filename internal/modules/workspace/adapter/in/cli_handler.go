package in

import (
	"context"

	"notehub/internal/modules/workspace/dto"
	workspacein "notehub/internal/modules/workspace/port/in"
)

type CLIHandler struct {
	usecase workspacein.Usecase
}

func NewCLIHandler(usecase workspacein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Search loads the cache for the current user and scans it; one-shot CLI
// invocations have no long-lived workspace to search.
func (h CLIHandler) Search(ctx context.Context, query string) ([]dto.NoteOutput, error) {
	if err := h.usecase.Refresh(ctx); err != nil {
		return nil, err
	}
	return h.usecase.Search(ctx, query)
}
