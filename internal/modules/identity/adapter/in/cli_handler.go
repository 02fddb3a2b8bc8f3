package in

import (
	"context"

	"notehub/internal/modules/identity/dto"
	identityin "notehub/internal/modules/identity/port/in"
)

type CLIHandler struct {
	usecase identityin.Usecase
}

func NewCLIHandler(usecase identityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SignIn(ctx context.Context, email string) (dto.UserOutput, error) {
	return h.usecase.SignIn(ctx, email)
}

func (h CLIHandler) SignOut(ctx context.Context) error {
	return h.usecase.SignOut(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.Current(ctx)
}
