package in

import (
	"context"

	"notehub/internal/modules/identity/dto"
)

type Usecase interface {
	SignIn(ctx context.Context, email string) (dto.UserOutput, error)
	SignOut(ctx context.Context) error
	// Current returns ErrAuthRequired when no user is signed in.
	Current(ctx context.Context) (dto.UserOutput, error)
	// OnChange registers a listener invoked after every sign-in (signedIn
	// true) and sign-out (signedIn false). Listeners run synchronously on
	// the mutating call.
	OnChange(fn func(user dto.UserOutput, signedIn bool))
}
