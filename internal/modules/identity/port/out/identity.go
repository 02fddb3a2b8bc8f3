package out

import (
	"context"

	"notehub/internal/modules/identity/domain"
)

// CredentialStore persists the signed-in user between runs. Load returns
// ErrAuthRequired when no user is signed in.
type CredentialStore interface {
	Save(ctx context.Context, user domain.User) error
	Load(ctx context.Context) (domain.User, error)
	Clear(ctx context.Context) error
}
