package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"notehub/internal/modules/identity/domain"
	"notehub/internal/modules/identity/dto"
	identityin "notehub/internal/modules/identity/port/in"
	identityout "notehub/internal/modules/identity/port/out"
)

type Interactor struct {
	store identityout.CredentialStore

	mu        sync.Mutex
	listeners []func(dto.UserOutput, bool)
}

func NewInteractor(store identityout.CredentialStore) identityin.Usecase {
	return &Interactor{store: store}
}

// SignIn derives a stable user id from the email so the same user keeps the
// same note collection across sign-ins.
func (i *Interactor) SignIn(ctx context.Context, email string) (dto.UserOutput, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return dto.UserOutput{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	user := domain.User{
		ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Email: email,
	}
	if err := i.store.Save(ctx, user); err != nil {
		return dto.UserOutput{}, err
	}
	out := dto.UserOutput{ID: user.ID, Email: user.Email}
	i.notify(out, true)
	return out, nil
}

func (i *Interactor) SignOut(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return err
	}
	i.notify(dto.UserOutput{}, false)
	return nil
}

func (i *Interactor) Current(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.store.Load(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return dto.UserOutput{ID: user.ID, Email: user.Email}, nil
}

func (i *Interactor) OnChange(fn func(dto.UserOutput, bool)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listeners = append(i.listeners, fn)
}

func (i *Interactor) notify(user dto.UserOutput, signedIn bool) {
	i.mu.Lock()
	listeners := append([]func(dto.UserOutput, bool){}, i.listeners...)
	i.mu.Unlock()
	for _, fn := range listeners {
		fn(user, signedIn)
	}
}
