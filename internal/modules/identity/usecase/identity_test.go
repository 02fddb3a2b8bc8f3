package usecase_test

import (
	"context"
	"errors"
	"testing"

	identityout "notehub/internal/modules/identity/adapter/out"
	"notehub/internal/modules/identity/dto"
	"notehub/internal/modules/identity/usecase"
	apperrors "notehub/internal/platform/errors"
)

func TestSignInDerivesAStableUserID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(identityout.NewFileCredentialStore(t.TempDir()))

	first, err := uc.SignIn(ctx, "Ada@Example.com")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if first.Email != "ada@example.com" {
		t.Fatalf("email must be normalized, got %q", first.Email)
	}

	if err := uc.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	second, err := uc.SignIn(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("sign in again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("same email must keep the same id: %q vs %q", second.ID, first.ID)
	}

	other, err := uc.SignIn(ctx, "grace@example.com")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if other.ID == first.ID {
		t.Fatalf("different emails must not collide")
	}
}

func TestSignInRejectsMalformedEmail(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(identityout.NewFileCredentialStore(t.TempDir()))
	if _, err := uc.SignIn(context.Background(), "not-an-email"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid-input, got %v", err)
	}
}

func TestCurrentSurvivesRestartAndSignOutClears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	uc := usecase.NewInteractor(identityout.NewFileCredentialStore(dir))

	signedIn, err := uc.SignIn(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	// A fresh interactor over the same data dir sees the persisted identity.
	restarted := usecase.NewInteractor(identityout.NewFileCredentialStore(dir))
	current, err := restarted.Current(ctx)
	if err != nil {
		t.Fatalf("current after restart: %v", err)
	}
	if current != signedIn {
		t.Fatalf("persisted identity mismatch: %+v vs %+v", current, signedIn)
	}

	if err := restarted.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := restarted.Current(ctx); !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Fatalf("expected auth-required after sign-out, got %v", err)
	}
}

func TestListenersObserveSignInAndSignOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(identityout.NewFileCredentialStore(t.TempDir()))

	var events []bool
	var seen dto.UserOutput
	uc.OnChange(func(user dto.UserOutput, signedIn bool) {
		events = append(events, signedIn)
		if signedIn {
			seen = user
		}
	})

	if _, err := uc.SignIn(ctx, "ada@example.com"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := uc.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if len(events) != 2 || !events[0] || events[1] {
		t.Fatalf("expected sign-in then sign-out events, got %v", events)
	}
	if seen.Email != "ada@example.com" {
		t.Fatalf("listener must receive the signed-in user, got %+v", seen)
	}
}
