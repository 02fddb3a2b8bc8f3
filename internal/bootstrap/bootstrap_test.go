package bootstrap_test

import (
	"context"
	"testing"

	"notehub/internal/bootstrap"
	"notehub/internal/platform/config"
)

// The full local stack: file credential store, sqlite note store, workspace
// scheduler, wired exactly as the binary wires them.
func TestLocalStackEndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg, err := config.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	// Workspace operations are gated until sign-in.
	if err := app.Workspace.Refresh(ctx); err == nil {
		t.Fatalf("refresh must fail before sign-in")
	}
	if _, err := app.IdentityCLI.SignIn(ctx, "ada@example.com"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	note, err := app.Workspace.Create(ctx, "Groceries", "milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sess, err := app.Workspace.Open(ctx, note.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := app.Workspace.Edit(ctx, sess.ID, "milk\neggs"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := app.Workspace.Flush(ctx, sess.ID); err != nil {
		t.Fatalf("flush: %v", err)
	}

	// The durable store saw the write-back.
	user, err := app.IdentityCLI.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	stored, err := app.NotesCLI.Get(ctx, user.ID, note.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Content != "milk\neggs" {
		t.Fatalf("expected flushed content, got %q", stored.Content)
	}

	// Search spans title and content.
	hits, err := app.WorkspaceCLI.Search(ctx, "eggs")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != note.ID {
		t.Fatalf("expected one hit, got %+v", hits)
	}

	// Sign-out clears the in-memory workspace and gates further operations.
	if err := app.IdentityCLI.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := app.Workspace.Sessions(ctx); err == nil {
		t.Fatalf("sessions must be gated after sign-out")
	}
}
