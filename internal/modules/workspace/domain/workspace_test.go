package domain_test

import (
	"errors"
	"testing"
	"time"

	"notehub/internal/modules/workspace/domain"
	apperrors "notehub/internal/platform/errors"
)

func note(id, title, content string, updated time.Time) domain.Note {
	return domain.Note{ID: id, Title: title, Content: content, CreatedAt: updated, UpdatedAt: updated}
}

func TestOpenIsIdempotentPerNoteAndPreservesUnsavedEdits(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{note("n1", "First", "x", time.Unix(1, 0))})

	first, created := w.Open(mustNote(t, w, "n1"), "sess-1")
	if !created || first.WorkingContent != "x" || first.Dirty {
		t.Fatalf("unexpected first open: %+v created=%v", first, created)
	}
	if _, err := w.ApplyEdit("sess-1", "xy"); err != nil {
		t.Fatalf("apply edit: %v", err)
	}

	second, created := w.Open(mustNote(t, w, "n1"), "sess-2")
	if created {
		t.Fatalf("second open must reuse the existing session")
	}
	if second.ID != "sess-1" || second.WorkingContent != "xy" || !second.Dirty {
		t.Fatalf("reused session lost its unsaved edit: %+v", second)
	}
	if len(w.Sessions()) != 1 {
		t.Fatalf("expected exactly one session, got %d", len(w.Sessions()))
	}
	if w.ActiveID() != "sess-1" {
		t.Fatalf("expected sess-1 active, got %q", w.ActiveID())
	}
}

func TestCloseReassignsActiveToFirstRemainingInInsertionOrder(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{
		note("n1", "A", "", time.Unix(3, 0)),
		note("n2", "B", "", time.Unix(2, 0)),
		note("n3", "C", "", time.Unix(1, 0)),
	})
	w.Open(mustNote(t, w, "n1"), "s1")
	w.Open(mustNote(t, w, "n2"), "s2")
	w.Open(mustNote(t, w, "n3"), "s3")

	// Closing a non-active session leaves the pointer alone.
	if _, err := w.Close("s2"); err != nil {
		t.Fatalf("close s2: %v", err)
	}
	if w.ActiveID() != "s3" {
		t.Fatalf("active should stay s3, got %q", w.ActiveID())
	}

	// Closing the active session activates the first remaining session.
	if _, err := w.Close("s3"); err != nil {
		t.Fatalf("close s3: %v", err)
	}
	if w.ActiveID() != "s1" {
		t.Fatalf("expected s1 active, got %q", w.ActiveID())
	}

	if _, err := w.Close("s1"); err != nil {
		t.Fatalf("close s1: %v", err)
	}
	if w.ActiveID() != "" {
		t.Fatalf("expected no active session, got %q", w.ActiveID())
	}

	if _, err := w.Close("s1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("closing a missing session must report NotFound, got %v", err)
	}
}

func TestAbsorbEchoClearsDirtyOnlyOnContentEquality(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{note("n1", "A", "x", time.Unix(1, 0))})
	w.Open(mustNote(t, w, "n1"), "s1")
	w.ApplyEdit("s1", "xy")

	// The user typed more after the save for "xy" was issued.
	w.ApplyEdit("s1", "xyz")
	echo := note("n1", "A", "xy", time.Unix(5, 0))
	w.AbsorbEcho(echo, "xy")

	sess, _ := w.Session("s1")
	if !sess.Dirty || sess.WorkingContent != "xyz" {
		t.Fatalf("newer edit must stay dirty, got %+v", sess)
	}
	cached, _ := w.Note("n1")
	if cached.Content != "xy" {
		t.Fatalf("cache must hold the persisted echo, got %q", cached.Content)
	}

	// A matching echo clears the flag.
	w.AbsorbEcho(note("n1", "A", "xyz", time.Unix(6, 0)), "xyz")
	sess, _ = w.Session("s1")
	if sess.Dirty {
		t.Fatalf("matching echo must clear dirty")
	}
}

func TestAbsorbRenameEchoDoesNotClobberPendingContentEdit(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{note("n1", "Old", "x", time.Unix(1, 0))})
	w.Open(mustNote(t, w, "n1"), "s1")
	w.ApplyEdit("s1", "x-unsaved")

	w.AbsorbRenameEcho(note("n1", "New", "x", time.Unix(2, 0)))

	cached, _ := w.Note("n1")
	if cached.Title != "New" {
		t.Fatalf("title must update immediately, got %q", cached.Title)
	}
	sess, _ := w.Session("s1")
	if !sess.Dirty || sess.WorkingContent != "x-unsaved" {
		t.Fatalf("pending content edit lost: %+v", sess)
	}
}

func TestEchoAfterDeleteDoesNotResurrectNote(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{note("n1", "A", "x", time.Unix(1, 0))})
	w.Open(mustNote(t, w, "n1"), "s1")
	w.ApplyEdit("s1", "xy")

	// The note is deleted while the save for "xy" is still in flight.
	if _, ok := w.DropNote("n1"); !ok {
		t.Fatalf("expected s1 force-closed")
	}
	w.AbsorbEcho(note("n1", "A", "xy", time.Unix(2, 0)), "xy")
	w.AbsorbRenameEcho(note("n1", "B", "xy", time.Unix(3, 0)))

	if _, ok := w.Note("n1"); ok {
		t.Fatalf("echo resurrected a deleted note")
	}
	if got := len(w.Notes()); got != 0 {
		t.Fatalf("expected empty cache, got %d notes", got)
	}
	if got := len(w.Sessions()); got != 0 {
		t.Fatalf("expected no sessions, got %d", got)
	}
}

func TestStaleWriteBackEchoDoesNotRegressRenamedTitle(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{note("n1", "Old", "x", time.Unix(1, 0))})

	// Rename lands first; the overlapping write-back was issued while the
	// note still carried the old title and its echo arrives second.
	w.AbsorbRenameEcho(note("n1", "New", "x", time.Unix(2, 0)))
	w.AbsorbEcho(note("n1", "Old", "xy", time.Unix(3, 0)), "xy")

	cached, _ := w.Note("n1")
	if cached.Title != "New" {
		t.Fatalf("write-back echo regressed the title to %q", cached.Title)
	}
	if cached.Content != "xy" {
		t.Fatalf("write-back content lost, got %q", cached.Content)
	}
	if !cached.UpdatedAt.Equal(time.Unix(3, 0)) {
		t.Fatalf("expected the later echo timestamp, got %v", cached.UpdatedAt)
	}
}

func TestLoadOrdersByMostRecentlyUpdatedAndDropsOrphanSessions(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{
		note("n1", "A", "", time.Unix(1, 0)),
		note("n2", "B", "", time.Unix(9, 0)),
	})
	notes := w.Notes()
	if notes[0].ID != "n2" || notes[1].ID != "n1" {
		t.Fatalf("expected most-recently-updated first, got %v then %v", notes[0].ID, notes[1].ID)
	}

	w.Open(mustNote(t, w, "n1"), "s1")
	w.Open(mustNote(t, w, "n2"), "s2")
	dropped := w.Load([]domain.Note{note("n2", "B", "", time.Unix(9, 0))})
	if len(dropped) != 1 || dropped[0].ID != "s1" {
		t.Fatalf("expected s1 dropped, got %+v", dropped)
	}
	if w.ActiveID() != "s2" {
		t.Fatalf("expected s2 active after prune, got %q", w.ActiveID())
	}
}

func TestSearchIsCaseInsensitiveOverTitleAndContent(t *testing.T) {
	t.Parallel()
	w := &domain.Workspace{}
	w.Load([]domain.Note{
		note("n1", "Groceries", "milk and eggs", time.Unix(3, 0)),
		note("n2", "Work log", "reviewed the GROCERIES budget", time.Unix(2, 0)),
		note("n3", "Ideas", "nothing here", time.Unix(1, 0)),
	})

	hits := w.Search("groceries")
	if len(hits) != 2 || hits[0].ID != "n1" || hits[1].ID != "n2" {
		t.Fatalf("unexpected hits: %+v", hits)
	}
	if got := w.Search(""); len(got) != 3 {
		t.Fatalf("empty query must match everything, got %d", len(got))
	}
	if got := w.Search("zebra"); len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}
}

func mustNote(t *testing.T, w *domain.Workspace, id string) domain.Note {
	t.Helper()
	n, ok := w.Note(id)
	if !ok {
		t.Fatalf("note %s missing from cache", id)
	}
	return n
}
