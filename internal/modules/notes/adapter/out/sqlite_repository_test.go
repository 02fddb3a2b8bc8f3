package out_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"notehub/internal/modules/notes/adapter/out"
	"notehub/internal/modules/notes/domain"
	notesout "notehub/internal/modules/notes/port/out"
	"notehub/internal/platform/clock"
	apperrors "notehub/internal/platform/errors"
)

// steppingClock advances one second per call so updated_at ordering is
// deterministic.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *steppingClock) AfterFunc(_ time.Duration, _ func()) clock.Timer { return nil }

type seqID struct {
	mu sync.Mutex
	n  int
}

func (s *seqID) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("note-%d", s.n)
}

func newRepo(t *testing.T) (context.Context, notesout.Repository, *steppingClock) {
	t.Helper()
	clk := &steppingClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	repo, err := out.NewSQLiteRepository(filepath.Join(t.TempDir(), "notehub.db"), clk, &seqID{})
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	return context.Background(), repo, clk
}

func TestInsertAssignsIDAndTimestamps(t *testing.T) {
	t.Parallel()
	ctx, repo, _ := newRepo(t)

	note, err := repo.Insert(ctx, domain.Note{Title: "First", Content: "hello"}, "u1")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if note.ID == "" {
		t.Fatalf("insert must assign an id")
	}
	if note.CreatedAt.IsZero() || !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Fatalf("fresh note must have created_at == updated_at, got %v / %v", note.CreatedAt, note.UpdatedAt)
	}

	listed, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one note, got %d", len(listed))
	}
	got := listed[0]
	if got.ID != note.ID || got.Title != "First" || got.Content != "hello" ||
		!got.CreatedAt.Equal(note.CreatedAt) || !got.UpdatedAt.Equal(note.UpdatedAt) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, note)
	}
}

func TestListScopesToUserAndOrdersByMostRecentlyUpdated(t *testing.T) {
	t.Parallel()
	ctx, repo, clk := newRepo(t)

	first, _ := repo.Insert(ctx, domain.Note{Title: "old"}, "u1")
	second, _ := repo.Insert(ctx, domain.Note{Title: "new"}, "u1")
	if _, err := repo.Insert(ctx, domain.Note{Title: "other user"}, "u2"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	listed, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != second.ID || listed[1].ID != first.ID {
		t.Fatalf("expected [new old], got %+v", listed)
	}

	// Touching the older note moves it to the front.
	first.Content = "touched"
	first.UpdatedAt = clk.Now()
	if _, err := repo.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	listed, _ = repo.List(ctx, "u1")
	if listed[0].ID != first.ID || listed[0].Content != "touched" {
		t.Fatalf("expected touched note first, got %+v", listed)
	}
}

func TestUpdateEchoesCanonicalRowAndPreservesCreatedAt(t *testing.T) {
	t.Parallel()
	ctx, repo, clk := newRepo(t)

	note, _ := repo.Insert(ctx, domain.Note{Title: "T", Content: "a"}, "u1")
	note.Content = "ab"
	note.UpdatedAt = clk.Now()

	echo, err := repo.Update(ctx, note)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if echo.Content != "ab" || !echo.CreatedAt.Equal(note.CreatedAt) {
		t.Fatalf("echo must carry new content and original created_at, got %+v", echo)
	}
	if !echo.UpdatedAt.After(echo.CreatedAt) {
		t.Fatalf("updated_at must advance, got %+v", echo)
	}
}

func TestUpdateAndDeleteReportMissingNotes(t *testing.T) {
	t.Parallel()
	ctx, repo, clk := newRepo(t)

	_, err := repo.Update(ctx, domain.Note{ID: "ghost", Title: "T", UpdatedAt: clk.Now()})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("update of missing note: expected NotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("delete of missing note: expected NotFound, got %v", err)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	t.Parallel()
	ctx, repo, _ := newRepo(t)

	note, _ := repo.Insert(ctx, domain.Note{Title: "gone soon"}, "u1")
	if err := repo.Delete(ctx, note.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, _ := repo.List(ctx, "u1")
	if len(listed) != 0 {
		t.Fatalf("expected empty list, got %+v", listed)
	}
}
