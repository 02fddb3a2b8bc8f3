package app

import (
	"context"
	"errors"
	"os"
	"testing"

	wdto "notehub/internal/modules/workspace/dto"
	apperrors "notehub/internal/platform/errors"
)

type fakeWorkspace struct {
	notes []wdto.NoteOutput
}

func (f *fakeWorkspace) Refresh(context.Context) error { return nil }

func (f *fakeWorkspace) Notes(context.Context) ([]wdto.NoteOutput, error) {
	return f.notes, nil
}

func (f *fakeWorkspace) Sessions(context.Context) (wdto.SessionListOutput, error) {
	return wdto.SessionListOutput{}, nil
}

func (f *fakeWorkspace) Open(context.Context, string) (wdto.SessionOutput, error) {
	return wdto.SessionOutput{}, nil
}

func (f *fakeWorkspace) Close(context.Context, string) error { return nil }

func (f *fakeWorkspace) SetActive(context.Context, string) error { return nil }

func (f *fakeWorkspace) Edit(context.Context, string, string) error { return nil }

func (f *fakeWorkspace) Flush(context.Context, string) error { return nil }

func (f *fakeWorkspace) Create(context.Context, string, string) (wdto.NoteOutput, error) {
	return wdto.NoteOutput{}, nil
}

func (f *fakeWorkspace) Rename(context.Context, string, string) (wdto.NoteOutput, error) {
	return wdto.NoteOutput{}, nil
}

func (f *fakeWorkspace) Delete(context.Context, string) (wdto.DeleteOutput, error) {
	return wdto.DeleteOutput{}, nil
}

func (f *fakeWorkspace) Search(context.Context, string) ([]wdto.NoteOutput, error) {
	return nil, nil
}

// chdirTemp mirrors t.Chdir(t.TempDir()), which needs Go 1.24+.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	})
}

func TestExportWritesOpenTabWorkingContent(t *testing.T) {
	chdirTemp(t)
	m := Model{
		workspace: &fakeWorkspace{},
		sessions: wdto.SessionListOutput{Sessions: []wdto.SessionOutput{
			{ID: "s1", NoteID: "n1", Title: "Groceries", WorkingContent: "milk\neggs", Dirty: true},
		}},
	}

	msg, ok := m.exportCmd("n1")().(exportedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("export failed: %+v ok=%v", msg, ok)
	}
	if msg.path != "Groceries.txt" {
		t.Fatalf("expected Groceries.txt, got %q", msg.path)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "milk\neggs" {
		t.Fatalf("export must carry the unsaved working content, got %q", data)
	}
}

func TestExportFallsBackToPersistedContentWithoutSession(t *testing.T) {
	chdirTemp(t)
	m := Model{workspace: &fakeWorkspace{notes: []wdto.NoteOutput{
		{ID: "n2", Title: "Plan", Content: "persisted"},
	}}}

	msg, ok := m.exportCmd("n2")().(exportedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("export failed: %+v ok=%v", msg, ok)
	}
	data, err := os.ReadFile("Plan.txt")
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "persisted" {
		t.Fatalf("expected persisted content, got %q", data)
	}

	msg, _ = m.exportCmd("ghost")().(exportedMsg)
	if !errors.Is(msg.err, apperrors.ErrNotFound) {
		t.Fatalf("export of unknown note must be NotFound, got %v", msg.err)
	}
}

func TestExportFileNameSanitizesTitle(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Groceries":  "Groceries.txt",
		"a/b":        "a-b.txt",
		`win\path`:   "win-path.txt",
		"  ":         "untitled.txt",
		" trimmed  ": "trimmed.txt",
	}
	for title, want := range cases {
		if got := exportFileName(title); got != want {
			t.Fatalf("exportFileName(%q) = %q, want %q", title, got, want)
		}
	}
}
