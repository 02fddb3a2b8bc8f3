package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"notehub/internal/modules/workspace/domain"
	workspaceout "notehub/internal/modules/workspace/port/out"
	"notehub/internal/platform/clock"
	apperrors "notehub/internal/platform/errors"
	"notehub/internal/platform/id"
)

// DefaultQuietPeriod is the debounce window: a save is issued only after a
// session has seen no edit for this long.
const DefaultQuietPeriod = time.Second

// WorkspaceService owns the note cache, the session set and the per-session
// write-back scheduler. Timers fire on their own goroutines, so all state
// transitions are serialized behind the mutex; the lock is never held
// across a gateway call, and every asynchronous completion re-validates its
// precondition against current state before applying its effect.
type WorkspaceService struct {
	clock clock.Clock
	idGen id.Generator
	gw    workspaceout.NoteGateway
	quiet time.Duration

	mu     sync.Mutex
	ws     domain.Workspace
	timers map[string]clock.Timer
}

func NewWorkspaceService(clk clock.Clock, idGen id.Generator, gw workspaceout.NoteGateway, quiet time.Duration) *WorkspaceService {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &WorkspaceService{
		clock:  clk,
		idGen:  idGen,
		gw:     gw,
		quiet:  quiet,
		timers: make(map[string]clock.Timer),
	}
}

// Load replaces the cache wholesale from the repository. Sessions whose
// note disappeared remotely are force-closed and their timers cancelled.
func (s *WorkspaceService) Load(ctx context.Context, userID string) error {
	notes, err := s.gw.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dropped := range s.ws.Load(notes) {
		s.stopTimerLocked(dropped.ID)
	}
	return nil
}

// Clear drops all local state: cache, sessions, active pointer and any
// pending timers. Called on sign-out.
func (s *WorkspaceService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sessionID := range s.timers {
		s.stopTimerLocked(sessionID)
	}
	s.ws.Reset()
}

func (s *WorkspaceService) Notes() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Notes()
}

func (s *WorkspaceService) Note(id string) (domain.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Note(id)
}

func (s *WorkspaceService) Sessions() ([]domain.Session, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Sessions(), s.ws.ActiveID()
}

func (s *WorkspaceService) Session(id string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Session(id)
}

// Open activates the existing session for the note or creates a new one
// seeded from the cached content. Idempotent per note id: an already-dirty
// session keeps its unsaved edits.
func (s *WorkspaceService) Open(noteID string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.ws.Note(noteID)
	if !ok {
		return domain.Session{}, fmt.Errorf("note %s: %w", noteID, apperrors.ErrNotFound)
	}
	sess, _ := s.ws.Open(note, s.idGen.New())
	return sess, nil
}

func (s *WorkspaceService) SetActive(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.SetActive(sessionID)
}

// Edit is the only mutation path that arms the write-back timer. Each call
// cancels the session's pending timer and starts a fresh quiet period, so a
// burst of edits coalesces into a single save.
func (s *WorkspaceService) Edit(sessionID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.ws.ApplyEdit(sessionID, content); err != nil {
		return err
	}
	s.stopTimerLocked(sessionID)
	s.timers[sessionID] = s.clock.AfterFunc(s.quiet, func() {
		_ = s.Flush(context.Background(), sessionID)
	})
	return nil
}

// Flush persists the session's working content now. It re-reads the dirty
// flag at fire time (a clean or vanished session is a no-op) and sends the
// content as of fire time, not as of when the timer was armed. On
// completion the dirty flag is cleared only if the persisted content still
// equals the session's working content; a failure leaves the session dirty
// and arms no retry timer — the next edit re-arms naturally.
func (s *WorkspaceService) Flush(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	s.stopTimerLocked(sessionID)
	sess, ok := s.ws.Session(sessionID)
	if !ok || !sess.Dirty {
		s.mu.Unlock()
		return nil
	}
	note, ok := s.ws.Note(sess.NoteID)
	if !ok {
		s.mu.Unlock()
		return nil
	}
	sent := sess.WorkingContent
	note.Content = sent
	s.mu.Unlock()

	echo, err := s.gw.Update(ctx, note)
	if err != nil {
		return fmt.Errorf("write back %s: %w", sess.NoteID, err)
	}

	s.mu.Lock()
	s.ws.AbsorbEcho(echo, sent)
	s.mu.Unlock()
	return nil
}

// Close removes the session. A dirty session is flushed synchronously
// first; when the flush fails, or a new edit lands while it is in flight,
// the close is refused with ErrUnsavedChanges instead of dropping edits.
func (s *WorkspaceService) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.ws.Session(sessionID)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	s.stopTimerLocked(sessionID)
	dirty := sess.Dirty
	s.mu.Unlock()

	if dirty {
		if err := s.Flush(ctx, sessionID); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrUnsavedChanges, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.ws.Session(sessionID); ok && sess.Dirty {
		return apperrors.ErrUnsavedChanges
	}
	_, err := s.ws.Close(sessionID)
	return err
}

func (s *WorkspaceService) CreateNote(ctx context.Context, userID, title, content string) (domain.Note, error) {
	note, err := s.gw.Create(ctx, userID, title, content)
	if err != nil {
		return domain.Note{}, err
	}
	s.mu.Lock()
	s.ws.UpsertNote(note)
	s.mu.Unlock()
	return note, nil
}

// RenameNote updates only the title. The update carries the cache's last
// persisted content, never a session's unsaved working content, so a
// pending content edit survives the rename echo with its dirty flag set.
func (s *WorkspaceService) RenameNote(ctx context.Context, noteID, title string) (domain.Note, error) {
	s.mu.Lock()
	note, ok := s.ws.Note(noteID)
	s.mu.Unlock()
	if !ok {
		return domain.Note{}, fmt.Errorf("note %s: %w", noteID, apperrors.ErrNotFound)
	}
	note.Title = title

	echo, err := s.gw.Update(ctx, note)
	if err != nil {
		return domain.Note{}, err
	}
	s.mu.Lock()
	s.ws.AbsorbRenameEcho(echo)
	s.mu.Unlock()
	return echo, nil
}

// DeleteNote removes the note remotely, then force-closes any session bound
// to it without a flush (the document is gone) and reports the close so the
// caller can surface it.
func (s *WorkspaceService) DeleteNote(ctx context.Context, noteID string) (domain.Session, bool, error) {
	if err := s.gw.Delete(ctx, noteID); err != nil {
		return domain.Session{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	closed, had := s.ws.DropNote(noteID)
	if had {
		s.stopTimerLocked(closed.ID)
	}
	return closed, had, nil
}

func (s *WorkspaceService) Search(query string) []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Search(query)
}

func (s *WorkspaceService) stopTimerLocked(sessionID string) {
	if timer, ok := s.timers[sessionID]; ok {
		timer.Stop()
		delete(s.timers, sessionID)
	}
}
