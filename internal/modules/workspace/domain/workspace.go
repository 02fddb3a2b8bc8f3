package domain

import (
	"fmt"
	"sort"
	"strings"

	apperrors "notehub/internal/platform/errors"
)

// Workspace is the pure in-memory working set: the note cache ordered most
// recently updated first, the session set in insertion order, and the
// active session pointer. It performs no I/O; the service layer drives it
// and owns all locking.
//
// Invariants:
//   - at most one session exists per note id;
//   - the active id is empty or names a session currently in the set;
//   - every session's note id referenced a cache entry when it was created.
type Workspace struct {
	notes    []Note
	sessions []Session
	activeID string
}

// Load replaces the cache wholesale. Sessions whose note no longer exists
// are dropped and returned so the caller can cancel their timers.
func (w *Workspace) Load(notes []Note) []Session {
	w.notes = append([]Note(nil), notes...)
	w.sortNotes()

	var dropped []Session
	kept := w.sessions[:0]
	for _, sess := range w.sessions {
		if _, ok := w.Note(sess.NoteID); ok {
			kept = append(kept, sess)
		} else {
			dropped = append(dropped, sess)
		}
	}
	w.sessions = kept
	w.recomputeActive()
	return dropped
}

// Reset drops all local state: cache, sessions and the active pointer.
func (w *Workspace) Reset() {
	w.notes = nil
	w.sessions = nil
	w.activeID = ""
}

func (w *Workspace) Notes() []Note {
	return append([]Note(nil), w.notes...)
}

func (w *Workspace) Note(id string) (Note, bool) {
	for _, note := range w.notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// UpsertNote inserts or replaces a cache entry and restores the
// most-recently-updated-first order.
func (w *Workspace) UpsertNote(note Note) {
	for i := range w.notes {
		if w.notes[i].ID == note.ID {
			w.notes[i] = note
			w.sortNotes()
			return
		}
	}
	w.notes = append(w.notes, note)
	w.sortNotes()
}

func (w *Workspace) Sessions() []Session {
	return append([]Session(nil), w.sessions...)
}

func (w *Workspace) Session(id string) (Session, bool) {
	for _, sess := range w.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return Session{}, false
}

func (w *Workspace) SessionForNote(noteID string) (Session, bool) {
	for _, sess := range w.sessions {
		if sess.NoteID == noteID {
			return sess, true
		}
	}
	return Session{}, false
}

func (w *Workspace) ActiveID() string {
	return w.activeID
}

func (w *Workspace) Active() (Session, bool) {
	if w.activeID == "" {
		return Session{}, false
	}
	return w.Session(w.activeID)
}

// Open activates the existing session for the note when one exists, keeping
// its unsaved working content intact. Otherwise it appends a fresh session
// seeded from the note's persisted content. The second return value reports
// whether a session was created.
func (w *Workspace) Open(note Note, newSessionID string) (Session, bool) {
	if sess, ok := w.SessionForNote(note.ID); ok {
		w.activeID = sess.ID
		return sess, false
	}
	sess := Session{
		ID:             newSessionID,
		NoteID:         note.ID,
		WorkingContent: note.Content,
	}
	w.sessions = append(w.sessions, sess)
	w.activeID = sess.ID
	return sess, true
}

// Close removes the session. When it was active, the first remaining
// session in insertion order becomes active, or none if the set is empty.
func (w *Workspace) Close(sessionID string) (Session, error) {
	for i, sess := range w.sessions {
		if sess.ID != sessionID {
			continue
		}
		w.sessions = append(w.sessions[:i], w.sessions[i+1:]...)
		if w.activeID == sessionID {
			w.recomputeActive()
		}
		return sess, nil
	}
	return Session{}, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
}

// DropNote removes a note from the cache together with any session bound to
// it, without any flush: the backing document is gone. The closed session is
// returned so the caller can cancel its timer and report the force-close.
func (w *Workspace) DropNote(noteID string) (Session, bool) {
	for i := range w.notes {
		if w.notes[i].ID == noteID {
			w.notes = append(w.notes[:i], w.notes[i+1:]...)
			break
		}
	}
	sess, ok := w.SessionForNote(noteID)
	if !ok {
		return Session{}, false
	}
	closed, _ := w.Close(sess.ID)
	return closed, true
}

func (w *Workspace) SetActive(sessionID string) error {
	if _, ok := w.Session(sessionID); !ok {
		return fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	w.activeID = sessionID
	return nil
}

// ApplyEdit replaces the session's working content and marks it dirty.
func (w *Workspace) ApplyEdit(sessionID, content string) (Session, error) {
	for i := range w.sessions {
		if w.sessions[i].ID == sessionID {
			w.sessions[i].WorkingContent = content
			w.sessions[i].Dirty = true
			return w.sessions[i], nil
		}
	}
	return Session{}, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
}

// AbsorbEcho reconciles a write-back echo into the cache and sessions.
// sentContent is the content the update request carried. Only the fields
// the write-back authoritatively changed are merged — content and the
// server timestamp, never the title — and only into an entry still in the
// cache: a note deleted while the save was in flight stays gone. The
// session's dirty flag is cleared only when its current working content
// equals what was actually persisted; a newer edit keeps the session dirty
// so the already re-armed timer persists it. Discarding stale echoes is
// keyed on content equality, not arrival order.
func (w *Workspace) AbsorbEcho(echo Note, sentContent string) {
	merged := false
	for i := range w.notes {
		if w.notes[i].ID == echo.ID {
			w.notes[i].Content = echo.Content
			w.notes[i].UpdatedAt = echo.UpdatedAt
			merged = true
			break
		}
	}
	if !merged {
		return
	}
	w.sortNotes()
	for i := range w.sessions {
		if w.sessions[i].NoteID != echo.ID {
			continue
		}
		if w.sessions[i].WorkingContent == sentContent {
			w.sessions[i].WorkingContent = echo.Content
			w.sessions[i].Dirty = false
		}
	}
}

// AbsorbRenameEcho merges a title-only update echo: title and server
// timestamp, never content, so a reordered write-back echo and a rename
// echo cannot regress each other's field. A note deleted mid-flight stays
// gone.
func (w *Workspace) AbsorbRenameEcho(echo Note) {
	for i := range w.notes {
		if w.notes[i].ID == echo.ID {
			w.notes[i].Title = echo.Title
			w.notes[i].UpdatedAt = echo.UpdatedAt
			w.sortNotes()
			return
		}
	}
}

// Search is a case-insensitive substring scan over cached titles and
// contents. The corpus is small enough that no index is kept.
func (w *Workspace) Search(query string) []Note {
	needle := strings.ToLower(strings.TrimSpace(query))
	var hits []Note
	for _, note := range w.notes {
		if strings.Contains(strings.ToLower(note.Title), needle) ||
			strings.Contains(strings.ToLower(note.Content), needle) {
			hits = append(hits, note)
		}
	}
	return hits
}

func (w *Workspace) sortNotes() {
	sort.SliceStable(w.notes, func(i, j int) bool {
		return w.notes[i].UpdatedAt.After(w.notes[j].UpdatedAt)
	})
}

func (w *Workspace) recomputeActive() {
	if len(w.sessions) == 0 {
		w.activeID = ""
		return
	}
	for _, sess := range w.sessions {
		if sess.ID == w.activeID {
			return
		}
	}
	w.activeID = w.sessions[0].ID
}
