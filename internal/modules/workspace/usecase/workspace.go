package usecase

import (
	"context"

	identitydto "notehub/internal/modules/identity/dto"
	identityin "notehub/internal/modules/identity/port/in"
	"notehub/internal/modules/workspace/domain"
	"notehub/internal/modules/workspace/dto"
	workspacein "notehub/internal/modules/workspace/port/in"
	"notehub/internal/modules/workspace/service"
	apperrors "notehub/internal/platform/errors"
)

// Interactor gates every workspace operation on a signed-in user and clears
// all local state (cache, sessions, active pointer) when the identity
// provider reports a sign-out.
type Interactor struct {
	svc      *service.WorkspaceService
	identity identityin.Usecase
}

func NewInteractor(svc *service.WorkspaceService, identity identityin.Usecase) workspacein.Usecase {
	i := &Interactor{svc: svc, identity: identity}
	if identity != nil {
		identity.OnChange(func(_ identitydto.UserOutput, signedIn bool) {
			if !signedIn {
				i.svc.Clear()
			}
		})
	}
	return i
}

func (i *Interactor) Refresh(ctx context.Context) error {
	userID, err := i.currentUser(ctx)
	if err != nil {
		return err
	}
	return i.svc.Load(ctx, userID)
}

func (i *Interactor) Notes(ctx context.Context) ([]dto.NoteOutput, error) {
	if _, err := i.currentUser(ctx); err != nil {
		return nil, err
	}
	return toNoteOutputs(i.svc.Notes()), nil
}

func (i *Interactor) Sessions(ctx context.Context) (dto.SessionListOutput, error) {
	if _, err := i.currentUser(ctx); err != nil {
		return dto.SessionListOutput{}, err
	}
	sessions, activeID := i.svc.Sessions()
	out := dto.SessionListOutput{ActiveID: activeID}
	out.Sessions = make([]dto.SessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		out.Sessions = append(out.Sessions, i.toSessionOutput(sess))
	}
	return out, nil
}

func (i *Interactor) Open(ctx context.Context, noteID string) (dto.SessionOutput, error) {
	if _, err := i.currentUser(ctx); err != nil {
		return dto.SessionOutput{}, err
	}
	sess, err := i.svc.Open(noteID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.toSessionOutput(sess), nil
}

func (i *Interactor) Close(ctx context.Context, sessionID string) error {
	if _, err := i.currentUser(ctx); err != nil {
		return err
	}
	return i.svc.Close(ctx, sessionID)
}

func (i *Interactor) SetActive(ctx context.Context, sessionID string) error {
	if _, err := i.currentUser(ctx); err != nil {
		return err
	}
	return i.svc.SetActive(sessionID)
}

func (i *Interactor) Edit(ctx context.Context, sessionID, content string) error {
	if _, err := i.currentUser(ctx); err != nil {
		return err
	}
	return i.svc.Edit(sessionID, content)
}

func (i *Interactor) Flush(ctx context.Context, sessionID string) error {
	if _, err := i.currentUser(ctx); err != nil {
		return err
	}
	return i.svc.Flush(ctx, sessionID)
}

func (i *Interactor) Create(ctx context.Context, title, content string) (dto.NoteOutput, error) {
	userID, err := i.currentUser(ctx)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	note, err := i.svc.CreateNote(ctx, userID, title, content)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toNoteOutput(note), nil
}

func (i *Interactor) Rename(ctx context.Context, noteID, title string) (dto.NoteOutput, error) {
	if _, err := i.currentUser(ctx); err != nil {
		return dto.NoteOutput{}, err
	}
	note, err := i.svc.RenameNote(ctx, noteID, title)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toNoteOutput(note), nil
}

func (i *Interactor) Delete(ctx context.Context, noteID string) (dto.DeleteOutput, error) {
	if _, err := i.currentUser(ctx); err != nil {
		return dto.DeleteOutput{}, err
	}
	closed, had, err := i.svc.DeleteNote(ctx, noteID)
	if err != nil {
		return dto.DeleteOutput{}, err
	}
	return dto.DeleteOutput{NoteID: noteID, ClosedSessionID: closed.ID, SessionClosed: had}, nil
}

func (i *Interactor) Search(ctx context.Context, query string) ([]dto.NoteOutput, error) {
	if _, err := i.currentUser(ctx); err != nil {
		return nil, err
	}
	return toNoteOutputs(i.svc.Search(query)), nil
}

func (i *Interactor) currentUser(ctx context.Context) (string, error) {
	if i.identity == nil {
		return "", apperrors.ErrAuthRequired
	}
	user, err := i.identity.Current(ctx)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (i *Interactor) toSessionOutput(sess domain.Session) dto.SessionOutput {
	title := ""
	if note, ok := i.svc.Note(sess.NoteID); ok {
		title = note.Title
	}
	return dto.SessionOutput{
		ID:             sess.ID,
		NoteID:         sess.NoteID,
		Title:          title,
		WorkingContent: sess.WorkingContent,
		Dirty:          sess.Dirty,
	}
}

func toNoteOutput(note domain.Note) dto.NoteOutput {
	return dto.NoteOutput{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteOutputs(notes []domain.Note) []dto.NoteOutput {
	out := make([]dto.NoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, toNoteOutput(note))
	}
	return out
}
