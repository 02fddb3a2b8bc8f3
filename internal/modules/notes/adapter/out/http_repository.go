package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"notehub/internal/modules/notes/domain"
	notesout "notehub/internal/modules/notes/port/out"
	apperrors "notehub/internal/platform/errors"
)

// UserHeader carries the acting user's id on every repository request.
const UserHeader = "X-Notehub-User"

// HTTPRepository talks to a remote notehub server (`notehub serve`) and
// implements the same repository contract as the local sqlite store.
type HTTPRepository struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRepository(baseURL string) notesout.Repository {
	return &HTTPRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type noteJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (r *HTTPRepository) List(ctx context.Context, userID string) ([]domain.Note, error) {
	var payload []noteJSON
	if err := r.do(ctx, http.MethodGet, "/notes", userID, nil, &payload); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	notes := make([]domain.Note, 0, len(payload))
	for _, n := range payload {
		notes = append(notes, fromJSON(n))
	}
	return notes, nil
}

func (r *HTTPRepository) Insert(ctx context.Context, draft domain.Note, userID string) (domain.Note, error) {
	body := noteJSON{Title: draft.Title, Content: draft.Content}
	var echo noteJSON
	if err := r.do(ctx, http.MethodPost, "/notes", userID, body, &echo); err != nil {
		return domain.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return fromJSON(echo), nil
}

func (r *HTTPRepository) Update(ctx context.Context, note domain.Note) (domain.Note, error) {
	body := noteJSON{Title: note.Title, Content: note.Content, UpdatedAt: note.UpdatedAt}
	var echo noteJSON
	if err := r.do(ctx, http.MethodPut, "/notes/"+note.ID, "", body, &echo); err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	return fromJSON(echo), nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	if err := r.do(ctx, http.MethodDelete, "/notes/"+id, "", nil, nil); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (r *HTTPRepository) do(ctx context.Context, method, path, userID string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(UserHeader, userID)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload errorJSON
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	msg := payload.Error
	if msg == "" {
		msg = resp.Status
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrInvalidInput)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrAuthRequired)
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}

func fromJSON(n noteJSON) domain.Note {
	return domain.Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
