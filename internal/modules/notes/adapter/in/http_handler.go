package in

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"notehub/internal/modules/notes/dto"
	notesin "notehub/internal/modules/notes/port/in"
	apperrors "notehub/internal/platform/errors"
)

// userHeader matches the header the HTTP repository client sends.
const userHeader = "X-Notehub-User"

// HTTPHandler exposes the note repository as a JSON API so a remote
// notehub client can use this process as its durable store.
type HTTPHandler struct {
	notes notesin.Usecase
}

func NewHTTPHandler(notes notesin.Usecase) *HTTPHandler {
	return &HTTPHandler{notes: notes}
}

func (h *HTTPHandler) Router() http.Handler {
	r := chi.NewRouter()
	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.remove)
	})
	return r
}

type notePayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing "+userHeader+" header")
		return
	}
	notes, err := h.notes.List(r.Context(), userID)
	if err != nil {
		writeFailure(w, err)
		return
	}
	payload := make([]notePayload, 0, len(notes))
	for _, n := range notes {
		payload = append(payload, toPayload(n))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *HTTPHandler) create(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing "+userHeader+" header")
		return
	}
	var body notePayload
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	note, err := h.notes.Create(r.Context(), dto.CreateInput{
		UserID:  userID,
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPayload(note))
}

func (h *HTTPHandler) update(w http.ResponseWriter, r *http.Request) {
	var body notePayload
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	note, err := h.notes.Update(r.Context(), dto.UpdateInput{
		ID:      chi.URLParam(r, "id"),
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayload(note))
}

func (h *HTTPHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPayload(n dto.NoteOutput) notePayload {
	return notePayload{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
