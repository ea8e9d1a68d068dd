package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hyperoxo/hyperoxo/internal/api/apierr"
	"github.com/hyperoxo/hyperoxo/internal/model"
	"github.com/hyperoxo/hyperoxo/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// CreateSessionRequest is the body for POST /sessions
type CreateSessionRequest struct {
	Dimensions   int       `json:"dimensions"`
	Size         int       `json:"size"`
	MovesPerTurn int       `json:"moves_per_turn"`
	Misere       bool      `json:"misere"`
	MoveBase     int       `json:"move_base"`
	Players      [2]string `json:"players"`
}

// MoveRequest is the body for POST /sessions/{id}/moves
type MoveRequest struct {
	// Cell uses the move-string grammar: digits per coordinate for n <= 9,
	// otherwise digit runs split by any separator, e.g. "1,2,3"
	Cell string `json:"cell"`
	// Offset is subtracted from each coordinate; defaults to 1
	Offset *int `json:"offset"`
}

// SessionResponse is the representation of a session returned by the API
type SessionResponse struct {
	ID           model.SessionID  `json:"id"`
	Config       model.GameConfig `json:"config"`
	Players      [2]string        `json:"players"`
	State        model.GameState  `json:"state"`
	StateText    string           `json:"state_text"`
	ActivePlayer int              `json:"active_player"`
	Moves        []model.Move     `json:"moves"`
	WinLine      []model.Coord    `json:"win_line,omitempty"`
	Forfeited    bool             `json:"forfeited"`
}

func sessionResponse(s *model.Session, v session.EngineView) SessionResponse {
	resp := SessionResponse{
		ID:           s.ID,
		Config:       s.Config,
		Players:      s.Players,
		State:        s.State,
		StateText:    v.StateText,
		ActivePlayer: v.ActivePlayer,
		Moves:        s.Moves,
		Forfeited:    s.Forfeited,
	}
	if v.WinLine != nil {
		resp.WinLine = v.WinLine
	}
	return resp
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	cfg := model.GameConfig{
		Dimensions:   req.Dimensions,
		Size:         req.Size,
		MovesPerTurn: req.MovesPerTurn,
		Misere:       req.Misere,
		MoveBase:     req.MoveBase,
	}
	s, err := h.controller.Create(r.Context(), cfg, req.Players)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	view, err := h.controller.View(r.Context(), s.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(s, view))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, err := h.controller.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	view, err := h.controller.View(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(s, view))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]model.SessionID{"sessions": ids})
}

// Move handles POST /api/v1/sessions/{id}/moves
func (h *SessionHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}
	offset := 1
	if req.Offset != nil {
		offset = *req.Offset
	}

	s, err := h.controller.Move(r.Context(), id, req.Cell, offset)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	view, err := h.controller.View(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(s, view))
}

// Undo handles POST /api/v1/sessions/{id}/undo
func (h *SessionHandler) Undo(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.controller.Undo)
}

// Forfeit handles POST /api/v1/sessions/{id}/forfeit
func (h *SessionHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.controller.Forfeit)
}

// Reset handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.controller.Reset)
}

func (h *SessionHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id model.SessionID) (*model.Session, error),
) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, err := op(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	view, err := h.controller.View(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(s, view))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.controller.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
