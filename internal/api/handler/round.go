package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/susround/internal/api/request"
	"github.com/mcoot/susround/internal/api/response"
	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/round"
	"github.com/mcoot/susround/internal/services/session"
)

// RoundHandler handles the player-facing actions of a round
type RoundHandler struct {
	controller *session.Controller
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(controller *session.Controller) *RoundHandler {
	return &RoundHandler{controller: controller}
}

// dispatch applies an action and writes the resulting session view
func (h *RoundHandler) dispatch(w http.ResponseWriter, r *http.Request, action round.Action) {
	s, err := h.controller.Dispatch(r.Context(), sessionCode(r), action)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Action handles POST /api/v1/sessions/{code}/actions
func (h *RoundHandler) Action(w http.ResponseWriter, r *http.Request) {
	var action round.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if action.Type == "" {
		WriteError(w, NewInvalidRequestError("type is required"))
		return
	}

	h.dispatch(w, r, action)
}

// AddPlayer handles POST /api/v1/sessions/{code}/players
func (h *RoundHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	h.dispatch(w, r, round.AddPlayer(req.Name))
}

// RemovePlayer handles DELETE /api/v1/sessions/{code}/players/{player_id}
func (h *RoundHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.RemovePlayer(playerID(r)))
}

// ToggleStatus handles POST /api/v1/sessions/{code}/players/{player_id}/status
func (h *RoundHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.ToggleStatus(playerID(r)))
}

// ToggleTask handles POST /api/v1/sessions/{code}/players/{player_id}/tasks/{task_id}
func (h *RoundHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(mux.Vars(r)["task_id"])
	h.dispatch(w, r, round.ToggleTask(playerID(r), taskID))
}

// SetImpostorCount handles PUT /api/v1/sessions/{code}/impostors
func (h *RoundHandler) SetImpostorCount(w http.ResponseWriter, r *http.Request) {
	var req request.SetImpostorCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Count == nil {
		WriteError(w, NewInvalidRequestError("count is required"))
		return
	}

	h.dispatch(w, r, round.SetImpostorCount(*req.Count))
}

// StartRound handles POST /api/v1/sessions/{code}/round
func (h *RoundHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.StartRound())
}

// ResetRound handles DELETE /api/v1/sessions/{code}/round
func (h *RoundHandler) ResetRound(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.ResetRound())
}

// ResetLobby handles POST /api/v1/sessions/{code}/reset
func (h *RoundHandler) ResetLobby(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.ResetLobby())
}

// ToggleReveal handles POST /api/v1/sessions/{code}/reveal/toggle
func (h *RoundHandler) ToggleReveal(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.ToggleReveal())
}

// AdvanceCard handles POST /api/v1/sessions/{code}/reveal/advance
func (h *RoundHandler) AdvanceCard(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.AdvanceCard())
}

// SkipReveal handles POST /api/v1/sessions/{code}/reveal/skip
func (h *RoundHandler) SkipReveal(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.SkipReveal())
}

// CallMeeting handles POST /api/v1/sessions/{code}/meeting
func (h *RoundHandler) CallMeeting(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.CallMeeting())
}

// SelectSuspect handles PUT /api/v1/sessions/{code}/meeting/suspect
func (h *RoundHandler) SelectSuspect(w http.ResponseWriter, r *http.Request) {
	var req request.SelectSuspectRequest
	// An empty body clears the selection
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	h.dispatch(w, r, round.SelectSuspect(model.PlayerID(req.PlayerID)))
}

// ConfirmEjection handles POST /api/v1/sessions/{code}/meeting/eject
func (h *RoundHandler) ConfirmEjection(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.ConfirmEjection())
}

// SkipVote handles POST /api/v1/sessions/{code}/meeting/skip
func (h *RoundHandler) SkipVote(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.SkipVote())
}

// DrawPrompt handles POST /api/v1/sessions/{code}/prompt
func (h *RoundHandler) DrawPrompt(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, round.DrawPrompt())
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["player_id"])
}
