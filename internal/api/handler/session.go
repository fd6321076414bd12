package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/susround/internal/api/response"
	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/session"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.CreateSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.controller.ListSessions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionListFromCodes(codes))
}

// Get handles GET /api/v1/sessions/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GetSession(r.Context(), sessionCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{code}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteSession(r.Context(), sessionCode(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func sessionCode(r *http.Request) model.SessionCode {
	return model.SessionCode(mux.Vars(r)["code"])
}
