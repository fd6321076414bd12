package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/susround/internal/api/handler"
	"github.com/mcoot/susround/internal/api/middleware"
	"github.com/mcoot/susround/internal/api/response"
	"github.com/mcoot/susround/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	roundHandler := handler.NewRoundHandler(cfg.SessionController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Session routes
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("", sessionHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}", sessionHandler.Delete).Methods(http.MethodDelete)

	// Generic action endpoint
	sessions.HandleFunc("/{code}/actions", roundHandler.Action).Methods(http.MethodPost)

	// Lobby routes
	sessions.HandleFunc("/{code}/players", roundHandler.AddPlayer).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/players/{player_id}", roundHandler.RemovePlayer).Methods(http.MethodDelete)
	sessions.HandleFunc("/{code}/impostors", roundHandler.SetImpostorCount).Methods(http.MethodPut)
	sessions.HandleFunc("/{code}/round", roundHandler.StartRound).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/round", roundHandler.ResetRound).Methods(http.MethodDelete)
	sessions.HandleFunc("/{code}/reset", roundHandler.ResetLobby).Methods(http.MethodPost)

	// Reveal routes
	sessions.HandleFunc("/{code}/reveal/toggle", roundHandler.ToggleReveal).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/reveal/advance", roundHandler.AdvanceCard).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/reveal/skip", roundHandler.SkipReveal).Methods(http.MethodPost)

	// Mission routes
	sessions.HandleFunc("/{code}/players/{player_id}/status", roundHandler.ToggleStatus).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/players/{player_id}/tasks/{task_id}", roundHandler.ToggleTask).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/prompt", roundHandler.DrawPrompt).Methods(http.MethodPost)

	// Meeting routes
	sessions.HandleFunc("/{code}/meeting", roundHandler.CallMeeting).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/meeting/suspect", roundHandler.SelectSuspect).Methods(http.MethodPut)
	sessions.HandleFunc("/{code}/meeting/eject", roundHandler.ConfirmEjection).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/meeting/skip", roundHandler.SkipVote).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
