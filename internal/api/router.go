package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hyperoxo/hyperoxo/internal/api/handler"
	"github.com/hyperoxo/hyperoxo/internal/api/middleware"
	"github.com/hyperoxo/hyperoxo/internal/services/session"
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
	structureHandler := handler.NewStructureHandler()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/moves", sessionHandler.Move).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/undo", sessionHandler.Undo).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/forfeit", sessionHandler.Forfeit).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/reset", sessionHandler.Reset).Methods(http.MethodPost)

	// Board structure inspection
	api.HandleFunc("/structure", structureHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
