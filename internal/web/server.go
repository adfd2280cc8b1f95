package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	uuid "github.com/google/uuid"

	config "github.com/inference-gateway/drawbot/config"
	commands "github.com/inference-gateway/drawbot/internal/commands"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	storage "github.com/inference-gateway/drawbot/internal/infra/storage"
	logger "github.com/inference-gateway/drawbot/internal/logger"
	worker "github.com/inference-gateway/drawbot/internal/worker"
)

//go:embed templates/*
var templates embed.FS

// SessionCookie holds the caller's session id
const SessionCookie = "drawbot_session"

// Server is the HTTP front end. Every command goes through the worker queue
// so that only one drawing owns the cursor at a time.
type Server struct {
	cfg         *config.Config
	interpreter domain.Interpreter
	queue       *worker.Queue
	limiter     domain.RateLimiter
	store       storage.StateStore
	displayName string
	tmpl        *template.Template
	server      *http.Server
}

// NewServer creates the front end
func NewServer(
	cfg *config.Config,
	interpreter domain.Interpreter,
	queue *worker.Queue,
	limiter domain.RateLimiter,
	store storage.StateStore,
	displayName string,
) (*Server, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &Server{
		cfg:         cfg,
		interpreter: interpreter,
		queue:       queue,
		limiter:     limiter,
		store:       store,
		displayName: displayName,
		tmpl:        tmpl,
	}, nil
}

// Handler returns the routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/command", s.handleCommand)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/history", s.handleHistory)
	return mux
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Drawbot server started", "url", fmt.Sprintf("http://%s", s.Addr()), "display", s.displayName)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down drawbot server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info("Drawbot server stopped")
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := s.session(w, r)
	history, err := s.store.ListHistory(r.Context(), sessionID, s.cfg.Server.HistoryLimit)
	if err != nil {
		logger.Warn("Failed to load history", "session_id", sessionID, "error", err)
	}

	data := struct {
		Title    string
		AppName  string
		Keywords []commands.Keyword
		History  []domain.HistoryEntry
	}{
		Title:    "Drawbot",
		AppName:  s.cfg.Target.AppName,
		Keywords: commands.Keywords(),
		History:  history,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		logger.Error("Failed to execute template", "error", err)
	}
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The prompt is echoed as sent; the interpreter normalizes it
	prompt := r.FormValue("prompt")
	if prompt == "" {
		writeText(w, http.StatusBadRequest, "No prompt provided.")
		return
	}

	sessionID := s.session(w, r)

	if err := s.limiter.CheckAndRecord("command"); err != nil {
		logger.Warn("Command rejected", "session_id", sessionID, "error", err)
		writeText(w, http.StatusTooManyRequests, "ERROR: "+err.Error())
		return
	}

	status, err := s.queue.Submit(r.Context(), func(ctx context.Context) (string, error) {
		return s.interpreter.Execute(ctx, sessionID, prompt)
	})
	switch {
	case errors.Is(err, domain.ErrQueueFull), errors.Is(err, domain.ErrQueueClosed):
		logger.Warn("Command not queued", "session_id", sessionID, "prompt", prompt, "error", err)
		writeText(w, http.StatusServiceUnavailable, "ERROR: "+err.Error())
		return
	case err != nil:
		logger.Error("Error while processing command", "session_id", sessionID, "prompt", prompt, "error", err)
		writeText(w, http.StatusInternalServerError, "ERROR: "+err.Error())
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("[%s] -> %s", prompt, status))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":  "ok",
		"display": s.displayName,
		"pending": s.queue.Pending(),
	}
	code := http.StatusOK

	if err := s.store.Health(r.Context()); err != nil {
		body["status"] = "degraded"
		body["error"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, body)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := s.cfg.Server.HistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeText(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	sessionID := s.session(w, r)
	history, err := s.store.ListHistory(r.Context(), sessionID, limit)
	if err != nil {
		logger.Error("Failed to list history", "session_id", sessionID, "error", err)
		writeText(w, http.StatusInternalServerError, "ERROR: "+err.Error())
		return
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}

	writeJSON(w, http.StatusOK, history)
}

// session returns the caller's session id, issuing a new cookie when the
// request carries none or an invalid one
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(msg)); err != nil {
		logger.Warn("Failed to write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}
