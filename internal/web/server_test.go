package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	storage "github.com/inference-gateway/drawbot/internal/infra/storage"
	utils "github.com/inference-gateway/drawbot/internal/utils"
	worker "github.com/inference-gateway/drawbot/internal/worker"
	domainmocks "github.com/inference-gateway/drawbot/tests/mocks/domain"
	storagemocks "github.com/inference-gateway/drawbot/tests/mocks/storage"
)

func newServer(t *testing.T, cfg *config.Config, interp domain.Interpreter, limiter domain.RateLimiter, store storage.StateStore) *Server {
	t.Helper()

	queue := worker.New(cfg.Server.QueueSize)
	t.Cleanup(queue.Close)

	srv, err := NewServer(cfg, interp, queue, limiter, store, "recorder")
	require.NoError(t, err)
	return srv
}

func newTestServer(t *testing.T, interp *domainmocks.FakeInterpreter, mutate ...func(*config.Config)) (*Server, *storage.MemoryStore) {
	t.Helper()

	cfg := config.DefaultConfig()
	for _, m := range mutate {
		m(cfg)
	}

	store := storage.NewMemoryStore(0)
	return newServer(t, cfg, interp, utils.NewRateLimiter(cfg.RateLimit), store), store
}

func executed(interp *domainmocks.FakeInterpreter) (sessions, prompts []string) {
	for i := 0; i < interp.ExecuteCallCount(); i++ {
		_, sessionID, prompt := interp.ExecuteArgsForCall(i)
		sessions = append(sessions, sessionID)
		prompts = append(prompts, prompt)
	}
	return sessions, prompts
}

func okInterpreter(status string) *domainmocks.FakeInterpreter {
	interp := &domainmocks.FakeInterpreter{}
	interp.ExecuteReturns(status, nil)
	return interp
}

func postCommand(h http.Handler, prompt string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	form := url.Values{"prompt": {prompt}}
	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookie)
	return nil
}

func TestCommandSuccess(t *testing.T) {
	interp := okInterpreter("OK: House drawn.")
	srv, _ := newTestServer(t, interp)

	rec := postCommand(srv.Handler(), "  house ")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[  house ] -> OK: House drawn.", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	sessions, prompts := executed(interp)
	assert.Equal(t, []string{"  house "}, prompts)
	cookie := sessionCookie(t, rec)
	assert.Equal(t, []string{cookie.Value}, sessions)
}

func TestCommandEmptyPrompt(t *testing.T) {
	interp := &domainmocks.FakeInterpreter{}
	srv, _ := newTestServer(t, interp)

	rec := postCommand(srv.Handler(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No prompt provided.", rec.Body.String())
	assert.Zero(t, interp.ExecuteCallCount())
}

func TestCommandWhitespacePromptReachesInterpreter(t *testing.T) {
	interp := okInterpreter("Unknown command.")
	srv, _ := newTestServer(t, interp)

	rec := postCommand(srv.Handler(), "   \t")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[   \t] -> Unknown command.", rec.Body.String())
	require.Equal(t, 1, interp.ExecuteCallCount())
}

func TestCommandInterpreterError(t *testing.T) {
	interp := &domainmocks.FakeInterpreter{}
	interp.ExecuteReturns("", errors.New("failed to draw house: boom"))
	srv, _ := newTestServer(t, interp)

	rec := postCommand(srv.Handler(), "house")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "ERROR: failed to draw house: boom", rec.Body.String())
}

func TestCommandMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/command", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCommandRateLimited(t *testing.T) {
	interp := okInterpreter("OK: Sun drawn.")
	srv, _ := newTestServer(t, interp, func(c *config.Config) {
		c.RateLimit = config.RateLimitConfig{Enabled: true, MaxActionsPerMinute: 2, WindowSeconds: 60}
	})
	h := srv.Handler()

	assert.Equal(t, http.StatusOK, postCommand(h, "sun").Code)
	assert.Equal(t, http.StatusOK, postCommand(h, "sun").Code)

	rec := postCommand(h, "sun")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ERROR: rate limit exceeded"), rec.Body.String())
	assert.Equal(t, 2, interp.ExecuteCallCount())
}

func TestCommandRejectedByLimiter(t *testing.T) {
	interp := okInterpreter("OK")
	limiter := &domainmocks.FakeRateLimiter{}
	limiter.CheckAndRecordReturns(errors.New("rate limit exceeded: 5 actions per 60s"))
	srv := newServer(t, config.DefaultConfig(), interp, limiter, storage.NewMemoryStore(0))

	rec := postCommand(srv.Handler(), "sun")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "ERROR: rate limit exceeded: 5 actions per 60s", rec.Body.String())
	require.Equal(t, 1, limiter.CheckAndRecordCallCount())
	assert.Equal(t, "command", limiter.CheckAndRecordArgsForCall(0))
	assert.Zero(t, interp.ExecuteCallCount())
}

func TestSessionCookieIsReused(t *testing.T) {
	interp := okInterpreter("OK")
	srv, _ := newTestServer(t, interp)
	h := srv.Handler()

	first := postCommand(h, "house")
	cookie := sessionCookie(t, first)

	second := postCommand(h, "tree", cookie)
	assert.Empty(t, second.Result().Cookies())
	sessions, _ := executed(interp)
	assert.Equal(t, []string{cookie.Value, cookie.Value}, sessions)
}

func TestInvalidSessionCookieIsReplaced(t *testing.T) {
	interp := okInterpreter("OK")
	srv, _ := newTestServer(t, interp)

	rec := postCommand(srv.Handler(), "house", &http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})

	cookie := sessionCookie(t, rec)
	assert.NotEqual(t, "not-a-uuid", cookie.Value)
	sessions, _ := executed(interp)
	assert.Equal(t, []string{cookie.Value}, sessions)
}

func TestIndex(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<form id="command"`)
	assert.Contains(t, body, `name="prompt"`)
	assert.Contains(t, body, "draw scene")
}

func TestIndexUnknownPath(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "recorder", body["display"])
}

func TestHealthDegraded(t *testing.T) {
	store := &storagemocks.FakeStateStore{}
	store.HealthReturns(errors.New("redis health check failed: dial tcp: connection refused"))
	cfg := config.DefaultConfig()
	srv := newServer(t, cfg, &domainmocks.FakeInterpreter{}, utils.NewRateLimiter(cfg.RateLimit), store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	assert.Contains(t, body["error"], "connection refused")
	assert.Equal(t, 1, store.HealthCallCount())
}

func TestHistoryStoreError(t *testing.T) {
	store := &storagemocks.FakeStateStore{}
	store.ListHistoryReturns(nil, errors.New("no such table"))
	cfg := config.DefaultConfig()
	srv := newServer(t, cfg, &domainmocks.FakeInterpreter{}, utils.NewRateLimiter(cfg.RateLimit), store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history?limit=5", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "ERROR: no such table", rec.Body.String())
	_, _, limit := store.ListHistoryArgsForCall(0)
	assert.Equal(t, 5, limit)
}

func TestHistory(t *testing.T) {
	srv, store := newTestServer(t, &domainmocks.FakeInterpreter{})
	sessionID := "7b0f9b7e-3c1a-4c55-9a53-0c8f4f2d8a11"
	ctx := context.Background()

	for _, p := range []string{"house", "tree"} {
		require.NoError(t, store.AppendHistory(ctx, domain.HistoryEntry{SessionID: sessionID, Prompt: p, Success: true}))
	}
	require.NoError(t, store.AppendHistory(ctx, domain.HistoryEntry{SessionID: "someone-else", Prompt: "sun"}))

	req := httptest.NewRequest(http.MethodGet, "/history?limit=1", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionID})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []domain.HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "tree", entries[0].Prompt)
}

func TestHistoryNewSession(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	sessionCookie(t, rec)
}

func TestHistoryInvalidLimit(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartStopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, &domainmocks.FakeInterpreter{}, func(c *config.Config) {
		c.Server.Port = 0
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
