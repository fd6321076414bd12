package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/susround/internal/api"
	"github.com/mcoot/susround/internal/api/apierr"
	"github.com/mcoot/susround/internal/api/response"
	"github.com/mcoot/susround/internal/factory"
	"github.com/mcoot/susround/internal/model"
)

// testServer creates a test server with all dependencies
type testServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
	})

	return &testServer{
		t:       t,
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// session performs a request that must succeed and decodes the view
func (ts *testServer) session(method, path string, body any) response.Session {
	ts.t.Helper()
	rr := ts.request(method, path, body)
	require.Equal(ts.t, http.StatusOK, rr.Code, rr.Body.String())

	var s response.Session
	require.NoError(ts.t, json.Unmarshal(rr.Body.Bytes(), &s))
	return s
}

func (ts *testServer) createSession(code string) string {
	ts.t.Helper()
	ts.app.MockRandom.QueueString(code)
	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(ts.t, http.StatusCreated, rr.Code)
	return "/api/v1/sessions/" + code
}

func (ts *testServer) seat(base string, names ...string) {
	ts.t.Helper()
	for _, name := range names {
		ts.session(http.MethodPost, base+"/players", map[string]string{"name": name})
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateAndGetSession(t *testing.T) {
	ts := newTestServer(t)

	ts.app.MockRandom.QueueString("ABC123")
	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "ABC123", created.Code)
	assert.Equal(t, "lobby", created.Phase)
	assert.Equal(t, 1, created.ImpostorCount)
	assert.NotNil(t, created.Players)

	got := ts.session(http.MethodGet, "/api/v1/sessions/ABC123", nil)
	assert.Equal(t, created.Code, got.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/NOPE00", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeSessionNotFound, decodeError(t, rr).Code)
}

func TestListAndDeleteSessions(t *testing.T) {
	ts := newTestServer(t)
	ts.createSession("BBB222")
	ts.createSession("AAA111")

	rr := ts.request(http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.SessionList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{"AAA111", "BBB222"}, list.Sessions)

	rr = ts.request(http.MethodDelete, "/api/v1/sessions/AAA111", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/sessions/AAA111", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddPlayerValidation(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")
	ts.seat(base, "Alice")

	rr := ts.request(http.MethodPost, base+"/players", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeEmptyName, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, base+"/players", map[string]string{"name": "ALICE"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeDuplicateName, apiErr.Code)

	// The message is stored on the session for every viewer
	got := ts.session(http.MethodGet, base, nil)
	assert.Equal(t, apiErr.Message, got.Error)
	assert.Len(t, got.Players, 1)
}

func TestInvalidBodies(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")

	rr := ts.request(http.MethodPost, base+"/players", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPut, base+"/impostors", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, base+"/actions", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStartRoundNeedsFourPlayers(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")
	ts.seat(base, "Alice", "Bob", "Carol")

	rr := ts.request(http.MethodPost, base+"/round", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeInsufficientPlayers, decodeError(t, rr).Code)
}

func TestWrongPhaseAndUnknownAction(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")

	rr := ts.request(http.MethodPost, base+"/meeting", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeActionNotAllowed, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, base+"/actions", map[string]string{"type": "moonwalk"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownAction, decodeError(t, rr).Code)
}

func TestImpostorCountIsClamped(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")
	ts.seat(base, "A", "B", "C", "D", "E", "F")

	s := ts.session(http.MethodPut, base+"/impostors", map[string]int{"count": 5})
	assert.Equal(t, 2, s.ImpostorCount)
	assert.Equal(t, 2, s.MaxImpostors)

	s = ts.session(http.MethodPut, base+"/impostors", map[string]int{"count": 0})
	assert.Equal(t, 1, s.ImpostorCount)
}

func TestFullRoundFlow(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")
	ts.seat(base, "Alice", "Bob", "Carol", "Dave")

	// Alice is the impostor
	ts.app.QueueIdentityDeal(4)
	s := ts.session(http.MethodPost, base+"/round", nil)
	assert.Equal(t, "reveal", s.Phase)
	assert.Equal(t, 1, s.Round)
	require.NotNil(t, s.Reveal)
	assert.Equal(t, "Alice", s.Reveal.PlayerName)
	assert.False(t, s.Reveal.Shown)

	s = ts.session(http.MethodPost, base+"/reveal/toggle", nil)
	assert.True(t, s.Reveal.Shown)
	s = ts.session(http.MethodPost, base+"/reveal/advance", nil)
	assert.Equal(t, 1, s.Reveal.Index)
	assert.True(t, s.Players[0].CardSeen)

	s = ts.session(http.MethodPost, base+"/reveal/skip", nil)
	assert.Equal(t, "mission", s.Phase)
	assert.Nil(t, s.Reveal)

	// Bob completes a task
	bob := s.Players[1]
	require.NotEmpty(t, bob.Tasks)
	s = ts.session(http.MethodPost, fmt.Sprintf("%s/players/%s/tasks/%s", base, bob.ID, bob.Tasks[0].ID), nil)
	assert.True(t, s.Players[1].Tasks[0].Completed)

	s = ts.session(http.MethodPost, base+"/prompt", nil)
	assert.NotEmpty(t, s.Prompt)

	// Meeting with no suspect cannot eject
	s = ts.session(http.MethodPost, base+"/meeting", nil)
	assert.Equal(t, "meeting", s.Phase)

	rr := ts.request(http.MethodPost, base+"/meeting/eject", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNoSuspectSelected, decodeError(t, rr).Code)

	// Selecting and clearing
	s = ts.session(http.MethodPut, base+"/meeting/suspect", map[string]string{"player_id": "player-2"})
	require.NotNil(t, s.SuspectID)
	s = ts.session(http.MethodPut, base+"/meeting/suspect", nil)
	assert.Nil(t, s.SuspectID)

	// Eject Alice: the crew wins
	ts.session(http.MethodPut, base+"/meeting/suspect", map[string]string{"player_id": "player-1"})
	s = ts.session(http.MethodPost, base+"/meeting/eject", nil)
	assert.Equal(t, "ended", s.Phase)
	assert.Equal(t, "mission", s.StoredPhase)
	require.NotNil(t, s.Outcome)
	assert.Equal(t, string(model.TeamCrewmates), s.Outcome.Winner)
	assert.Equal(t, "eliminated", s.Players[0].Status)

	// Back to the lobby keeps the roster
	s = ts.session(http.MethodDelete, base+"/round", nil)
	assert.Equal(t, "lobby", s.Phase)
	assert.Len(t, s.Players, 4)
	assert.Nil(t, s.Outcome)

	// Full reset empties it
	s = ts.session(http.MethodPost, base+"/reset", nil)
	assert.Empty(t, s.Players)
	assert.Equal(t, 0, s.Round)
}

func TestGenericActionEndpoint(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")

	s := ts.session(http.MethodPost, base+"/actions", map[string]string{"type": "add_player", "name": "Alice"})
	require.Len(t, s.Players, 1)

	s = ts.session(http.MethodPost, base+"/actions", map[string]string{"type": "remove_player", "player_id": s.Players[0].ID})
	assert.Empty(t, s.Players)
}

func TestRemovePlayerAndToggleStatus(t *testing.T) {
	ts := newTestServer(t)
	base := ts.createSession("ABC123")
	ts.seat(base, "Alice", "Bob", "Carol", "Dave", "Erin")

	ts.app.QueueIdentityDeal(5)
	ts.session(http.MethodPost, base+"/round", nil)
	ts.session(http.MethodPost, base+"/reveal/skip", nil)

	s := ts.session(http.MethodPost, base+"/players/player-2/status", nil)
	assert.Equal(t, "eliminated", s.Players[1].Status)
	s = ts.session(http.MethodPost, base+"/players/player-2/status", nil)
	assert.Equal(t, "alive", s.Players[1].Status)

	s = ts.session(http.MethodDelete, base+"/players/player-5", nil)
	assert.Len(t, s.Players, 4)
	assert.Equal(t, "mission", s.Phase)
}

func TestServerServeAndShutdown(t *testing.T) {
	ts := newTestServer(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	srv := api.NewServer(ts.handler, api.DefaultServerConfig(), logger)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	require.NoError(t, <-done)
}
