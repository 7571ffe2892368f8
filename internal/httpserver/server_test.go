package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var dict = []string{
	"apple", "apply", "ample", "maple", "gassy", "grass", "sassy", "hello",
	"lolly", "llama", "eerie", "geese", "crane", "slate", "abbey", "kebab",
}

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestServer() *Server {
	return New(Options{
		Dictionary:   dict,
		MaxAttempts:  6,
		Suggestions:  5,
		ClientOrigin: "http://localhost:5173",
		DailySalt:    "test_salt",
		Seed:         42,
		Now:          func() time.Time { return fixedNow },
	})
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthAndCORS(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, len(dict), body["words"])

	rec = do(t, s, http.MethodOptions, "/session/new", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionFlow(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/session/new", map[string]any{"secret": "apple", "maxAttempts": 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[newSessionRes](t, rec)
	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, 5, created.WordLength)
	assert.Equal(t, 2, created.MaxAttempts)

	rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: created.SessionID, Guess: "crane"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	g := decodeBody[guessRes](t, rec)
	assert.Equal(t, "XXYXG", g.Feedback)
	assert.Equal(t, []string{"grey", "grey", "yellow", "grey", "green"}, g.Marks)
	assert.Equal(t, "in_progress", string(g.State))
	assert.Equal(t, 3, g.Remaining)
	assert.Empty(t, g.Answer)

	rec = do(t, s, http.MethodGet, "/session/"+created.SessionID+"/suggestions?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sug := decodeBody[suggestionsRes](t, rec)
	assert.Equal(t, 3, sug.Remaining)
	assert.Len(t, sug.Suggestions, 2)

	// already ruled out
	rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: created.SessionID, Guess: "slate"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_guess", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: created.SessionID, Guess: "maple"})
	require.Equal(t, http.StatusOK, rec.Code)
	g = decodeBody[guessRes](t, rec)
	assert.Equal(t, "lost", string(g.State))
	assert.Equal(t, "apple", g.Answer)

	rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: created.SessionID, Guess: "apple"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "game_over", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/session/"+created.SessionID+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "in_progress", string(decodeBody[resetRes](t, rec).State))
}

func TestSessionErrors(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/session/new", map[string]any{"secret": "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_secret", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/session/new", map[string]any{"maxAttempts": 99})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: "nope", Guess: "crane"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodGet, "/session/nope/suggestions?limit=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/session/guess", bytes.NewBufferString("{"))
	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_json", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDailyUsesDateWord(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[newSessionRes](t, rec)
	assert.Equal(t, "2025-06-01", created.Date)

	want := daily.Secret(fixedNow, "test_salt", dict)
	rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: created.SessionID, Guess: want})
	require.Equal(t, http.StatusOK, rec.Code)
	g := decodeBody[guessRes](t, rec)
	assert.Equal(t, "won", string(g.State))
	assert.Equal(t, want, g.Answer)
}

func TestAssistFlow(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/assist/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[newAssistRes](t, rec)
	assert.Equal(t, len(dict), created.Remaining)
	base := "/assist/" + created.AssistantID

	rec = do(t, s, http.MethodPost, base+"/observe", observeReq{Guess: "lolly", Feedback: "XYGGX"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decodeBody[assistRes](t, rec)
	assert.Equal(t, 1, res.Remaining)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "hello", res.Suggestions[0].Word)

	rec = do(t, s, http.MethodPost, base+"/observe", observeReq{Guess: "hello", Feedback: "GGQGG"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "malformed_feedback", decodeBody[errorRes](t, rec).Error)

	// contradicts the first observation: nothing is left, but it is not an error
	rec = do(t, s, http.MethodPost, base+"/observe", observeReq{Guess: "crane", Feedback: "GGGGX"})
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeBody[assistRes](t, rec)
	assert.True(t, res.Degraded)
	assert.Zero(t, res.Remaining)
	assert.NotNil(t, res.Suggestions)
	assert.Empty(t, res.Suggestions)

	rec = do(t, s, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeBody[assistRes](t, rec)
	assert.False(t, res.Degraded)
	assert.Equal(t, len(dict), res.Remaining)
	assert.Len(t, res.Suggestions, 5)

	rec = do(t, s, http.MethodGet, base+"/suggestions?limit=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[assistRes](t, rec).Suggestions, len(dict))
}

func TestDeleteRemovesSessions(t *testing.T) {
	s := newTestServer()

	for i := 0; i < 3; i++ {
		rec := do(t, s, http.MethodPost, "/session/new", map[string]any{"secret": "gassy"})
		require.Equal(t, http.StatusOK, rec.Code)
		id := decodeBody[newSessionRes](t, rec).SessionID

		rec = do(t, s, http.MethodPost, "/session/guess", guessReq{SessionID: id, Guess: "gassy"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "won", string(decodeBody[guessRes](t, rec).State))

		rec = do(t, s, http.MethodDelete, "/session/"+id, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Zero(t, s.sessions.Len())

	rec := do(t, s, http.MethodDelete, "/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody[errorRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/assist/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	id := decodeBody[newAssistRes](t, rec).AssistantID
	assert.Equal(t, 1, s.assistants.Len())

	rec = do(t, s, http.MethodDelete, "/assist/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, s.assistants.Len())

	rec = do(t, s, http.MethodGet, "/assist/"+id+"/suggestions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEvictIdleSessions(t *testing.T) {
	now := time.Now()
	s := New(Options{
		Dictionary:  dict,
		MaxAttempts: 6,
		Seed:        42,
		IdleTimeout: time.Minute,
		Now:         func() time.Time { return now },
	})

	rec := do(t, s, http.MethodPost, "/session/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, s, http.MethodPost, "/assist/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	s.evictIdle()
	assert.Equal(t, 1, s.sessions.Len())
	assert.Equal(t, 1, s.assistants.Len())

	now = now.Add(2 * time.Minute)
	s.evictIdle()
	assert.Zero(t, s.sessions.Len())
	assert.Zero(t, s.assistants.Len())
}
