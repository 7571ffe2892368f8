// internal/httpserver/server.go
//
// Local JSON API around the solving engine, for a GUI running on the same
// machine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access log).
//   - Diagnostics: "/", "/health".
//   - Session endpoints under /session, daily sessions under /daily, the
//     feedback assistant under /assist.
//   - Mapping engine errors to JSON error bodies.
//
// Notes:
//   - CORS allows a single configured client origin.
//   - Sessions live only in the in-memory registry; each one is driven under
//     its own lock, so concurrent requests never interleave inside a session.
//   - Clients delete sessions they are done with; Run also evicts sessions
//     left idle longer than Options.IdleTimeout.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// Options configures the API server.
type Options struct {
	Dictionary   []string
	MaxAttempts  int
	Suggestions  int    // default limit for suggestion lists
	ClientOrigin string // allowed CORS origin
	DailySalt    string
	Seed         uint64           // 0 means time seeded sessions
	Now          func() time.Time // clock for the daily word and eviction; time.Now when nil
	IdleTimeout  time.Duration    // evict sessions unused this long; 0 keeps them
}

// Server bundles the router and the session registries.
type Server struct {
	r          *chi.Mux
	opts       Options
	sessions   store.Store[*game.Session]
	assistants store.Store[*game.Assistant]
	validate   *validator.Validate
	streams    atomic.Uint64
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Suggestions <= 0 {
		opts.Suggestions = 25
	}
	s := &Server{
		r:          chi.NewRouter(),
		opts:       opts,
		sessions:   store.NewMemoryStore[*game.Session](),
		assistants: store.NewMemoryStore[*game.Assistant](),
		validate:   validator.New(),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-solver",
			"endpoints": []string{"/health", "POST /session/new", "POST /session/guess", "DELETE /session/{id}", "POST /daily/new", "POST /assist/new", "DELETE /assist/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"words":      len(s.opts.Dictionary),
			"sessions":   s.sessions.Len(),
			"assistants": s.assistants.Len(),
		})
	})

	s.mountSessions(s.r)
	s.mountDaily(s.r)
	s.mountAssist(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	if s.opts.IdleTimeout > 0 {
		go s.evictLoop(ctx)
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// evictLoop sweeps idle sessions until ctx is cancelled.
func (s *Server) evictLoop(ctx context.Context) {
	t := time.NewTicker(s.opts.IdleTimeout / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.evictIdle()
		}
	}
}

// evictIdle drops sessions and assistants unused for IdleTimeout.
func (s *Server) evictIdle() {
	cutoff := s.opts.Now().Add(-s.opts.IdleTimeout)
	sessions := s.sessions.Prune(cutoff)
	assistants := s.assistants.Prune(cutoff)
	if sessions+assistants > 0 {
		log.Info().Int("sessions", sessions).Int("assistants", assistants).Msg("evicted idle sessions")
	}
}

// gameOptions builds engine options for a new session. With a fixed seed
// every session still gets its own stream.
func (s *Server) gameOptions(secret string, maxAttempts int) game.Options {
	if maxAttempts == 0 {
		maxAttempts = s.opts.MaxAttempts
	}
	opts := game.Options{MaxAttempts: maxAttempts, Secret: secret}
	if s.opts.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(s.opts.Seed, s.streams.Add(1)))
	}
	return opts
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ helpers ------------------------------------

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}

// writeEngineError maps engine and registry errors to HTTP responses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess", err.Error())
	case errors.Is(err, game.ErrInvalidSecret):
		writeError(w, http.StatusBadRequest, "invalid_secret", err.Error())
	case errors.Is(err, feedback.ErrMalformedFeedback):
		writeError(w, http.StatusBadRequest, "malformed_feedback", err.Error())
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled engine error")
		writeError(w, http.StatusInternalServerError, "internal", "")
	}
}

// decode reads an optional JSON body into v and validates it.
// An empty body leaves v at its zero value.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return false
	}
	return true
}
