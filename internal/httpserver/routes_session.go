// internal/httpserver/routes_session.go
//
// Session endpoints:
//   - POST /session/new               → start a session (random or fixed secret)
//   - POST /session/guess             → submit a guess
//   - GET  /session/{id}/suggestions  → ranked candidates (?limit=N)
//   - POST /session/{id}/reset        → start over in the same session
//   - DELETE /session/{id}            → drop the session

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
)

type newSessionReq struct {
	Secret      string `json:"secret" validate:"omitempty,len=5,alpha"`
	MaxAttempts int    `json:"maxAttempts" validate:"omitempty,min=1,max=26"`
}

type newSessionRes struct {
	SessionID   string `json:"sessionId"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
	Date        string `json:"date,omitempty"`
}

type guessReq struct {
	SessionID string `json:"sessionId" validate:"required"`
	Guess     string `json:"guess" validate:"required"`
}

type guessRes struct {
	Feedback  string     `json:"feedback"` // e.g. "XYGGX"
	Marks     []string   `json:"marks"`    // "green" | "yellow" | "grey"
	State     game.State `json:"state"`
	Attempts  int        `json:"attempts"`
	Remaining int        `json:"remaining"`
	Answer    string     `json:"answer,omitempty"` // only once the session is over
}

type suggestionsRes struct {
	Remaining   int                  `json:"remaining"`
	Suggestions []ranking.Suggestion `json:"suggestions"`
}

type resetReq struct {
	Secret string `json:"secret" validate:"omitempty,len=5,alpha"`
}

type resetRes struct {
	SessionID string     `json:"sessionId"`
	State     game.State `json:"state"`
}

// mountSessions registers all /session routes.
func (s *Server) mountSessions(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}/suggestions", s.handleSuggestions)
		r.Post("/{id}/reset", s.handleReset)
		r.Delete("/{id}", s.handleDeleteSession)
	})
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if !s.decode(w, r, &req) {
		return
	}
	s.startSession(w, r, req.Secret, req.MaxAttempts, "")
}

// startSession creates and registers a session, then writes newSessionRes.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, secret string, maxAttempts int, date string) {
	sess, err := game.New(s.opts.Dictionary, s.gameOptions(secret, maxAttempts))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.sessions.Save(r.Context(), sess.ID(), sess); err != nil {
		writeEngineError(w, err)
		return
	}
	log.Info().Str("session", sess.ID()).Int("maxAttempts", sess.MaxAttempts()).Msg("session started")
	writeJSON(w, http.StatusOK, newSessionRes{
		SessionID:   sess.ID(),
		WordLength:  feedback.WordLength,
		MaxAttempts: sess.MaxAttempts(),
		Date:        date,
	})
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !s.decode(w, r, &req) {
		return
	}
	var res guessRes
	err := s.sessions.With(r.Context(), req.SessionID, func(sess *game.Session) error {
		out, err := sess.SubmitGuess(req.Guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Feedback:  out.Feedback.String(),
			Marks:     marks(out.Feedback),
			State:     out.State,
			Attempts:  out.Attempts,
			Remaining: out.Remaining,
		}
		res.Answer, _ = sess.Answer()
		return nil
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limit(w, r)
	if !ok {
		return
	}
	var res suggestionsRes
	err := s.sessions.With(r.Context(), chi.URLParam(r, "id"), func(sess *game.Session) error {
		res = suggestionsRes{Remaining: sess.Remaining(), Suggestions: sess.Suggestions(limit)}
		return nil
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if !s.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	var res resetRes
	err := s.sessions.With(r.Context(), id, func(sess *game.Session) error {
		if err := sess.Reset(req.Secret); err != nil {
			return err
		}
		res = resetRes{SessionID: id, State: sess.State()}
		return nil
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		writeEngineError(w, err)
		return
	}
	log.Info().Str("session", id).Msg("session deleted")
	w.WriteHeader(http.StatusNoContent)
}

// limit parses ?limit=N, falling back to the configured default.
func (s *Server) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.opts.Suggestions, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func marks(v feedback.Vector) []string {
	out := make([]string, len(v))
	for i, st := range v {
		out[i] = st.Kind.String()
	}
	return out
}
