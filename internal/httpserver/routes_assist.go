// internal/httpserver/routes_assist.go
//
// Assistant endpoints, for feedback read off another board:
//   - POST /assist/new                → start an assistant
//   - POST /assist/{id}/observe       → report a guess and its GYX feedback
//   - GET  /assist/{id}/suggestions   → ranked candidates (?limit=N)
//   - POST /assist/{id}/reset         → forget every observation
//   - DELETE /assist/{id}             → drop the assistant
//
// Feedback that rules out every word is not an HTTP error: the response
// reports degraded=true and an empty suggestion list.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
)

type newAssistRes struct {
	AssistantID string `json:"assistantId"`
	Remaining   int    `json:"remaining"`
}

type observeReq struct {
	Guess    string `json:"guess" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
}

type assistRes struct {
	Remaining   int                  `json:"remaining"`
	Solved      bool                 `json:"solved"`
	Degraded    bool                 `json:"degraded"`
	Suggestions []ranking.Suggestion `json:"suggestions"`
}

// mountAssist registers all /assist routes.
func (s *Server) mountAssist(r chi.Router) {
	r.Route("/assist", func(r chi.Router) {
		r.Post("/new", s.handleNewAssist)
		r.Post("/{id}/observe", s.handleObserve)
		r.Get("/{id}/suggestions", s.handleAssistSuggestions)
		r.Post("/{id}/reset", s.handleAssistReset)
		r.Delete("/{id}", s.handleDeleteAssist)
	})
}

func (s *Server) handleNewAssist(w http.ResponseWriter, r *http.Request) {
	a, err := game.NewAssistant(s.opts.Dictionary, s.gameOptions("", 0))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.assistants.Save(r.Context(), a.ID(), a); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAssistRes{AssistantID: a.ID(), Remaining: a.Remaining()})
}

func (s *Server) handleObserve(w http.ResponseWriter, r *http.Request) {
	var req observeReq
	if !s.decode(w, r, &req) {
		return
	}
	s.withAssistant(w, r, s.opts.Suggestions, func(a *game.Assistant) error {
		if err := a.Observe(req.Guess, req.Feedback); err != nil && !game.IsDegraded(err) {
			return err
		}
		return nil
	})
}

func (s *Server) handleAssistSuggestions(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limit(w, r)
	if !ok {
		return
	}
	s.withAssistant(w, r, limit, func(*game.Assistant) error { return nil })
}

func (s *Server) handleAssistReset(w http.ResponseWriter, r *http.Request) {
	s.withAssistant(w, r, s.opts.Suggestions, func(a *game.Assistant) error {
		a.Reset()
		return nil
	})
}

func (s *Server) handleDeleteAssist(w http.ResponseWriter, r *http.Request) {
	if err := s.assistants.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// withAssistant runs fn on the assistant named in the URL and answers with
// its state afterwards.
func (s *Server) withAssistant(w http.ResponseWriter, r *http.Request, limit int, fn func(*game.Assistant) error) {
	var res assistRes
	err := s.assistants.With(r.Context(), chi.URLParam(r, "id"), func(a *game.Assistant) error {
		if err := fn(a); err != nil {
			return err
		}
		res = assistRes{
			Remaining:   a.Remaining(),
			Solved:      a.Solved(),
			Degraded:    a.Degraded(),
			Suggestions: a.Suggestions(limit),
		}
		return nil
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if res.Suggestions == nil {
		res.Suggestions = []ranking.Suggestion{}
	}
	writeJSON(w, http.StatusOK, res)
}
