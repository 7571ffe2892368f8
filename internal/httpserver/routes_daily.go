// internal/httpserver/routes_daily.go
//
// Daily word mode:
//   - POST /daily/new → start a session whose secret is today's word.
//
// The word is chosen deterministically from the date and the configured salt,
// so every client using the same dictionary and salt gets the same puzzle.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
)

type newDailyReq struct {
	MaxAttempts int `json:"maxAttempts" validate:"omitempty,min=1,max=26"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleNewDaily)
	})
}

func (s *Server) handleNewDaily(w http.ResponseWriter, r *http.Request) {
	var req newDailyReq
	if !s.decode(w, r, &req) {
		return
	}
	now := s.opts.Now()
	secret := daily.Secret(now, s.opts.DailySalt, s.opts.Dictionary)
	s.startSession(w, r, secret, req.MaxAttempts, daily.DateKey(now))
}
