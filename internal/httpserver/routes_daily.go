// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
//   - POST /daily/new → start a session on today's letters (same for everyone)
//
// Submissions and reads use the regular /puzzle endpoints with the returned token.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterpuzzle/internal/daily"
	"github.com/robalobadob/letterpuzzle/internal/puzzle"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyNew generates today's puzzle as a fresh session for the caller.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	now := s.opts.Now()
	p, err := daily.Puzzle(s.opts.Dict, s.opts.Puzzle, now, s.opts.DailySalt, puzzle.WithReadyHook(logReady))
	if err != nil {
		log.Error().Err(err).Msg("daily puzzle")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	s.startSession(w, r, p, daily.DateKey(now))
}
