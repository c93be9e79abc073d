// internal/httpserver/server.go
//
// HTTP front-end for the letter puzzle.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Puzzle endpoints: POST /puzzle/new, POST /puzzle/submit, GET /puzzle/{id}.
//   - Daily puzzle: mounted under /daily (routes_daily.go).
//
// Notes:
//   - Creating a puzzle returns a signed token (HS256 JWT, claim "gid") that must be
//     presented as "Authorization: Bearer <token>" to play or read that puzzle.
//   - Sessions live in a store.Store; mutations go through Store.Update.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
	"github.com/robalobadob/letterpuzzle/internal/store"
	"github.com/robalobadob/letterpuzzle/internal/words"
)

const tokenTTL = 24 * time.Hour

// Options configures a Server.
type Options struct {
	Store        store.Store
	Dict         *words.Dictionary
	Puzzle       puzzle.Config
	Secret       string           // HMAC key for session tokens
	DailySalt    string           // seed salt for the daily puzzle
	ClientOrigin string           // allowed CORS origin
	Now          func() time.Time // clock; defaults to time.Now
}

// Server bundles router, session store and puzzle generator.
type Server struct {
	r     *chi.Mux
	store store.Store
	gen   *puzzle.Generator
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) (*Server, error) {
	if o.Dict == nil {
		return nil, errors.New("httpserver: nil dictionary")
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	gen, err := puzzle.NewGenerator(o.Dict, o.Puzzle, puzzle.WithReadyHook(logReady))
	if err != nil {
		return nil, err
	}
	s := &Server{r: chi.NewRouter(), store: o.Store, gen: gen, opts: o}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(o.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"letterpuzzle","endpoints":["/health","POST /puzzle/new","POST /puzzle/submit","GET /puzzle/{id}","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": o.Dict.Len()})
	})

	s.r.Post("/puzzle/new", s.handleNew)
	s.r.Post("/puzzle/submit", s.handleSubmit)
	s.r.Get("/puzzle/{id}", s.handleGet)

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	})
	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// logReady is the generator's ready hook.
func logReady(p *puzzle.Session) {
	log.Info().Str("gameId", p.ID()).Int("attempts", p.Attempts()).Bool("inRange", p.InRange()).Msg("puzzle ready")
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request with status and latency.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	log.Debug().
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("took", d).
		Msg("request")
})

// ------------------------------ PUZZLE -------------------------------------

// newRes is returned by POST /puzzle/new and POST /daily/new.
type newRes struct {
	GameID  string `json:"gameId"`
	Letters string `json:"letters"`
	Total   int    `json:"total"`
	Token   string `json:"token"`
	Date    string `json:"date,omitempty"`
}

// handleNew generates a puzzle, stores it and returns its token.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.startSession(w, r, s.gen.Generate(), "")
}

// startSession stores p and writes the newRes payload.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, p *puzzle.Session, date string) {
	if err := s.store.Save(r.Context(), p); err != nil {
		log.Error().Err(err).Msg("save puzzle")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, err := s.signToken(p.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newRes{
		GameID:  p.ID(),
		Letters: p.Letters(),
		Total:   len(p.Formable()),
		Token:   tok,
		Date:    date,
	})
}

// submitReq/Res payloads for POST /puzzle/submit.
type submitReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type submitRes struct {
	Accepted bool           `json:"accepted"`
	Outcome  puzzle.Outcome `json:"outcome"`
	Score    int            `json:"score"`
	Found    []string       `json:"found"`
}

// handleSubmit checks a word against the session's formable words.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if !s.authorized(r, req.GameID) {
		http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
		return
	}

	var res submitRes
	err := s.store.Update(r.Context(), req.GameID, func(p *puzzle.Session) error {
		res.Outcome = p.Submit(req.Word)
		res.Accepted = res.Outcome.Accepted()
		res.Score = p.Score()
		res.Found = p.Found()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", req.GameID).Msg("submit")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleGet returns a snapshot of the session.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.authorized(r, id) {
		http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
		return
	}
	snap, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// ------------------------------ tokens -------------------------------------

// signToken creates an HS256 JWT bound to one game ID.
func (s *Server) signToken(gameID string) (string, error) {
	now := s.opts.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})
	return t.SignedString([]byte(s.opts.Secret))
}

// authorized reports whether the request carries a valid token for gameID.
func (s *Server) authorized(r *http.Request, gameID string) bool {
	tok := bearer(r)
	if tok == "" || gameID == "" {
		return false
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.opts.Now))
	if err != nil || !t.Valid {
		return false
	}
	gid, _ := claims["gid"].(string)
	return gid == gameID
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
