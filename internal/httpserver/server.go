// internal/httpserver/server.go
//
// HTTP viewer for the Hall of Souls.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts,
//     JSON content type).
//   - Public endpoints: "/", "/health", "/souls" (leaderboard).
//   - Admin endpoints: POST /admin/token exchanges the operator
//     password for a short-lived JWT; POST /admin/purge (JWT-gated)
//     clears the hall.
//
// Notes:
//   - The viewer is read-only apart from purge; gameplay never goes
//     through HTTP.
//   - The operator password is configured as a bcrypt hash, never in
//     the clear. Admin endpoints stay disabled until the hash is set.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/haunted-chessboard/internal/souls"
)

// Server bundles the router, the souls store, and admin credentials.
type Server struct {
	r         *chi.Mux
	store     *souls.SQLiteStore
	jwtSecret string
	adminHash string // bcrypt hash of the operator password
}

// New constructs a Server, installs middleware, and registers routes.
func New(store *souls.SQLiteStore, jwtSecret, adminHash string) *Server {
	s := &Server{r: chi.NewRouter(), store: store, jwtSecret: jwtSecret, adminHash: adminHash}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hall-of-souls","endpoints":["/health","/souls","POST /admin/token","POST /admin/purge"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/souls", s.handleSouls)

	s.r.Post("/admin/token", s.handleToken)
	s.r.With(s.requireAuth()).Post("/admin/purge", s.handlePurge)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ souls --------------------------------------

// handleSouls returns the leaderboard. ?limit= caps the row count
// (default 20, max 100).
func (s *Server) handleSouls(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			limit = n
		}
	}
	top, err := s.store.Top(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(top)
}

// ------------------------------- admin -------------------------------------

type tokenReq struct {
	Password string `json:"password"`
}
type tokenRes struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// handleToken verifies the operator password against the configured
// bcrypt hash and issues a one-hour HS256 JWT.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.adminHash == "" {
		http.Error(w, `{"error":"admin_disabled"}`, http.StatusForbidden)
		return
	}
	var body tokenReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(body.Password)) != nil {
		http.Error(w, `{"error":"invalid_password"}`, http.StatusUnauthorized)
		return
	}

	exp := time.Now().Add(time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(tokenRes{Token: ss, ExpiresAt: exp.Unix()})
}

// handlePurge clears the hall. Gated by requireAuth.
func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.Purge(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("purge souls")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Int64("released", n).Msg("hall of souls purged")
	_ = json.NewEncoder(w).Encode(map[string]int64{"released": n})
}

// requireAuth enforces a valid admin JWT from the Authorization
// header ("Bearer <token>").
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(s.jwtSecret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			if role, _ := claims["role"].(string); role != "admin" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	a := r.Header.Get("Authorization")
	if len(a) > len(prefix) && a[:len(prefix)] == prefix {
		return a[len(prefix):]
	}
	return ""
}
