package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/skillbridge/resume-analyzer/internal/analyzer"
	"github.com/skillbridge/resume-analyzer/internal/config"
	"github.com/skillbridge/resume-analyzer/internal/db"
	"github.com/skillbridge/resume-analyzer/internal/metrics"
	"github.com/skillbridge/resume-analyzer/internal/server/ratelimit"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

// HistoryStore is the persistence surface the handlers need. *db.DB
// implements it; tests substitute fakes.
type HistoryStore interface {
	SaveAnalysis(ctx context.Context, userIdentifier string, analysis, summary any, processingTimeMs float64) (int64, error)
	History(ctx context.Context, userIdentifier string, limit int) ([]types.HistoryRecord, error)
	Recent(ctx context.Context, userIdentifier string, limit int) ([]types.HistoryRecord, error)
	UserStats(ctx context.Context, userIdentifier string) (*types.UserStats, error)
}

// UserStore is the account surface the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       HistoryStore
	analyzer    *analyzer.Analyzer
	rateLimiter *ratelimit.Limiter
	metrics     *metrics.Metrics
	authHandler *AuthHandler

	maxUploadBytes int64
	historyLimit   int

	evictStop chan struct{}
}

// New creates a new server instance. JWT and password settings come from
// the environment, matching how the service deploys.
func New(cfg *config.Config, store HistoryStore, users UserStore, an *analyzer.Analyzer, m *metrics.Metrics) (*Server, error) {
	s := &Server{
		store:          store,
		analyzer:       an,
		metrics:        m,
		maxUploadBytes: cfg.MaxUploadBytes,
		historyLimit:   cfg.HistoryLimit,
		evictStop:      make(chan struct{}),
	}

	s.rateLimiter = ratelimit.NewLimiter(float64(cfg.RateLimitRPS), cfg.RateBurst)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	userService := NewUserService(users, passwordConfig)
	s.authHandler = NewAuthHandler(userService, NewJWTService(jwtConfig))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /skill-analysis", s.handleSkillAnalysis)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /user-stats", s.handleUserStats)
	mux.HandleFunc("POST /generate-session", s.handleGenerateSession)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", s.authHandler.HandleLogin)

	mux.Handle("GET /metrics", m.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.withMetrics(mux)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go s.evictLoop()

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	close(s.evictStop)
	log.Println("Server stopped")
	return nil
}

// evictLoop periodically drops idle rate-limit buckets.
func (s *Server) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.rateLimiter.Evict()
		case <-s.evictStop:
			return
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-Identifier")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients over their per-IP budget. The health and
// metrics endpoints stay unlimited so probes never starve.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		if !s.rateLimiter.Allow(clientID(r)) {
			w.Header().Set("Retry-After", "1")
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withMetrics counts requests by route and status.
func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.metrics.ObserveHTTPRequest(r.URL.Path, r.Method, strconv.Itoa(sw.status))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// clientID extracts the caller's address for rate limiting. Proxy headers
// win over the socket address.
func clientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
