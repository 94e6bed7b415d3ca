package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GoldenEgg_Go/internal/database"
	"github.com/osse101/GoldenEgg_Go/internal/game"
	"github.com/osse101/GoldenEgg_Go/internal/handler"
	"github.com/osse101/GoldenEgg_Go/internal/ledger"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
	"github.com/osse101/GoldenEgg_Go/internal/metrics"
)

// Options holds the HTTP-facing settings
type Options struct {
	Port               int
	AdminAPIKey        string
	CORSAllowedOrigins []string
	TrustedProxies     []string
}

type Server struct {
	httpServer    *http.Server
	dbPool        database.Pool
	gameService   game.Service
	ledgerService ledger.Service
}

// NewServer creates a new Server instance. dbPool and ledgerService are nil
// when the break ledger is disabled.
func NewServer(opts Options, dbPool database.Pool, gameService game.Service, ledgerService ledger.Service) *Server {
	s := &Server{
		dbPool:        dbPool,
		gameService:   gameService,
		ledgerService: ledgerService,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.routes(opts),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

func (s *Server) routes(opts Options) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSAllowedOrigins))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	jsonFallbacks(r)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(s.dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	gameHandler := handler.NewGameHandler(s.gameService)
	adminHandler := handler.NewAdminHandler(s.gameService)

	r.Route("/api", func(r chi.Router) {
		jsonFallbacks(r)
		r.Get("/game-state", gameHandler.HandleGetGameState)
		r.Get("/leaderboard", gameHandler.HandleGetLeaderboard)
		r.Post("/break-egg", gameHandler.HandleBreakEgg)
		r.Post("/claim-rewards", gameHandler.HandleClaimRewards)
		r.Post("/reset-game", gameHandler.HandleResetGame)
		r.Get("/links/{id}", gameHandler.HandleGetLink)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector))
			jsonFallbacks(r)

			r.Get("/eggs", adminHandler.HandleListEggs)
			r.Post("/eggs", adminHandler.HandleUpdateEgg)
			r.Post("/update-egg", adminHandler.HandleUpdateEgg)
			r.Post("/set-egg-broken", adminHandler.HandleSetEggBroken)
			r.Get("/links", adminHandler.HandleListLinks)
			r.Post("/links", adminHandler.HandleCreateLink)
			r.Post("/create-link", adminHandler.HandleCreateLink)
			r.Delete("/links/{id}", adminHandler.HandleDeleteLink)

			if s.ledgerService != nil {
				r.Get("/breaks", handler.NewLedgerHandler(s.ledgerService).HandleRecentBreaks)
			}
		})
	})

	return r
}

// jsonFallbacks answers unmatched paths and methods with an ErrorResponse.
// Subrouters built inside Route are mounted before their parent, so each
// one sets its own.
func jsonFallbacks(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.RespondError(w, http.StatusNotFound, ErrMsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handler.RespondError(w, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	})
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
