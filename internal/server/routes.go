package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/stocksense/stocksense/internal/handler"
	"github.com/stocksense/stocksense/internal/llm"
	"github.com/stocksense/stocksense/internal/middleware"
	"github.com/stocksense/stocksense/internal/pipeline"
	"github.com/stocksense/stocksense/internal/security"
	"github.com/stocksense/stocksense/internal/store"
)

func (s *Server) setupRoutes() http.Handler {
	cfg := s.cfg

	// ─── Store ──────────────────────────────────────────────────────────────────
	open := store.MySQLOpener(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	executor := store.NewExecutor(open)
	statsSvc := store.NewStatsService(open)

	// ─── Language model ─────────────────────────────────────────────────────────
	if cfg.AnthropicAPIKey == "" {
		log.Warn().Msg("ANTHROPIC_API_KEY not set - model calls will fail and answers will degrade")
	}
	gen := llm.NewClient(cfg.AnthropicAPIKey, cfg.Model, cfg.AnthropicBaseURL)

	// ─── Pipeline ───────────────────────────────────────────────────────────────
	pipe := pipeline.New(gen, executor, cfg.PreviewRows)
	auditor := security.NewAuditor(cfg.EnableAuditLogging)

	log.Info().
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Bool("audit_logging", cfg.EnableAuditLogging).
		Str("db_host", cfg.DBHost).
		Str("db_name", cfg.DBName).
		Msg("service configuration")

	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("auth enabled but no API keys configured - API auth disabled")
	}

	// ─── Handlers ───────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(open)
	askH := handler.NewAskHandler(pipe, auditor, cfg.MaxQuestionLength)
	statsH := handler.NewStatsHandler(statsSvc)

	// ─── Router ─────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
		if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
			r.Use(middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
		}

		r.Route(cfg.APIPrefix, func(r chi.Router) {
			r.Post("/ask", askH.Ask)
			r.Get("/stats", statsH.Stats)
		})
	})

	return r
}
