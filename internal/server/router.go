package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/autoatlas/autoatlas/internal/server/handlers"
	"github.com/autoatlas/autoatlas/internal/server/middleware"
	"github.com/autoatlas/autoatlas/internal/server/response"
)

// setupRouter creates the chi router with middleware and routes.
func (s *Server) setupRouter() http.Handler {
	r := chi.NewRouter()
	s.applyMiddleware(r)

	h := handlers.New(
		s.client,
		s.app.Assets(),
		s.cache,
		s.messages,
		s.logger,
		s.app.Version(),
	)
	s.registerRoutes(r, h)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, req.Method)
	})
	return r
}

// applyMiddleware installs the middleware chain, outermost first.
func (s *Server) applyMiddleware(r chi.Router) {
	cfg := s.config

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Recovery(s.logger))

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
		} else {
			corsConfig.AllowAll = true
		}
		r.Use(middleware.CORS(corsConfig))
	}

	if s.rateLimiter != nil {
		r.Use(middleware.RateLimit(s.rateLimiter))
	}

	if cfg.CompressLevel > 0 {
		r.Use(chimiddleware.Compress(cfg.CompressLevel, "application/json"))
	}
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(r chi.Router, h *handlers.Handlers) {
	// Favicon handler (return 204 No Content to avoid 404 logs)
	r.Get("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/health", h.HandleHealth)

	r.Route(s.config.PathPrefix, func(r chi.Router) {
		r.Get("/health", h.HandleHealth)
		r.Get("/ready", h.HandleReady)

		r.Get("/brands", h.HandleListBrands)
		r.Get("/brands/resolve", h.HandleResolveBrand)
		r.Get("/brands/{brand}", h.HandleGetBrand)
		r.Get("/brands/{brand}/models/{model}", h.HandleGetModel)
		r.Get("/brands/{brand}/quiz", h.HandleBrandQuiz)

		r.Get("/logos", h.HandleListLogos)
		r.Get("/logos/{slug}/tier", h.HandleLogoTier)

		r.Get("/tiers", h.HandleListTiers)
		r.Get("/tiers/{tier}", h.HandleGetTier)
		r.Get("/tiers/{tier}/quiz", h.HandleTierQuiz)

		r.Route("/admin", func(r chi.Router) {
			authConfig := middleware.DefaultAuthConfig()
			authConfig.APIKey = s.config.AdminKey
			authConfig.HeaderName = s.config.AuthHeader
			r.Use(middleware.Auth(authConfig, s.logger))

			r.Post("/reload", h.HandleReload)
			r.Get("/stats", h.HandleStats)
		})
	})

	r.Get("/api/logo/*", h.HandleLogoRedirect)
	r.Get("/api/flags/{code}", h.HandleFlagRedirect)
	r.Get("/api/ultimatespecs/*", h.HandleImage)
}
