// Package server provides the HTTP server for the autoatlas API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/autoatlas/autoatlas"
	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/i18n"
	"github.com/autoatlas/autoatlas/internal/server/cache"
	"github.com/autoatlas/autoatlas/internal/server/middleware"
	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app         application.Application
	client      autoatlas.Client
	cache       *cache.Cache
	messages    *i18n.Catalog
	rateLimiter *middleware.RateLimiter
	logger      *zerolog.Logger
	config      Config
	startTime   time.Time

	warm sync.WaitGroup
}

// New creates a new server instance with the given configuration.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.CacheTTL
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = constants.DefaultPathPrefix
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = constants.DefaultAuthHeader
	}

	client, err := app.Client()
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	if client == nil {
		return nil, &errors.ConfigError{Component: "server", Message: "application returned no client"}
	}

	messages, err := i18n.Load()
	if err != nil {
		return nil, errors.WrapResource("load", "messages", "", err)
	}

	s := &Server{
		app:       app,
		client:    client,
		cache:     cache.New(cfg.CacheTTL, constants.CacheCleanupInterval),
		messages:  messages,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
	if cfg.RateLimit > 0 {
		s.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, logger)
	}

	s.connectHooks()
	logger.Debug().Msg("Server instance created")
	return s, nil
}

// connectHooks logs index rebuilds and drops cached responses built from
// the previous index.
func (s *Server) connectHooks() {
	s.client.OnIndexBuilt(func(stats specs.Stats) {
		s.cache.Clear()
		s.logger.Debug().
			Int("brands", stats.Brands).
			Int("models", stats.Models).
			Msg("Index built, response cache cleared")
	})
	s.client.OnBrandAdded(func(b *specs.Brand) {
		s.logger.Info().Str("brand", b.Key).Msg("Brand added")
	})
	s.client.OnBrandRemoved(func(b *specs.Brand) {
		s.logger.Info().Str("brand", b.Key).Msg("Brand removed")
	})
	s.client.OnBrandUpdated(func(_, b *specs.Brand) {
		s.logger.Debug().Str("brand", b.Key).Int("models", len(b.Models)).Msg("Brand updated")
	})
}

// Start builds the index and logo tiers in the background so the first
// request does not pay for it.
func (s *Server) Start(ctx context.Context) {
	s.warm.Add(1)
	go func() {
		defer s.warm.Done()
		start := time.Now()
		if _, err := s.client.Index(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Index warmup failed")
			return
		}
		if _, err := s.client.TierGroups(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Tier warmup failed")
			return
		}
		s.logger.Info().Dur("duration", time.Since(start)).Msg("Warmup complete")
	}()
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// HTTPServer returns an http.Server for the configured address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// Shutdown stops background work, waiting for warmup until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	done := make(chan struct{})
	go func() {
		s.warm.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.logger.Warn().Msg("Background services shutdown timed out")
		return ctx.Err()
	}
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
