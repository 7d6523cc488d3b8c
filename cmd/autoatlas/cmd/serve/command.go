// Package serve provides the HTTP server command.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/emoji"
	"github.com/autoatlas/autoatlas/internal/server"
	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
)

// ListenDefaults is implemented by applications that carry listener
// settings from config files or the environment.
type ListenDefaults interface {
	ListenDefaults() (host string, port int, adminKey string)
}

// NewCommand creates the serve command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Aliases: []string{"server"},
		Short:   "Start the HTTP API server",
		Long: `Start the AutoAtlas HTTP API.

Features:
  - Brand, model and generation endpoints backed by the specs index
  - Logo explorer and difficulty tier endpoints with es/en labels
  - Logo and flag redirects honoring ASSET_MODE=cdn
  - Local image serving with long-lived cache headers
  - In-memory response caching, cleared on admin reload
  - Optional CORS, rate limiting and admin API key
  - Graceful shutdown`,
		Example: `  # Start on default port 8080
  autoatlas serve

  # Bind all interfaces with CORS for the quiz frontend
  autoatlas serve --host 0.0.0.0 --cors-origins https://quiz.example.com

  # Protect admin routes
  autoatlas serve --admin-key "$ADMIN_KEY"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseConfig(cmd, app)
			if err != nil {
				return err
			}
			return run(cmd.Context(), app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("port", constants.DefaultPort, "Server port (env HTTP_PORT)")
	flags.String("host", constants.DefaultHost, "Bind address (env HTTP_HOST)")
	flags.String("prefix", constants.DefaultPathPrefix, "API path prefix")
	flags.Bool("cors", false, "Enable CORS for all origins")
	flags.StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")
	flags.String("admin-key", "", "API key required by admin routes (env AUTOATLAS_ADMIN_KEY)")
	flags.String("auth-header", constants.DefaultAuthHeader, "Admin API key header name")
	flags.Int("rate-limit", constants.DefaultRateLimit, "Requests per minute per IP (0 to disable)")
	flags.Duration("cache-ttl", constants.CacheTTL, "Response cache TTL")
	flags.Int("compress-level", constants.DefaultCompressLevel, "Gzip level for JSON responses (0 to disable)")
	flags.Duration("read-timeout", constants.ReadTimeout, "HTTP read timeout")
	flags.Duration("write-timeout", constants.WriteTimeout, "HTTP write timeout")
	flags.Duration("idle-timeout", constants.IdleTimeout, "HTTP idle timeout")

	return cmd
}

// parseConfig builds the server configuration. Explicit flags win over
// config file and environment defaults.
func parseConfig(cmd *cobra.Command, app application.Application) (server.Config, error) {
	flags := cmd.Flags()
	cfg := server.DefaultConfig()

	cfg.Host, _ = flags.GetString("host")
	cfg.Port, _ = flags.GetInt("port")
	cfg.AdminKey, _ = flags.GetString("admin-key")
	if d, ok := app.(ListenDefaults); ok {
		host, port, adminKey := d.ListenDefaults()
		if !flags.Changed("host") && host != "" {
			cfg.Host = host
		}
		if !flags.Changed("port") && port != 0 {
			cfg.Port = port
		}
		if !flags.Changed("admin-key") && adminKey != "" {
			cfg.AdminKey = adminKey
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, errors.NewValidationError("port", cfg.Port, "must be between 1 and 65535")
	}

	cfg.PathPrefix, _ = flags.GetString("prefix")
	cfg.CORSEnabled, _ = flags.GetBool("cors")
	cfg.CORSOrigins, _ = flags.GetStringSlice("cors-origins")
	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}
	cfg.AuthHeader, _ = flags.GetString("auth-header")
	cfg.RateLimit, _ = flags.GetInt("rate-limit")
	cfg.CacheTTL, _ = flags.GetDuration("cache-ttl")
	cfg.CompressLevel, _ = flags.GetInt("compress-level")
	cfg.ReadTimeout, _ = flags.GetDuration("read-timeout")
	cfg.WriteTimeout, _ = flags.GetDuration("write-timeout")
	cfg.IdleTimeout, _ = flags.GetDuration("idle-timeout")
	return cfg, nil
}

func run(ctx context.Context, app application.Application, cfg server.Config) error {
	logger := app.Logger()
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Bool("admin_auth", cfg.AdminKey != "").
		Int("rate_limit", cfg.RateLimit).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.Start(ctx)

	return serveWithGracefulShutdown(ctx, srv.HTTPServer(), srv, logger)
}

// serveWithGracefulShutdown runs until the listener fails or ctx is
// cancelled, then drains connections within constants.ShutdownTimeout.
func serveWithGracefulShutdown(ctx context.Context, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		fmt.Printf("%s API server listening on %s\n", emoji.Rocket, httpServer.Addr)
		fmt.Println("   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")
		fmt.Printf("\n%s Shutting down API server...\n", emoji.Stop)

		// The parent context is already cancelled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		start := time.Now()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background work did not finish before shutdown")
		}

		logger.Info().Dur("took", time.Since(start)).Msg("Server stopped gracefully")
		fmt.Printf("%s Server stopped\n", emoji.Success)
		return nil
	}
}
