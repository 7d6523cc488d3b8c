// Package app provides the application context and dependency management
// for the autoatlas CLI. It centralizes configuration, logging, and the
// lazily created atlas client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas"
	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/serve"
	"github.com/autoatlas/autoatlas/pkg/assets"
	"github.com/autoatlas/autoatlas/pkg/errors"
)

// App represents the autoatlas application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	fs     afero.Fs
	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client autoatlas.Client
}

var (
	_ application.Application = (*App)(nil)
	_ serve.ListenDefaults    = (*App)(nil)
)

// New creates a new App with configuration loaded from the environment,
// .env files and the default config file locations.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig(app.fs, "")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Assets returns the asset URL configuration. An unknown ASSET_MODE is
// logged and treated as local.
func (a *App) Assets() assets.Config {
	cfg, err := a.config.Assets()
	if err != nil {
		a.logger.Warn().Err(err).Str("asset_mode", a.config.AssetMode).Msg("Unknown asset mode, using local")
	}
	return cfg
}

// ListenDefaults returns the HTTP listener settings from config and env.
func (a *App) ListenDefaults() (host string, port int, adminKey string) {
	return a.config.HTTPHost, a.config.HTTPPort, a.config.AdminKey
}

// Client returns the atlas client, creating it lazily if needed.
func (a *App) Client() (autoatlas.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := autoatlas.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	a.client = c
	return c, nil
}

// Shutdown releases cached data held by the client.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c != nil {
		c.Invalidate()
	}
	return nil
}

// reload re-reads configuration from configFile and rebuilds the logger.
// The client is dropped so the next call picks up the new settings.
func (a *App) reload(configFile string) error {
	config, err := LoadConfig(a.fs, configFile)
	if err != nil {
		return err
	}
	config.Verbose = a.config.Verbose
	config.Quiet = a.config.Quiet
	config.NoColor = a.config.NoColor
	config.Format = a.config.Format

	a.mu.Lock()
	a.config = config
	a.client = nil
	a.mu.Unlock()
	return nil
}

func (a *App) clientOptions() []autoatlas.Option {
	cfg := a.config
	opts := []autoatlas.Option{
		autoatlas.WithFS(a.fs),
		autoatlas.WithLogger(a.logger),
	}
	if cfg.DataRoot != "" {
		opts = append(opts, autoatlas.WithDataRoot(cfg.DataRoot))
	}
	if cfg.RecordsPath != "" {
		opts = append(opts, autoatlas.WithRecordsPath(cfg.RecordsPath))
	}
	if cfg.ImageRoot != "" {
		opts = append(opts, autoatlas.WithImageRoot(cfg.ImageRoot))
	}
	if cfg.LogoRoot != "" {
		opts = append(opts, autoatlas.WithLogoRoot(cfg.LogoRoot))
	}
	if cfg.TierCount > 0 {
		opts = append(opts, autoatlas.WithTierCount(cfg.TierCount))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFS sets the filesystem used for config and data (useful for testing).
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		if fs == nil {
			return errors.NewValidationError("fs", nil, "cannot be nil")
		}
		a.fs = fs
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c autoatlas.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
