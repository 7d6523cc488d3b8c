// Package autoatlas loads the car brand atlas: the specs index of brands,
// models and generations, and the logo catalog grouped into difficulty tiers.
//
// Everything is built lazily on first use and cached until Invalidate.
package autoatlas

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas/pkg/imagestore"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// Client gives access to the atlas data.
type Client interface {
	// Index returns the specs index, building it on first call
	Index(ctx context.Context) (*specs.Index, error)

	// Logos returns the logo catalog
	Logos(ctx context.Context) ([]logos.Logo, error)

	// TierGroups returns the logo catalog split into difficulty tiers
	TierGroups(ctx context.Context) (map[tiers.ID][]logos.Logo, error)

	// TierCount returns the configured number of tiers
	TierCount() int

	// Images returns the local image store
	Images() *imagestore.Store

	// FS returns the filesystem data is read from
	FS() afero.Fs

	// Invalidate drops cached data so the next call rebuilds it
	Invalidate()

	// OnBrandAdded registers a callback for brands added by a rebuild
	OnBrandAdded(BrandAddedHook)

	// OnBrandUpdated registers a callback for brands changed by a rebuild
	OnBrandUpdated(BrandUpdatedHook)

	// OnBrandRemoved registers a callback for brands removed by a rebuild
	OnBrandRemoved(BrandRemovedHook)

	// OnIndexBuilt registers a callback run after each index build
	OnIndexBuilt(IndexBuiltHook)
}

// client is the internal implementation of the Client interface
type client struct {
	*hooks

	config *config

	mu       sync.RWMutex
	images   *imagestore.Store
	index    *specs.Index
	previous *specs.Index
	logos    []logos.Logo
	groups   map[tiers.ID][]logos.Logo
}

// New creates a Client with the given options.
func New(opts ...Option) (Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	c := &client{
		hooks:  newHooks(),
		config: cfg,
	}
	c.images = c.newImageStore()
	return c, nil
}

func (c *client) newImageStore() *imagestore.Store {
	return imagestore.New(c.config.fs, c.config.resolvedImageRoot(), imagestore.WithLogger(c.config.logger))
}

func (c *client) context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, c.config.logger)
}

// Index returns the specs index.
func (c *client) Index(ctx context.Context) (*specs.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.index != nil {
		ix := c.index
		c.mu.RUnlock()
		return ix, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	// Double-check after acquiring write lock
	if c.index != nil {
		ix := c.index
		c.mu.Unlock()
		return ix, nil
	}

	ctx = logging.WithOperation(c.context(ctx), "build_index")
	records := specs.LoadRecords(ctx, c.config.fs, c.config.recordPaths()...)

	opts := []specs.Option{
		specs.WithImageDirectory(c.images),
		specs.WithLogger(logging.FromContext(ctx)),
	}
	if c.config.aliases != nil {
		opts = append(opts, specs.WithAliases(c.config.aliases))
	}
	if c.config.overrides != nil {
		opts = append(opts, specs.WithOverrides(c.config.overrides))
	}
	ix := specs.Build(records, opts...)

	previous := c.previous
	c.index = ix
	c.previous = nil
	c.mu.Unlock()

	stats := ix.Stats()
	logging.FromContext(ctx).Info().
		Int("brands", stats.Brands).
		Int("models", stats.Models).
		Int("generations", stats.Generations).
		Msg("Specs index ready")

	c.triggerIndexBuilt(previous, ix)
	return ix, nil
}

// Logos returns the logo catalog.
func (c *client) Logos(ctx context.Context) ([]logos.Logo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.logos != nil {
		all := c.logos
		c.mu.RUnlock()
		return all, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLogosLocked(ctx), nil
}

func (c *client) loadLogosLocked(ctx context.Context) []logos.Logo {
	if c.logos == nil {
		ctx = logging.WithOperation(c.context(ctx), "load_logos")
		c.logos = logos.Load(ctx, c.config.fs, c.config.resolvedLogoRoot())
	}
	return c.logos
}

// TierGroups returns the logos grouped by tier.
func (c *client) TierGroups(ctx context.Context) (map[tiers.ID][]logos.Logo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.groups != nil {
		groups := c.groups
		c.mu.RUnlock()
		return groups, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.groups == nil {
		c.groups = tiers.GroupByTier(c.loadLogosLocked(ctx), c.config.tierCount)
	}
	return c.groups, nil
}

func (c *client) TierCount() int {
	return c.config.tierCount
}

func (c *client) Images() *imagestore.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.images
}

func (c *client) FS() afero.Fs {
	return c.config.fs
}

// Invalidate drops every cached value. The next index build is diffed
// against the dropped one.
func (c *client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index != nil {
		c.previous = c.index
	}
	c.index = nil
	c.logos = nil
	c.groups = nil
	c.images = c.newImageStore()
	c.config.logger.Debug().Msg("Atlas cache invalidated")
}
