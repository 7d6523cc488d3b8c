// Package docs generates a Markdown catalog of the atlas: brand and model
// pages from the specs index and one page per logo difficulty tier.
package docs

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas/internal/i18n"
	"github.com/autoatlas/autoatlas/pkg/assets"
	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// Source provides the data rendered into the catalog.
type Source interface {
	Index(ctx context.Context) (*specs.Index, error)
	TierGroups(ctx context.Context) (map[tiers.ID][]logos.Logo, error)
	TierCount() int
}

// Generator handles documentation generation.
type Generator struct {
	fs        afero.Fs
	outputDir string
	assets    assets.Config
	locale    i18n.Locale
	messages  *i18n.Catalog
	logger    *zerolog.Logger
}

// Option is a functional option for configuring the Generator.
type Option func(*Generator)

// WithOutputDir sets the output directory for generated documentation.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithFS sets the filesystem pages are written to.
func WithFS(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithAssets sets how logo URLs are formed.
func WithAssets(cfg assets.Config) Option {
	return func(g *Generator) {
		g.assets = cfg
	}
}

// WithLocale sets the language of tier labels.
func WithLocale(locale i18n.Locale) Option {
	return func(g *Generator) {
		g.locale = locale
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a new documentation generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		fs:        afero.NewOsFs(),
		outputDir: "./docs",
		assets:    assets.Config{Mode: assets.ModeLocal},
		locale:    i18n.DefaultLocale,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.messages == nil {
		g.messages = i18n.Default()
	}
	return g
}

// Result summarizes a generation run.
type Result struct {
	Pages  int
	Brands int
	Tiers  int
}

// Generate writes the catalog under <outputDir>/catalog.
func (g *Generator) Generate(ctx context.Context, src Source) (Result, error) {
	var res Result

	ix, err := src.Index(ctx)
	if err != nil {
		return res, errors.WrapResource("build", "index", "", err)
	}
	groups, err := src.TierGroups(ctx)
	if err != nil {
		return res, errors.WrapResource("build", "tiers", "", err)
	}

	catalogDir := filepath.Join(g.outputDir, "catalog")
	brandsDir := filepath.Join(catalogDir, "brands")
	tiersDir := filepath.Join(catalogDir, "tiers")
	for _, dir := range []string{catalogDir, brandsDir, tiersDir} {
		if err := g.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return res, errors.WrapIO("mkdir", dir, err)
		}
	}

	meta := g.tierMeta(src.TierCount())

	pages := []page{
		{filepath.Join(catalogDir, "_index.md"), func(m *Markdown) { g.renderCatalogIndex(m, ix, meta, groups) }},
		{filepath.Join(brandsDir, "_index.md"), func(m *Markdown) { g.renderBrandIndex(m, ix) }},
		{filepath.Join(tiersDir, "_index.md"), func(m *Markdown) { g.renderTierIndex(m, meta, groups) }},
	}
	for _, brand := range ix.Brands() {
		pages = append(pages, page{filepath.Join(brandsDir, brand.Key+".md"), func(m *Markdown) { g.renderBrand(m, brand) }})
		res.Brands++
	}
	for i, t := range meta {
		pages = append(pages, page{filepath.Join(tiersDir, string(t.ID)+".md"), func(m *Markdown) { g.renderTier(m, t, i+1, groups[t.ID]) }})
		res.Tiers++
	}

	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := g.writePage(p.path, p.render); err != nil {
			return res, err
		}
		res.Pages++
	}

	g.logger.Info().
		Str("dir", catalogDir).
		Int("pages", res.Pages).
		Int("brands", res.Brands).
		Int("tiers", res.Tiers).
		Msg("Generated catalog docs")
	return res, nil
}

type page struct {
	path   string
	render func(*Markdown)
}

func (g *Generator) tierMeta(count int) []tiers.Tier {
	all := tiers.Tiers()
	if count <= 0 || count > len(all) {
		count = len(all)
	}
	meta := make([]tiers.Tier, 0, count)
	for _, t := range all[:count] {
		meta = append(meta, g.messages.Tier(g.locale, t))
	}
	return meta
}

func (g *Generator) writePage(path string, render func(*Markdown)) error {
	var buf bytes.Buffer
	m := NewMarkdown(&buf)
	render(m)
	if err := m.Build(); err != nil {
		return errors.WrapIO("render", path, err)
	}
	if err := afero.WriteFile(g.fs, path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	g.logger.Debug().Str("path", path).Msg("Wrote page")
	return nil
}
