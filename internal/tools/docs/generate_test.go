package docs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/internal/i18n"
	"github.com/autoatlas/autoatlas/pkg/assets"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

type fakeSource struct {
	ix     *specs.Index
	groups map[tiers.ID][]logos.Logo
	count  int
	err    error
}

func (f *fakeSource) Index(context.Context) (*specs.Index, error) { return f.ix, f.err }

func (f *fakeSource) TierGroups(context.Context) (map[tiers.ID][]logos.Logo, error) {
	return f.groups, nil
}

func (f *fakeSource) TierCount() int { return f.count }

func strPtr(s string) *string { return &s }

func testSource(t *testing.T) *fakeSource {
	t.Helper()
	records := []specs.RawRecord{
		{Category: specs.CategoryModel, URL: "https://example.com/lotus/elise.html", Brand: "Lotus", Name: "Lotus Elise", Years: "1996-2021"},
		{Category: specs.CategoryGeneration, URL: "https://example.com/lotus/elise-s2.html", Brand: "Lotus", Name: "Lotus Elise S2", Years: "2001-2011", LocalImage: strPtr("/x/ultimatespecs_images/Lotus/elise-s2.jpg")},
		{Category: specs.CategoryModel, URL: "https://example.com/lada/niva.html", Brand: "Lada", Name: "Lada Niva"},
	}
	ix := specs.Build(records)
	all := []logos.Logo{
		{Name: "Lotus", Slug: "lotus", Images: logos.Images{Thumb: "/car-logos-dataset/logos/thumb/lotus.png"}},
		{Name: "Lada", Slug: "lada", Images: logos.Images{Thumb: "/car-logos-dataset/logos/thumb/lada.png"}},
	}
	return &fakeSource{ix: ix, groups: tiers.GroupByTier(all, 2), count: 2}
}

func TestNewDefaults(t *testing.T) {
	gen := New()
	assert.Equal(t, "./docs", gen.outputDir)
	assert.Equal(t, i18n.DefaultLocale, gen.locale)
	assert.NotNil(t, gen.messages)

	gen = New(WithOutputDir("/out"), WithLocale(i18n.English))
	assert.Equal(t, "/out", gen.outputDir)
	assert.Equal(t, i18n.English, gen.locale)
}

func TestGenerateWritesCatalog(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := New(
		WithFS(fs),
		WithOutputDir("site"),
		WithLocale(i18n.English),
		WithAssets(assets.Config{Mode: assets.ModeCDN, BaseURL: "https://cdn.example.com"}),
		WithLogger(logging.NewNopLogger()),
	)

	res, err := gen.Generate(context.Background(), testSource(t))
	require.NoError(t, err)
	assert.Equal(t, Result{Pages: 3 + 2 + 2, Brands: 2, Tiers: 2}, res)

	for _, p := range []string{
		"catalog/_index.md",
		"catalog/brands/_index.md",
		"catalog/brands/lotus.md",
		"catalog/brands/lada.md",
		"catalog/tiers/_index.md",
		"catalog/tiers/nivel-1.md",
		"catalog/tiers/nivel-2.md",
	} {
		exists, err := afero.Exists(fs, filepath.Join("site", p))
		require.NoError(t, err)
		assert.True(t, exists, p)
	}

	index := readFile(t, fs, "site/catalog/_index.md")
	assert.Contains(t, index, `title: "Car Brand Atlas"`)
	assert.Contains(t, index, "[2 brands](brands/)")

	lotus := readFile(t, fs, "site/catalog/brands/lotus.md")
	assert.Contains(t, lotus, "## Elise")
	assert.Contains(t, lotus, "Lotus Elise S2")
	assert.Contains(t, lotus, "/api/ultimatespecs/Lotus/elise-s2.jpg")

	lada := readFile(t, fs, "site/catalog/brands/lada.md")
	assert.Contains(t, lada, "No generations recorded for this model.")

	tierIndex := readFile(t, fs, "site/catalog/tiers/_index.md")
	assert.Contains(t, tierIndex, "Global fundamentals")
	assert.Contains(t, tierIndex, "Level 2")

	tier1 := readFile(t, fs, "site/catalog/tiers/nivel-1.md")
	assert.Contains(t, tier1, "https://cdn.example.com/car-logos-dataset/logos/thumb/")
}

func TestGenerateSpanishLabels(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := New(WithFS(fs), WithOutputDir("out"), WithLogger(logging.NewNopLogger()))
	_, err := gen.Generate(context.Background(), testSource(t))
	require.NoError(t, err)
	assert.Contains(t, readFile(t, fs, "out/catalog/tiers/_index.md"), "Fundamentos globales")
}

func TestGenerateSourceError(t *testing.T) {
	gen := New(WithFS(afero.NewMemMapFs()), WithLogger(logging.NewNopLogger()))
	_, err := gen.Generate(context.Background(), &fakeSource{err: errors.ErrNotReady})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotReady)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := New(WithFS(afero.NewMemMapFs()), WithLogger(logging.NewNopLogger()))
	_, err := gen.Generate(ctx, testSource(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountText(t *testing.T) {
	assert.Equal(t, "1 model", countText(1, "model", "models"))
	assert.Equal(t, "3 models", countText(3, "model", "models"))
	assert.Equal(t, "-", imageCell("x", ""))
	assert.Equal(t, "-", orDash(""))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}
