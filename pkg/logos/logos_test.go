package logos_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/logos"
)

const datasetJSON = `[
  {"name":"BMW","slug":"bmw","image":{"localThumb":"./thumb/bmw.png","localOptimized":"optimized/bmw.png","localOriginal":"original\\bmw.png"}},
  {"name":"BMW M","slug":"bmw-m","image":{"localThumb":"thumb/bmw-m.png","localOptimized":"optimized/bmw-m.png","localOriginal":"original/bmw-m.png"}},
  {"name":"Nissan GT-R","slug":"nissan-gtr","image":{"localThumb":"thumb/x.png","localOptimized":"optimized/x.png","localOriginal":"original/x.png"}},
  {"name":"Scania","slug":"scania","image":{"localThumb":"thumb/scania.png","localOptimized":"optimized/scania.png","localOriginal":"original/scania.png"}}
]`

const localJSON = `[
  {"name":"Bmw Local","slug":"BMW","fileName":"bmw-local.svg"},
  {"name":"Zastava","slug":"zastava","fileName":"zastava.png"},
  {"name":"Ford Performance","slug":"ford-performance","fileName":"fp.png"}
]`

func writeFixtures(t *testing.T, fs afero.Fs, root string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, root+"/car-logos-dataset/logos/data.json", []byte(datasetJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, root+"/car-logos-dataset/local-logos/metadata.json", []byte(localJSON), 0o644))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFixtures(t, fs, "public")

	got := logos.Load(context.Background(), fs, "public")
	require.Len(t, got, 3)

	assert.Equal(t, "bmw", got[0].Slug)
	assert.False(t, got[0].IsLocal)
	assert.Equal(t, "/car-logos-dataset/logos/thumb/bmw.png", got[0].Images.Thumb)
	assert.Equal(t, "/car-logos-dataset/logos/optimized/bmw.png", got[0].Images.Optimized)
	assert.Equal(t, "/car-logos-dataset/logos/original/bmw.png", got[0].Images.Original)

	assert.Equal(t, "scania", got[1].Slug)

	assert.Equal(t, "zastava", got[2].Slug)
	assert.True(t, got[2].IsLocal)
	assert.Equal(t, "/car-logos-dataset/local-logos/zastava.png", got[2].Image(logos.SizeThumb))
}

func TestLoadMissingSources(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	got := logos.Load(ctx, afero.NewMemMapFs(), "public")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, tl.Contains("Logo dataset unavailable"))
	assert.True(t, tl.Contains("Local logos unavailable"))
}

func TestLoadMalformedSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "public/car-logos-dataset/logos/data.json", []byte(`{not json`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "public/car-logos-dataset/local-logos/metadata.json", []byte(localJSON), 0o644))

	got := logos.Load(context.Background(), fs, "public")
	require.Len(t, got, 2)
	assert.Equal(t, "BMW", got[0].Slug)
	assert.True(t, got[0].IsLocal)
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		slug, name string
		want       bool
	}{
		{"bmw", "BMW", false},
		{"bmw-m", "BMW M", true},
		{"audi-sport", "Audi Sport", true},
		{"mercedes-amg", "Mercedes-AMG", true},
		{"subaru-sti", "Subaru STI", true},
		{"honda-type-r", "Honda", false},
		{"type-r", "Type R", true},
		{"nissan-gtr", "Nissan GT-R", true},
		{"mg", "MG", false},
		{"ram", "RAM Trucks", false},
		{"dodge", "Dodge SRT", true},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, logos.Excluded(tt.slug, tt.name))
		})
	}
}

func TestDedupeAndFind(t *testing.T) {
	in := []logos.Logo{
		{Name: "First", Slug: "Tesla"},
		{Name: "Second", Slug: "tesla"},
		{Name: "Other", Slug: "kia"},
	}
	out := logos.Dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, "First", out[0].Name)

	l, ok := logos.Find(out, "TESLA")
	assert.True(t, ok)
	assert.Equal(t, "First", l.Name)

	_, ok = logos.Find(out, "lada")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	in := []logos.Logo{
		{Name: "Volvo", Slug: "volvo"},
		{Name: "alfa Romeo", Slug: "alfa-romeo"},
		{Name: "Volkswagen", Slug: "volkswagen"},
		{Name: "Lada", Slug: "lada"},
	}

	names := func(ls []logos.Logo) []string {
		var out []string
		for _, l := range ls {
			out = append(out, l.Name)
		}
		return out
	}

	assert.Equal(t, []string{"alfa Romeo", "Lada", "Volkswagen", "Volvo"}, names(logos.Filter(in, "", logos.SortNameAsc)))
	assert.Equal(t, []string{"Volvo", "Volkswagen", "Lada", "alfa Romeo"}, names(logos.Filter(in, "", logos.SortNameDesc)))
	assert.Equal(t, []string{"Volkswagen", "Volvo"}, names(logos.Filter(in, "VOL", logos.SortNameAsc)))
	assert.Equal(t, []string{"alfa Romeo"}, names(logos.Filter(in, "a-rom", logos.SortNameAsc)))
	assert.Empty(t, logos.Filter(in, "tesla", logos.SortNameAsc))

	assert.Equal(t, "Volvo", in[0].Name, "input must not be reordered")
}

func TestParseSortOrder(t *testing.T) {
	o, err := logos.ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, logos.SortNameAsc, o)

	o, err = logos.ParseSortOrder("NAME-DESC")
	require.NoError(t, err)
	assert.Equal(t, logos.SortNameDesc, o)

	_, err = logos.ParseSortOrder("score")
	assert.Error(t, err)
}
