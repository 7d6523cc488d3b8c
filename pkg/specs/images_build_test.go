package specs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/pkg/specs"
)

type fakeImages map[string][]string

func (f fakeImages) BrandImages(brand string) []string {
	return append([]string(nil), f[brand]...)
}

func TestBuildImageOnlySynthesis(t *testing.T) {
	dir := fakeImages{"Porsche": {
		"Porsche/porsche_911_carrera_ab12cd.jpg",
		"Porsche/porsche_cayenne.jpg",
		"Porsche/911_turbo.jpg",
	}}
	ix := build(t, []specs.RawRecord{
		modelRec("Porsche", "Porsche 911 Generations", "1964-present"),
		modelRec("Porsche", "Porsche Cayenne", "2002-present"),
		genRec("Porsche", "Porsche Cayenne E3 2018-present", "2018-present"),
	}, specs.WithImageDirectory(dir))

	m, ok := ix.Model("porsche", "911")
	require.True(t, ok)
	require.Len(t, m.Generations, 2)
	assert.Equal(t, "911 turbo", m.Generations[0].Name)
	assert.Equal(t, "Porsche/911_turbo.jpg", *m.Generations[0].Image.Local)
	assert.Equal(t, "porsche 911 carrera", m.Generations[1].Name)
	require.NotNil(t, m.RepresentativeImage)

	cayenne, ok := ix.Model("porsche", "cayenne")
	require.True(t, ok)
	require.Len(t, cayenne.Generations, 1)
	require.NotNil(t, cayenne.Generations[0].Image.Local)
	assert.Equal(t, "Porsche/porsche_cayenne.jpg", *cayenne.Generations[0].Image.Local)

	src, ok := specs.ImageSrc(cayenne.RepresentativeImage)
	assert.True(t, ok)
	assert.Equal(t, "/api/ultimatespecs/Porsche/porsche_cayenne.jpg", src)

	stats := ix.Stats()
	assert.Equal(t, 2, stats.ImageOnly)
	assert.Equal(t, 1, stats.FallbackImages)
}

func TestBuildImageOnlySynthesisCap(t *testing.T) {
	var files []string
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n"} {
		files = append(files, "Lotus/lotus_elise_"+suffix+".jpg")
	}
	ix := build(t, []specs.RawRecord{
		modelRec("Lotus", "Lotus Elise", ""),
	}, specs.WithImageDirectory(fakeImages{"Lotus": files}))

	m, ok := ix.Model("lotus", "elise")
	require.True(t, ok)
	assert.Len(t, m.Generations, 12)
}

func TestBuildWithoutImageDirectorySkipsImagePasses(t *testing.T) {
	ix := build(t, []specs.RawRecord{
		modelRec("Porsche", "Porsche 911", ""),
	})
	m, ok := ix.Model("porsche", "911")
	require.True(t, ok)
	assert.Empty(t, m.Generations)
	assert.Nil(t, m.RepresentativeImage)
}
