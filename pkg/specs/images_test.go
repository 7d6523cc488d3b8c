package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeLocalImagePath(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil", nil, nil},
		{"empty", strPtr(""), nil},
		{"root token", strPtr("/data/ultimatespecs_images/BMW/z3.jpg"), strPtr("BMW/z3.jpg")},
		{"root token case insensitive", strPtr(`C:\scrape\UltimateSpecs_Images\BMW\z3 coupe.jpg`), strPtr("BMW/z3 coupe.jpg")},
		{"no token keeps last two", strPtr("/srv/images/BMW/z3.jpg"), strPtr("BMW/z3.jpg")},
		{"single segment", strPtr("z3.jpg"), strPtr("z3.jpg")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeLocalImagePath(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestImageSrc(t *testing.T) {
	src, ok := ImageSrc(&Image{Local: strPtr("BMW/z3 coupe.jpg"), URL: strPtr("https://cdn.example/z3.jpg")})
	assert.True(t, ok)
	assert.Equal(t, "/api/ultimatespecs/BMW/z3%20coupe.jpg", src)

	src, ok = ImageSrc(&Image{URL: strPtr("https://cdn.example/z3.jpg")})
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/z3.jpg", src)

	_, ok = ImageSrc(&Image{})
	assert.False(t, ok)

	_, ok = ImageSrc(nil)
	assert.False(t, ok)
}

func TestHumanizeFilename(t *testing.T) {
	assert.Equal(t, "bmw z3 coupe", humanizeFilename("BMW/bmw_z3_coupe_3fa9c1d2.jpg"))
	assert.Equal(t, "bmw z3 coupe", humanizeFilename("bmw_z3_coupe.webp"))
	assert.Equal(t, "porsche 911", humanizeFilename("porsche_911.png"))
	assert.Equal(t, "golf-gti", humanizeFilename("golf-gti-a1b2c3.jpg"))
	assert.Equal(t, "facade", humanizeFilename("facade.jpg"))
	assert.Equal(t, "bmw z4", humanizeFilename("bmw_z4_3fa9c1d2_0b7e44aa.jpg"))
	assert.Equal(t, "audi tt", humanizeFilename("audi-tt-a1b2c3-d4e5f6.png"))
}
