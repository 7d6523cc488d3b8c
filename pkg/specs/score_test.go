package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreModelForGeneration(t *testing.T) {
	tests := []struct {
		name  string
		model *Model
		rec   RawRecord
		want  int
	}{
		{
			name:  "slug and base key equal",
			model: &Model{Name: "X5", Key: "x5", BrandKey: "bmw"},
			rec:   RawRecord{Brand: "BMW", Name: "BMW X5"},
			// slug 100, base 90, shared x5 10, subset 30, key containment 15, name containment 10
			want: 255,
		},
		{
			name:  "token overlap with subset",
			model: &Model{Name: "Golf Variant", Key: "golf-variant", BrandKey: "volkswagen"},
			rec:   RawRecord{Brand: "Volkswagen", Name: "Volkswagen Variant Golf Mk7"},
			// shared golf, variant 20, subset 30
			want: 50,
		},
		{
			name:  "shared numeric token",
			model: &Model{Name: "911", Key: "911", BrandKey: "acme"},
			rec:   RawRecord{Brand: "Acme", Name: "Acme 911 Turbo"},
			// shared 911 10, numeric 20, subset 30, key containment 15, name containment 10
			want: 85,
		},
		{
			name:  "alias only",
			model: &Model{Name: "Golf", Key: "golf", BrandKey: "volkswagen"},
			rec:   RawRecord{Brand: "Volkswagen", Name: "Volkswagen Mk7 Hatchback"},
			want:  35,
		},
		{
			name:  "unrelated",
			model: &Model{Name: "Polo", Key: "polo", BrandKey: "volkswagen"},
			rec:   RawRecord{Brand: "Volkswagen", Name: "Volkswagen Touareg"},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreModelForGeneration(tt.model, tt.rec))
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	m := &Model{Name: "Z3", Key: "z3", BrandKey: "bmw"}
	rec := RawRecord{Brand: "BMW", Name: "BMW Z3 Roadster (E36/7)"}
	first := ScoreModelForGeneration(m, rec)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ScoreModelForGeneration(m, rec))
	}
}

func TestScoreFileForModel(t *testing.T) {
	brandTokens := newTokenSet("porsche")
	m := &Model{Name: "911", Key: "911"}

	// shared 911 10, numeric 20, subset 30, key containment 15
	assert.Equal(t, 75, scoreFileForModel(m, brandTokens, "Porsche/porsche_911_carrera_ab12cd.jpg"))
	assert.Equal(t, 0, scoreFileForModel(m, brandTokens, "Porsche/porsche_cayenne.jpg"))
	assert.Equal(t, 0, scoreFileForModel(m, brandTokens, "Porsche/porsche.jpg"))

	// generation tokens add on top of the model score
	assert.Equal(t, 85, scoreFileForModel(m, brandTokens, "Porsche/911_turbo.jpg", "porsche-911-turbo-s"))
}
