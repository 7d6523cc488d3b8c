package quiz_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/quiz"
	"github.com/autoatlas/autoatlas/pkg/specs"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

func logoPool(n int) []logos.Logo {
	out := make([]logos.Logo, 0, n)
	for i := range n {
		slug := fmt.Sprintf("brand-%d", i)
		out = append(out, logos.Logo{
			Name:   fmt.Sprintf("Brand %d", i),
			Slug:   slug,
			Images: logos.Images{Optimized: "optimized/" + slug + ".png"},
		})
	}
	return out
}

func model(key string, image *string) *specs.Model {
	m := &specs.Model{ID: "honda:" + key, Key: key, Name: "Model " + key, Source: specs.SourceModel}
	if image != nil {
		m.RepresentativeImage = &specs.Image{URL: image}
	}
	return m
}

func brand(imaged, bare int) *specs.Brand {
	b := &specs.Brand{Key: "honda", Name: "Honda"}
	for i := range imaged {
		img := fmt.Sprintf("https://cdn.example/%d.jpg", i)
		b.Models = append(b.Models, model(fmt.Sprintf("m%d", i), &img))
	}
	for i := range bare {
		b.Models = append(b.Models, model(fmt.Sprintf("bare%d", i), nil))
	}
	return b
}

func assertOptions(t *testing.T, deck quiz.Deck, want int) {
	t.Helper()
	for _, q := range deck.Questions {
		require.Len(t, q.Options, want, q.ID)
		assert.Contains(t, q.Options, q.Answer)

		seen := map[string]bool{}
		answers := 0
		for _, o := range q.Options {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
			if o == q.Answer {
				answers++
			}
		}
		assert.Equal(t, 1, answers, "answer appears once among options")
	}
}

func TestTierDeck(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		wantOptions int
	}{
		{"large tier", 12, quiz.MinChoices},
		{"exactly four", 4, quiz.MinChoices},
		{"small tier offers what it has", 3, 3},
		{"single logo", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := map[tiers.ID][]logos.Logo{"nivel-2": logoPool(tt.size)}
			deck, err := quiz.TierDeck(groups, "nivel-2", quiz.ModeMultiple, 7)
			require.NoError(t, err)

			assert.Equal(t, quiz.KindTier, deck.Kind)
			assert.Equal(t, "nivel-2", deck.Subject)
			assert.Equal(t, int64(7), deck.Seed)
			require.Len(t, deck.Questions, tt.size)
			assertOptions(t, deck, tt.wantOptions)

			ids := map[string]bool{}
			for _, q := range deck.Questions {
				ids[q.ID] = true
				assert.Equal(t, "optimized/"+q.ID+".png", q.Image)
			}
			assert.Len(t, ids, tt.size, "every logo asked once")
		})
	}
}

func TestTierDeckDuplicateNames(t *testing.T) {
	pool := logoPool(5)
	pool[1].Name = pool[0].Name
	deck, err := quiz.TierDeck(map[tiers.ID][]logos.Logo{"nivel-1": pool}, "nivel-1", quiz.ModeMultiple, 3)
	require.NoError(t, err)
	assertOptions(t, deck, quiz.MinChoices)
}

func TestTierDeckMissingTier(t *testing.T) {
	groups := map[tiers.ID][]logos.Logo{"nivel-1": logoPool(4), "nivel-2": {}}
	for _, id := range []tiers.ID{"nivel-2", "nivel-5"} {
		_, err := quiz.TierDeck(groups, id, quiz.ModeMultiple, 1)
		assert.True(t, errors.IsNotFound(err), id)
	}
}

func TestTypedDeckHasNoOptions(t *testing.T) {
	deck, err := quiz.TierDeck(map[tiers.ID][]logos.Logo{"nivel-1": logoPool(6)}, "nivel-1", quiz.ModeTyped, 5)
	require.NoError(t, err)
	assert.Equal(t, quiz.ModeTyped, deck.Mode)
	for _, q := range deck.Questions {
		assert.Empty(t, q.Options)
	}
}

func TestDeckDeterministicForSeed(t *testing.T) {
	groups := map[tiers.ID][]logos.Logo{"nivel-1": logoPool(20)}

	a, err := quiz.TierDeck(groups, "nivel-1", quiz.ModeMultiple, 42)
	require.NoError(t, err)
	b, err := quiz.TierDeck(groups, "nivel-1", quiz.ModeMultiple, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := quiz.TierDeck(groups, "nivel-1", quiz.ModeMultiple, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.Questions, c.Questions)

	m1, err := quiz.ModelDeck(brand(8, 0), quiz.ModeMultiple, 9)
	require.NoError(t, err)
	m2, err := quiz.ModelDeck(brand(8, 0), quiz.ModeMultiple, 9)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestModelDeck(t *testing.T) {
	tests := []struct {
		name    string
		imaged  int
		bare    int
		wantErr bool
	}{
		{"enough imaged models", 6, 2, false},
		{"exactly four", 4, 0, false},
		{"three imaged", 3, 5, true},
		{"no images", 0, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := quiz.ModelDeck(brand(tt.imaged, tt.bare), quiz.ModeMultiple, 11)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), "at least 4")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, quiz.KindModel, deck.Kind)
			assert.Equal(t, "honda", deck.Subject)
			require.Len(t, deck.Questions, tt.imaged)
			assertOptions(t, deck, quiz.MinChoices)
			for _, q := range deck.Questions {
				assert.NotEmpty(t, q.Image)
				assert.NotContains(t, q.ID, "bare")
			}
		})
	}
}

func TestQuestionCorrect(t *testing.T) {
	q := quiz.Question{Answer: "Mercedes-Benz"}
	tests := []struct {
		typed string
		want  bool
	}{
		{"Mercedes-Benz", true},
		{"  mercedes-benz ", true},
		{"MERCEDES-BENZ", true},
		{"Mercedes Benz", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Correct(tt.typed))
		})
	}
}

func TestDeckScore(t *testing.T) {
	deck := quiz.Deck{Questions: []quiz.Question{{Answer: "BMW"}, {Answer: "Lotus"}, {Answer: "Scania"}}}
	assert.Equal(t, 2, deck.Score([]string{"bmw", "Lotus "}))
	assert.Equal(t, 0, deck.Score(nil))
}

func TestParseSeed(t *testing.T) {
	seed, err := quiz.ParseSeed("1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), seed)

	seed, err = quiz.ParseSeed("")
	require.NoError(t, err)
	assert.NotZero(t, seed)

	_, err = quiz.ParseSeed("abc")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    quiz.Mode
		wantErr bool
	}{
		{"", quiz.ModeMultiple, false},
		{"multiple", quiz.ModeMultiple, false},
		{"Typed", quiz.ModeTyped, false},
		{"country", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := quiz.ParseMode(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
