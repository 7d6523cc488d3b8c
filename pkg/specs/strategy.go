package specs

import (
	"strings"

	"github.com/autoatlas/autoatlas/pkg/constants"
)

// strategy resolves the model a generation row belongs to. A nil result
// passes the row on to the next strategy in the chain.
type strategy struct {
	name  string
	match func(b *builder, brand *Brand, rec RawRecord) *Model
}

// Strategy names, in evaluation order.
const (
	StrategyExact      = "exact"
	StrategySubstring  = "substring"
	StrategyTokenScore = "token-score"
	StrategySynthesize = "synthesize"
)

// matchChain is evaluated in order until a strategy returns a model.
// The last strategy always succeeds.
var matchChain = []strategy{
	{name: StrategyExact, match: matchExact},
	{name: StrategySubstring, match: matchSubstring},
	{name: StrategyTokenScore, match: matchTokenScore},
	{name: StrategySynthesize, match: synthesizeModel},
}

func matchExact(b *builder, brand *Brand, rec RawRecord) *Model {
	return b.models[modelID(brand.Key, modelKeyFromGenerationRecord(rec))]
}

// matchSubstring picks the model whose key is the longest substring of the
// generation's base key. Equal lengths keep the first registered model.
func matchSubstring(_ *builder, brand *Brand, rec RawRecord) *Model {
	fallback := generationBaseKey(rec)
	var best *Model
	for _, m := range brand.Models {
		if m.Key == "" || !strings.Contains(fallback, m.Key) {
			continue
		}
		if best == nil || len(m.Key) > len(best.Key) {
			best = m
		}
	}
	return best
}

func matchTokenScore(b *builder, brand *Brand, rec RawRecord) *Model {
	var best *Model
	bestScore := 0
	for _, m := range brand.Models {
		score := scoreWithAliases(b.cfg.aliases, m, rec)
		if best == nil || score > bestScore {
			best, bestScore = m, score
		}
	}
	if best == nil || bestScore < constants.MinTokenScore {
		return nil
	}
	return best
}

// synthesizeModel creates a generation-sourced model keyed by the row's base
// name, or reuses one created earlier for the same key.
func synthesizeModel(b *builder, brand *Brand, rec RawRecord) *Model {
	name := generationBaseName(rec)
	key := NormalizeKey(name)
	id := modelID(brand.Key, key)
	if existing, ok := b.models[id]; ok {
		return existing
	}
	m := &Model{
		ID:       id,
		Name:     name,
		Years:    rec.Years,
		Brand:    brand.Name,
		BrandKey: brand.Key,
		Key:      key,
		Source:   SourceGeneration,
	}
	b.register(brand, m)
	return m
}
