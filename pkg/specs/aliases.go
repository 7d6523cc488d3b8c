package specs

import (
	"sort"
	"strings"

	"github.com/autoatlas/autoatlas/internal/matcher"
)

// ModelAliases lists, per brand key and model key, normalized strings that
// identify a model's generations when the dataset names them by chassis code.
// A generation whose normalized name contains one of them scores an alias bonus.
var ModelAliases = map[string]map[string][]string{
	"bmw": {
		"1-series": {"e81", "e82", "e87", "e88", "f20", "f21", "f40"},
		"3-series": {"e21", "e30", "e36", "e46", "e90", "e91", "e92", "e93", "f30", "f31", "f34", "g20", "g21"},
		"5-series": {"e12", "e28", "e34", "e39", "e60", "e61", "f10", "f11", "g30", "g31", "g60"},
		"7-series": {"e23", "e32", "e38", "e65", "e66", "f01", "f02", "g11", "g12", "g70"},
		"x3":       {"e83", "f25", "g01", "g45"},
		"x5":       {"e53", "e70", "f15", "g05"},
		"z3":       {"e36-7", "e36-8"},
		"z4":       {"e85", "e86", "e89", "g29"},
	},
	"mercedes-benz": {
		"c-class": {"w202", "w203", "w204", "w205", "w206"},
		"e-class": {"w124", "w210", "w211", "w212", "w213", "w214"},
		"s-class": {"w140", "w220", "w221", "w222", "w223"},
		"g-class": {"w460", "w461", "w463", "w465"},
	},
	"porsche": {
		"911": {"901", "930", "964", "993", "996", "997", "991", "992"},
	},
	"volkswagen": {
		"golf": {"mk1", "mk2", "mk3", "mk4", "mk5", "mk6", "mk7", "mk8"},
	},
	"mazda": {
		"mx-5": {"miata"},
	},
	"toyota": {
		"gt86-gr86": {"gt86", "gr86"},
	},
}

// Override pulls generations into a model during the alias backfill pass.
// Patterns are globs over the generation's normalized base name.
type Override struct {
	// Name is used when the model has to be created because no Model row exists.
	Name     string
	Patterns []string
}

// GenerationOverrides configures the alias backfill pass per brand key and model key.
var GenerationOverrides = map[string]map[string]Override{
	"bmw": {
		"z3": {Name: "Z3", Patterns: []string{"z3", "z3-*", "e36-7*", "e36-8*"}},
		"z4": {Name: "Z4", Patterns: []string{"z4", "z4-*", "e85*", "e86*", "e89*", "g29*"}},
		"z8": {Name: "Z8", Patterns: []string{"z8", "z8-*", "e52*"}},
	},
	"mazda": {
		"mx-5": {Name: "MX-5", Patterns: []string{"mx-5*", "miata*", "mx-5-miata*"}},
	},
	"toyota": {
		"gt86-gr86": {Name: "GT86 / GR86", Patterns: []string{"gt86*", "gr86*", "86", "86-*"}},
	},
}

type compiledOverride struct {
	brandKey string
	modelKey string
	name     string
	patterns *matcher.MultiMatcher
}

// compileOverrides flattens an override table into a deterministic order.
func compileOverrides(table map[string]map[string]Override) []compiledOverride {
	var out []compiledOverride
	for brandKey, models := range table {
		for modelKey, o := range models {
			out = append(out, compiledOverride{
				brandKey: brandKey,
				modelKey: modelKey,
				name:     o.Name,
				patterns: matcher.MustNewMultiMatcher(o.Patterns, matcher.Glob),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].brandKey != out[j].brandKey {
			return out[i].brandKey < out[j].brandKey
		}
		return out[i].modelKey < out[j].modelKey
	})
	return out
}

// aliasHit reports whether a model alias appears in a normalized generation name.
func aliasHit(aliases map[string]map[string][]string, brandKey, modelKey, generationKey string) bool {
	for _, alias := range aliases[brandKey][modelKey] {
		if alias != "" && strings.Contains(generationKey, alias) {
			return true
		}
	}
	return false
}
