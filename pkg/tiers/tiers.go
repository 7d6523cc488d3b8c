// Package tiers assigns car logos to recognition difficulty tiers.
//
// Two assignments exist and they can disagree for a given logo:
//
//   - GroupByTier ranks a whole catalog by popularity score and splits it
//     into equal-size buckets, so every tier has about the same number of logos.
//   - TierID classifies a single logo by normalizing its absolute score
//     between fixed bounds.
//
// Callers use each independently; neither is derived from the other.
package tiers

import (
	"fmt"
	"strings"

	"github.com/autoatlas/autoatlas/pkg/constants"
)

// ID identifies a tier, e.g. "nivel-1".
type ID string

// Tier describes one difficulty level. Text fields are Spanish defaults;
// localized copies are looked up by i18n key.
type Tier struct {
	ID          ID     `json:"id" yaml:"id"`
	Level       int    `json:"level" yaml:"level"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Hint        string `json:"hint" yaml:"hint"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`
}

var all = []Tier{
	{ID: "nivel-1", Level: 1, Label: "Fundamentos globales", Description: "Las marcas más famosas y masivas del mundo.", Hint: "Aprendizaje ultra rápido.", Difficulty: "Muy fácil"},
	{ID: "nivel-2", Level: 2, Label: "Marcas globales", Description: "Fabricantes con alta presencia internacional.", Hint: "Consolida reconocimiento general.", Difficulty: "Fácil"},
	{ID: "nivel-3", Level: 3, Label: "Populares regionales", Description: "Muy vistas en mercados específicos.", Hint: "Amplía el mapa cultural.", Difficulty: "Media-baja"},
	{ID: "nivel-4", Level: 4, Label: "Premium y lujo", Description: "Lujo, deportivos y marcas aspiracionales.", Hint: "Refina detalles visuales.", Difficulty: "Media"},
	{ID: "nivel-5", Level: 5, Label: "Performance y nicho", Description: "Series limitadas y marcas de performance.", Hint: "Ideal para entusiastas.", Difficulty: "Media-alta"},
	{ID: "nivel-6", Level: 6, Label: "Comerciales e industriales", Description: "Camiones, buses y transporte pesado.", Hint: "Diferencia flotas y transporte.", Difficulty: "Difícil"},
	{ID: "nivel-7", Level: 7, Label: "Históricas y locales", Description: "Marcas antiguas o de nicho regional.", Hint: "Requiere investigación adicional.", Difficulty: "Muy difícil"},
	{ID: "nivel-8", Level: 8, Label: "Raras y extintas", Description: "Marcas poco documentadas o ya extintas.", Hint: "Nivel experto.", Difficulty: "Experta"},
}

// Tiers returns the tier metadata ordered from easiest to hardest.
func Tiers() []Tier {
	out := make([]Tier, len(all))
	copy(out, all)
	return out
}

// IDs returns the tier ids in order.
func IDs() []ID {
	ids := make([]ID, len(all))
	for i, t := range all {
		ids[i] = t.ID
	}
	return ids
}

// Meta returns a tier's metadata, falling back to the first tier.
func Meta(id ID) Tier {
	for _, t := range all {
		if t.ID == id {
			return t
		}
	}
	return all[0]
}

// ParseID accepts "nivel-3" or a bare level number such as "3".
func ParseID(s string) (ID, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range all {
		if string(t.ID) == s || fmt.Sprint(t.Level) == s {
			return t.ID, true
		}
	}
	return "", false
}

// clampCount keeps a requested tier count within the defined tiers.
func clampCount(n int) int {
	if n <= 0 || n > len(all) {
		return constants.DefaultTierCount
	}
	return n
}
