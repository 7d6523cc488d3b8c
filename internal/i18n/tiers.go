package i18n

import "github.com/autoatlas/autoatlas/pkg/tiers"

// Tier returns t with its text fields localized. Missing keys keep the
// built-in Spanish text.
func (c *Catalog) Tier(locale Locale, t tiers.Tier) tiers.Tier {
	prefix := "tiers." + string(t.ID) + "."
	t.Label = c.lookup(locale, prefix+"label", t.Label)
	t.Description = c.lookup(locale, prefix+"description", t.Description)
	t.Hint = c.lookup(locale, prefix+"hint", t.Hint)
	t.Difficulty = c.lookup(locale, prefix+"difficulty", t.Difficulty)
	return t
}

func (c *Catalog) lookup(locale Locale, key, fallback string) string {
	if msg, ok := c.messages[locale][key]; ok {
		return msg
	}
	return fallback
}
