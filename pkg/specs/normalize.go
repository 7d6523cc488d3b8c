package specs

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeKey turns a display name into a lowercase-dash slug.
// Diacritics are removed after canonical decomposition so "Citroën" becomes "citroen".
func NormalizeKey(value string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), value)
	if err != nil {
		stripped = value
	}
	key := nonAlnumRun.ReplaceAllString(strings.ToLower(stripped), "-")
	return strings.Trim(key, "-")
}

// tokens splits a normalized key on dashes.
func tokens(key string) []string {
	if key == "" {
		return nil
	}
	return strings.FieldsFunc(key, func(r rune) bool { return r == '-' })
}

type tokenSet map[string]struct{}

func newTokenSet(keys ...string) tokenSet {
	set := make(tokenSet)
	for _, key := range keys {
		for _, tok := range tokens(key) {
			set[tok] = struct{}{}
		}
	}
	return set
}

func (s tokenSet) shared(other tokenSet) []string {
	var out []string
	for tok := range s {
		if _, ok := other[tok]; ok {
			out = append(out, tok)
		}
	}
	return out
}

// subsetOf reports whether s is non-empty and fully contained in other.
func (s tokenSet) subsetOf(other tokenSet) bool {
	if len(s) == 0 {
		return false
	}
	for tok := range s {
		if _, ok := other[tok]; !ok {
			return false
		}
	}
	return true
}

func (s tokenSet) without(other tokenSet) tokenSet {
	out := make(tokenSet, len(s))
	for tok := range s {
		if _, ok := other[tok]; !ok {
			out[tok] = struct{}{}
		}
	}
	return out
}

func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func anyNumeric(toks []string) bool {
	for _, tok := range toks {
		if isNumeric(tok) {
			return true
		}
	}
	return false
}

// stripBrandPrefix removes a leading, case-insensitive repeat of the brand name.
func stripBrandPrefix(name, brand string) string {
	if brand != "" && len(name) >= len(brand) && strings.EqualFold(name[:len(brand)], brand) {
		return strings.TrimSpace(name[len(brand):])
	}
	return name
}
