package logos

import "strings"

// excludedSlugs are sub-brand logos that duplicate a manufacturer.
var excludedSlugs = map[string]bool{
	"audi-sport":         true,
	"bmw-m":              true,
	"chevrolet-corvette": true,
	"ford-mustang":       true,
	"mercedes-amg":       true,
	"nissan-gt-r":        true,
}

// modelSegmentKeywords mark logos of model lines or performance divisions.
var modelSegmentKeywords = map[string]bool{
	"amg":         true,
	"m":           true,
	"rs":          true,
	"gt":          true,
	"gtr":         true,
	"gt-r":        true,
	"type-r":      true,
	"sti":         true,
	"srt":         true,
	"svt":         true,
	"sport":       true,
	"performance": true,
	"corvette":    true,
	"mustang":     true,
}

// Excluded reports whether a logo should be left out of the catalog.
func Excluded(slug, name string) bool {
	slug = strings.ToLower(slug)
	name = strings.ToLower(name)

	if excludedSlugs[slug] || modelSegmentKeywords[slug] || modelSegmentKeywords[name] {
		return true
	}
	if strings.Contains(slug, "gt-r") || strings.Contains(name, "gt-r") {
		return true
	}

	for _, tok := range strings.Split(slug, "-") {
		if modelSegmentKeywords[tok] {
			return true
		}
	}
	for _, tok := range strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == ' ' || r == '\t' || r == '\n' }) {
		if modelSegmentKeywords[tok] {
			return true
		}
	}
	return false
}
