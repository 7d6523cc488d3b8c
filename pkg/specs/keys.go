package specs

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	generationsSuffix = regexp.MustCompile(`(?i)\s+Generations$`)
	htmlExt           = regexp.MustCompile(`(?i)\.html?$`)
	slugDateTail      = regexp.MustCompile(`[-_]\d{4}.*$`)
	nameYearTail      = regexp.MustCompile(`\b\d{4}.*$`)
)

// toyotaGT86Key merges the GT86 and GR86 naming into one model.
const toyotaGT86Key = "gt86-gr86"

func applyBrandQuirks(brand, key string) string {
	if strings.EqualFold(brand, "toyota") && (strings.Contains(key, "gt86") || strings.Contains(key, "gr86")) {
		return toyotaGT86Key
	}
	return key
}

// cleanModelName drops the "Generations" suffix and a leading brand repeat.
func cleanModelName(name, brand string) string {
	cleaned := strings.TrimSpace(generationsSuffix.ReplaceAllString(name, ""))
	return strings.TrimSpace(stripBrandPrefix(cleaned, brand))
}

func modelKeyFromModelRecord(rec RawRecord) string {
	cleaned := cleanModelName(rec.Name, rec.Brand)
	if cleaned == "" {
		cleaned = rec.Name
	}
	return applyBrandQuirks(rec.Brand, NormalizeKey(cleaned))
}

// urlSlug returns the last path segment of an absolute URL with the page
// extension and any trailing date removed.
func urlSlug(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	slug := path.Base(strings.TrimRight(u.Path, "/"))
	if slug == "." || slug == "/" {
		return ""
	}
	slug = htmlExt.ReplaceAllString(slug, "")
	return slugDateTail.ReplaceAllString(slug, "")
}

// generationBaseName is the generation name without brand prefix or year tail.
func generationBaseName(rec RawRecord) string {
	cleaned := stripBrandPrefix(rec.Name, rec.Brand)
	cleaned = strings.TrimSpace(nameYearTail.ReplaceAllString(cleaned, ""))
	if cleaned == "" {
		return rec.Name
	}
	return cleaned
}

func generationBaseKey(rec RawRecord) string {
	return NormalizeKey(generationBaseName(rec))
}

// modelKeyFromGenerationRecord derives the model key a generation row points at,
// preferring the URL slug over the display name.
func modelKeyFromGenerationRecord(rec RawRecord) string {
	slug := urlSlug(rec.URL)
	if slug == "" {
		cleaned := stripBrandPrefix(rec.Name, rec.Brand)
		slug = strings.TrimSpace(nameYearTail.ReplaceAllString(cleaned, ""))
	}
	if slug == "" {
		slug = rec.Name
	}
	return applyBrandQuirks(rec.Brand, NormalizeKey(slug))
}

func modelID(brandKey, modelKey string) string {
	return brandKey + ":" + modelKey
}
