// Package i18n provides the Spanish and English message catalogs.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"

	"github.com/autoatlas/autoatlas/pkg/errors"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Locale is a supported UI language.
type Locale string

// Supported locales.
const (
	Spanish Locale = "es"
	English Locale = "en"

	// DefaultLocale is used when nothing better can be negotiated.
	DefaultLocale = Spanish

	// CookieName holds an explicit locale choice.
	CookieName = "autoatlas-locale"
)

var (
	supportedTags = []language.Tag{language.Spanish, language.English}
	tagMatcher    = language.NewMatcher(supportedTags)
)

// Locales returns the supported locales, default first.
func Locales() []Locale {
	return []Locale{Spanish, English}
}

// IsSupported reports whether s names a supported locale.
func IsSupported(s string) bool {
	switch Locale(s) {
	case Spanish, English:
		return true
	}
	return false
}

// Negotiate picks a locale from an explicit cookie value, then the
// Accept-Language header, then the default.
func Negotiate(cookie, acceptLanguage string) Locale {
	if IsSupported(cookie) {
		return Locale(cookie)
	}
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	tag, _, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return Locale(base.String())
	}
	return DefaultLocale
}

// Catalog holds flattened messages per locale.
type Catalog struct {
	messages map[Locale]map[string]string
}

// Load parses the embedded locale files.
func Load() (*Catalog, error) {
	c := &Catalog{messages: make(map[Locale]map[string]string)}
	for _, loc := range Locales() {
		name := path.Join("locales", string(loc)+".yaml")
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, errors.WrapIO("read", name, err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, errors.WrapParse("yaml", name, err)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		c.messages[loc] = flat
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog. The embedded files are part of
// the binary, so a parse failure is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(fmt.Sprintf("i18n: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Translate looks up key in locale, falling back to the default locale and
// then to the key itself. Placeholders like {count} are replaced from vars.
func (c *Catalog) Translate(locale Locale, key string, vars map[string]any) string {
	msg, ok := c.messages[locale][key]
	if !ok {
		msg, ok = c.messages[DefaultLocale][key]
	}
	if !ok {
		return key
	}
	return interpolate(msg, vars)
}

func interpolate(msg string, vars map[string]any) string {
	if len(vars) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, v := range vars {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
