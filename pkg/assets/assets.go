// Package assets builds public URLs for static files that may be served
// locally or from a CDN.
package assets

import (
	"strings"

	"github.com/autoatlas/autoatlas/pkg/errors"
)

// Mode selects where static assets are served from.
type Mode string

// Asset modes.
const (
	ModeLocal Mode = "local"
	ModeCDN   Mode = "cdn"
)

// ParseMode parses an asset mode. An empty string means local.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLocal:
		return ModeLocal, nil
	case ModeCDN:
		return ModeCDN, nil
	default:
		return "", &errors.ValidationError{
			Field:   "asset_mode",
			Value:   s,
			Message: "must be local or cdn",
		}
	}
}

// Config describes how asset URLs are formed.
type Config struct {
	Mode    Mode   `json:"mode" yaml:"mode" mapstructure:"mode"`
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// Base returns the trimmed CDN base, or "" when assets are served locally.
func (c Config) Base() string {
	if c.Mode != ModeCDN {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

// URL returns the public URL for an asset path.
func (c Config) URL(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return c.Base() + p
}
