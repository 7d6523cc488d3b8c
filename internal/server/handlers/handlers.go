package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/autoatlas/autoatlas"
	"github.com/autoatlas/autoatlas/internal/i18n"
	"github.com/autoatlas/autoatlas/internal/server/cache"
	"github.com/autoatlas/autoatlas/pkg/assets"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	client    autoatlas.Client
	assets    assets.Config
	cache     *cache.Cache
	messages  *i18n.Catalog
	logger    *zerolog.Logger
	version   string
	startTime time.Time
}

// New creates a new Handlers instance.
func New(
	client autoatlas.Client,
	assetCfg assets.Config,
	cache *cache.Cache,
	messages *i18n.Catalog,
	logger *zerolog.Logger,
	version string,
) *Handlers {
	return &Handlers{
		client:    client,
		assets:    assetCfg,
		cache:     cache,
		messages:  messages,
		logger:    logger,
		version:   version,
		startTime: time.Now(),
	}
}

// locale picks the response language from ?lang=, the locale cookie, then
// Accept-Language.
func (h *Handlers) locale(r *http.Request) i18n.Locale {
	if lang := r.URL.Query().Get("lang"); i18n.IsSupported(lang) {
		return i18n.Locale(lang)
	}
	cookie := ""
	if c, err := r.Cookie(i18n.CookieName); err == nil {
		cookie = c.Value
	}
	return i18n.Negotiate(cookie, r.Header.Get("Accept-Language"))
}
