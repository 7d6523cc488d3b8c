package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autoatlas/autoatlas/internal/server/response"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// logoView is a logo with public image URLs.
type logoView struct {
	Name    string       `json:"name"`
	Slug    string       `json:"slug"`
	Images  logos.Images `json:"images"`
	IsLocal bool         `json:"isLocal"`
}

func (h *Handlers) viewLogo(l logos.Logo) logoView {
	return logoView{
		Name: l.Name,
		Slug: l.Slug,
		Images: logos.Images{
			Thumb:     h.assets.URL(l.Images.Thumb),
			Optimized: h.assets.URL(l.Images.Optimized),
			Original:  h.assets.URL(l.Images.Original),
		},
		IsLocal: l.IsLocal,
	}
}

func (h *Handlers) viewLogos(all []logos.Logo) []logoView {
	out := make([]logoView, 0, len(all))
	for _, l := range all {
		out = append(out, h.viewLogo(l))
	}
	return out
}

// HandleListLogos handles GET /api/v1/logos.
// @Summary List logos
// @Description Logo explorer with substring search and name ordering
// @Tags logos
// @Produce json
// @Param q query string false "Case-insensitive match on name or slug"
// @Param sort query string false "name-asc (default) or name-desc"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/logos [get].
func (h *Handlers) HandleListLogos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	order, err := logos.ParseSortOrder(r.URL.Query().Get("sort"))
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	data, err := h.cache.Remember("logos:"+string(order)+":"+query, func() (any, error) {
		all, err := h.client.Logos(r.Context())
		if err != nil {
			return nil, err
		}
		filtered := logos.Filter(all, query, order)
		return map[string]any{
			"logos": h.viewLogos(filtered),
			"total": len(filtered),
		}, nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}

// HandleLogoTier handles GET /api/v1/logos/{slug}/tier.
// @Summary Classify a logo
// @Description Absolute-score tier of a single logo
// @Tags logos
// @Produce json
// @Param slug path string true "Logo slug"
// @Success 200 {object} response.Response{data=object}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/logos/{slug}/tier [get].
func (h *Handlers) HandleLogoTier(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	all, err := h.client.Logos(r.Context())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	logo, ok := logos.Find(all, slug)
	if !ok {
		response.ErrorFromType(w, &errors.NotFoundError{Resource: "logo", ID: slug})
		return
	}

	id := tiers.TierID(logo, h.client.TierCount())
	response.OK(w, map[string]any{
		"logo":  h.viewLogo(logo),
		"score": tiers.Score(logo),
		"tier":  h.messages.Tier(h.locale(r), tiers.Meta(id)),
	})
}
