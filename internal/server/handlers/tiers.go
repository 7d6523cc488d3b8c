package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autoatlas/autoatlas/internal/server/response"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

type tierSummary struct {
	tiers.Tier
	Count int `json:"count"`
}

// HandleListTiers handles GET /api/v1/tiers.
// @Summary List tiers
// @Description Localized tier metadata with logo counts
// @Tags tiers
// @Produce json
// @Param lang query string false "es or en"
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/tiers [get].
func (h *Handlers) HandleListTiers(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	data, err := h.cache.Remember("tiers:"+string(locale), func() (any, error) {
		groups, err := h.client.TierGroups(r.Context())
		if err != nil {
			return nil, err
		}
		ids := tiers.IDs()[:h.client.TierCount()]
		out := make([]tierSummary, 0, len(ids))
		for _, id := range ids {
			out = append(out, tierSummary{
				Tier:  h.messages.Tier(locale, tiers.Meta(id)),
				Count: len(groups[id]),
			})
		}
		return map[string]any{"tiers": out, "locale": locale}, nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}

// HandleGetTier handles GET /api/v1/tiers/{tier}.
// @Summary Get tier
// @Description Logos grouped into a tier
// @Tags tiers
// @Produce json
// @Param tier path string true "Tier id (nivel-N) or level number"
// @Success 200 {object} response.Response{data=object}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/tiers/{tier} [get].
func (h *Handlers) HandleGetTier(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "tier")
	id, ok := tiers.ParseID(raw)
	if !ok || tiers.Meta(id).Level > h.client.TierCount() {
		response.ErrorFromType(w, &errors.NotFoundError{Resource: "tier", ID: raw})
		return
	}

	locale := h.locale(r)
	data, err := h.cache.Remember("tier:"+string(id)+":"+string(locale), func() (any, error) {
		groups, err := h.client.TierGroups(r.Context())
		if err != nil {
			return nil, err
		}
		members := groups[id]
		return map[string]any{
			"tier":  h.messages.Tier(locale, tiers.Meta(id)),
			"logos": h.viewLogos(members),
			"total": len(members),
		}, nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}
