package handlers

import (
	"net/http"

	"github.com/autoatlas/autoatlas/internal/server/response"
)

// HandleHealth handles GET /health and GET /api/v1/health.
// @Summary Health check
// @Description Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "autoatlas-api",
		"version": h.version,
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Builds the index if needed and reports its size
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	ix, err := h.client.Index(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, "Specs index not available")
		return
	}
	all, err := h.client.Logos(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, "Logo catalog not available")
		return
	}

	stats := ix.Stats()
	response.OK(w, map[string]any{
		"status":      "ready",
		"brands":      stats.Brands,
		"models":      stats.Models,
		"generations": stats.Generations,
		"logos":       len(all),
		"cache": map[string]any{
			"items": h.cache.ItemCount(),
		},
	})
}
