package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/autoatlas/autoatlas/internal/server/response"
)

// HandleReload handles POST /api/v1/admin/reload.
// @Summary Reload data
// @Description Drops cached data and rebuilds the specs index
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 500 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/admin/reload [post].
func (h *Handlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.client.Invalidate()
	h.cache.Clear()

	ix, err := h.client.Index(r.Context())
	if err != nil {
		response.InternalError(w, err)
		return
	}
	stats := ix.Stats()

	h.logger.Info().
		Int("brands", stats.Brands).
		Dur("duration", time.Since(start)).
		Msg("Data reloaded")

	response.OK(w, map[string]any{
		"status":      "reloaded",
		"brands":      stats.Brands,
		"models":      stats.Models,
		"generations": stats.Generations,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// HandleStats handles GET /api/v1/admin/stats.
// @Summary Statistics
// @Description Runtime, index and cache statistics
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 500 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/admin/stats [get].
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	ix, err := h.client.Index(r.Context())
	if err != nil {
		response.InternalError(w, err)
		return
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response.OK(w, map[string]any{
		"runtime": map[string]any{
			"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
			"goroutines":     runtime.NumGoroutine(),
			"memory_mb":      memStats.Alloc / 1024 / 1024,
		},
		"index": ix.Stats(),
		"cache": h.cache.GetStats(),
	})
}
