package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/autoatlas/autoatlas/internal/server/response"
	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/imagestore"
)

// logoPrefixes are the dataset folders the logo route may redirect into.
var logoPrefixes = []string{
	"logos/thumb/",
	"logos/optimized/",
	"logos/original/",
	"local-logos/",
}

// HandleLogoRedirect handles GET /api/logo/*.
// @Summary Logo file redirect
// @Description 302 to the logo file in the dataset folder
// @Tags static
// @Param path path string true "Path inside the logo dataset"
// @Success 302
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/logo/{path} [get].
func (h *Handlers) HandleLogoRedirect(w http.ResponseWriter, r *http.Request) {
	rel, err := imagestore.CleanPath(chi.URLParam(r, "*"))
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	allowed := false
	for _, prefix := range logoPrefixes {
		if strings.HasPrefix(rel, prefix) {
			allowed = true
			break
		}
	}
	if !allowed {
		response.NotFound(w, "Not found", "")
		return
	}
	http.Redirect(w, r, h.assets.URL("/"+constants.LogoDatasetDir+"/"+rel), http.StatusFound)
}

// HandleFlagRedirect handles GET /api/flags/{code}.
// @Summary Flag redirect
// @Description 302 to the SVG flag, or a PNG when size is given (128 or 32)
// @Tags static
// @Param code path string true "Country code"
// @Param size query string false "PNG size"
// @Success 302
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/flags/{code} [get].
func (h *Handlers) HandleFlagRedirect(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))
	if code == "" || strings.ContainsAny(code, "/.\\") {
		response.NotFound(w, "Not found", "")
		return
	}

	target := "/flags/SVG/" + code + ".svg"
	if size := r.URL.Query().Get("size"); size != "" {
		folder := "PNG-32"
		if size == "128" {
			folder = "PNG-128"
		}
		target = "/flags/" + folder + "/" + code + ".png"
	}
	http.Redirect(w, r, h.assets.URL(target), http.StatusFound)
}

// HandleImage handles GET /api/ultimatespecs/*.
// @Summary Model image
// @Description Serves a locally stored model image
// @Tags static
// @Param path path string true "Path under the image root"
// @Success 200
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/ultimatespecs/{path} [get].
func (h *Handlers) HandleImage(w http.ResponseWriter, r *http.Request) {
	f, info, err := h.client.Images().Open(chi.URLParam(r, "*"))
	if err != nil {
		h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Image not served")
		response.NotFound(w, "Not found", "")
		return
	}
	defer func() { _ = f.Close() }()

	w.Header().Set("Content-Type", imagestore.ContentType(info.Name()))
	w.Header().Set("Cache-Control", constants.ImageCacheControl)
	http.ServeContent(w, r, "", info.ModTime(), f)
}
