package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autoatlas/autoatlas/internal/server/response"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

type brandSummary struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	ModelCount int    `json:"modelCount"`
	ImageSrc   string `json:"imageSrc,omitempty"`
}

type modelSummary struct {
	ID              string       `json:"id"`
	Key             string       `json:"key"`
	Name            string       `json:"name"`
	Years           string       `json:"years"`
	Source          specs.Source `json:"source"`
	GenerationCount int          `json:"generationCount"`
	ImageSrc        string       `json:"imageSrc,omitempty"`
}

type brandDetail struct {
	Key    string         `json:"key"`
	Name   string         `json:"name"`
	Models []modelSummary `json:"models"`
}

type generationView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Years    string `json:"years"`
	ImageSrc string `json:"imageSrc,omitempty"`
}

type modelDetail struct {
	ID          string           `json:"id"`
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Years       string           `json:"years"`
	Brand       string           `json:"brand"`
	BrandKey    string           `json:"brandKey"`
	Source      specs.Source     `json:"source"`
	ImageSrc    string           `json:"imageSrc,omitempty"`
	Generations []generationView `json:"generations"`
}

func imageSrc(img *specs.Image) string {
	src, _ := specs.ImageSrc(img)
	return src
}

func summarizeModel(m *specs.Model) modelSummary {
	return modelSummary{
		ID:              m.ID,
		Key:             m.Key,
		Name:            m.Name,
		Years:           m.Years,
		Source:          m.Source,
		GenerationCount: len(m.Generations),
		ImageSrc:        imageSrc(m.RepresentativeImage),
	}
}

func summarizeBrand(b *specs.Brand) brandSummary {
	visible := b.VisibleModels()
	s := brandSummary{Key: b.Key, Name: b.Name, ModelCount: len(visible)}
	for _, m := range visible {
		if src := imageSrc(m.RepresentativeImage); src != "" {
			s.ImageSrc = src
			break
		}
	}
	return s
}

// HandleListBrands handles GET /api/v1/brands.
// @Summary List brands
// @Description List indexed brands, optionally only those with models
// @Tags brands
// @Produce json
// @Param with_models query boolean false "Only brands with at least one model"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/brands [get].
func (h *Handlers) HandleListBrands(w http.ResponseWriter, r *http.Request) {
	withModels := false
	if raw := r.URL.Query().Get("with_models"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.ErrorFromType(w, errors.NewValidationError("with_models", raw, "must be a boolean"))
			return
		}
		withModels = v
	}

	data, err := h.cache.Remember("brands:"+strconv.FormatBool(withModels), func() (any, error) {
		ix, err := h.client.Index(r.Context())
		if err != nil {
			return nil, err
		}
		brands := ix.Brands()
		if withModels {
			brands = ix.BrandsWithModels()
		}
		out := make([]brandSummary, 0, len(brands))
		for _, b := range brands {
			out = append(out, summarizeBrand(b))
		}
		return map[string]any{"brands": out, "total": len(out)}, nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}

// HandleResolveBrand handles GET /api/v1/brands/resolve.
// @Summary Resolve a brand name
// @Description Map a free-text brand name to an indexed brand key
// @Tags brands
// @Produce json
// @Param name query string true "Brand name"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/brands/resolve [get].
func (h *Handlers) HandleResolveBrand(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.ErrorFromType(w, errors.NewValidationError("name", name, "is required"))
		return
	}
	ix, err := h.client.Index(r.Context())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	key, ok := ix.BrandKeyFor(name)
	if !ok {
		response.ErrorFromType(w, &errors.NotFoundError{Resource: "brand", ID: name})
		return
	}
	response.OK(w, map[string]any{"name": name, "key": key})
}

// HandleGetBrand handles GET /api/v1/brands/{brand}.
// @Summary Get brand
// @Description Brand with its visible models
// @Tags brands
// @Produce json
// @Param brand path string true "Brand key or name"
// @Success 200 {object} response.Response{data=object}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/brands/{brand} [get].
func (h *Handlers) HandleGetBrand(w http.ResponseWriter, r *http.Request) {
	brandParam := chi.URLParam(r, "brand")
	ctx := logging.WithBrand(r.Context(), brandParam)
	ix, err := h.client.Index(ctx)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	brand, ok := ix.Brand(brandParam)
	if !ok {
		logging.FromContext(ctx).Debug().Msg("Brand not found")
		response.ErrorFromType(w, &errors.NotFoundError{Resource: "brand", ID: brandParam})
		return
	}

	visible := brand.VisibleModels()
	detail := brandDetail{Key: brand.Key, Name: brand.Name, Models: make([]modelSummary, 0, len(visible))}
	for _, m := range visible {
		detail.Models = append(detail.Models, summarizeModel(m))
	}
	response.OK(w, detail)
}

// HandleGetModel handles GET /api/v1/brands/{brand}/models/{model}.
// @Summary Get model
// @Description Model with its generations
// @Tags brands
// @Produce json
// @Param brand path string true "Brand key"
// @Param model path string true "Model key"
// @Success 200 {object} response.Response{data=object}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/brands/{brand}/models/{model} [get].
func (h *Handlers) HandleGetModel(w http.ResponseWriter, r *http.Request) {
	brandParam := chi.URLParam(r, "brand")
	modelParam := chi.URLParam(r, "model")
	ctx := logging.WithModel(logging.WithBrand(r.Context(), brandParam), modelParam)
	ix, err := h.client.Index(ctx)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	m, ok := ix.Model(brandParam, modelParam)
	if !ok {
		logging.FromContext(ctx).Debug().Msg("Model not found")
		response.ErrorFromType(w, &errors.NotFoundError{Resource: "model", ID: brandParam + "/" + modelParam})
		return
	}

	detail := modelDetail{
		ID:          m.ID,
		Key:         m.Key,
		Name:        m.Name,
		Years:       m.Years,
		Brand:       m.Brand,
		BrandKey:    m.BrandKey,
		Source:      m.Source,
		ImageSrc:    imageSrc(m.RepresentativeImage),
		Generations: make([]generationView, 0, len(m.Generations)),
	}
	for _, g := range m.Generations {
		img := g.Image
		detail.Generations = append(detail.Generations, generationView{
			ID:       g.ID,
			Name:     g.Name,
			Years:    g.Years,
			ImageSrc: imageSrc(&img),
		})
	}
	response.OK(w, detail)
}
