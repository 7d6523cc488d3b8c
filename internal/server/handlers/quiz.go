package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autoatlas/autoatlas/internal/server/response"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/quiz"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

func quizParams(r *http.Request) (quiz.Mode, int64, error) {
	mode, err := quiz.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		return "", 0, err
	}
	seed, err := quiz.ParseSeed(r.URL.Query().Get("seed"))
	if err != nil {
		return "", 0, err
	}
	return mode, seed, nil
}

// HandleTierQuiz handles GET /api/v1/tiers/{tier}/quiz.
// @Summary Tier logo quiz
// @Description Shuffled logo questions for one tier; the same seed replays the same deck
// @Tags quiz
// @Produce json
// @Param tier path string true "Tier id (nivel-N) or level number"
// @Param mode query string false "multiple (default) or typed"
// @Param seed query integer false "Deck seed"
// @Success 200 {object} response.Response{data=quiz.Deck}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/tiers/{tier}/quiz [get].
func (h *Handlers) HandleTierQuiz(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "tier")
	id, ok := tiers.ParseID(raw)
	if !ok || tiers.Meta(id).Level > h.client.TierCount() {
		response.ErrorFromType(w, &errors.NotFoundError{Resource: "tier", ID: raw})
		return
	}
	mode, seed, err := quizParams(r)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	groups, err := h.client.TierGroups(r.Context())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	deck, err := quiz.TierDeck(groups, id, mode, seed)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	for i := range deck.Questions {
		deck.Questions[i].Image = h.assets.URL(deck.Questions[i].Image)
	}
	response.OK(w, deck)
}

// HandleBrandQuiz handles GET /api/v1/brands/{brand}/quiz.
// @Summary Brand model quiz
// @Description Shuffled model questions over the brand's imaged models
// @Tags quiz
// @Produce json
// @Param brand path string true "Brand key or name"
// @Param mode query string false "multiple (default) or typed"
// @Param seed query integer false "Deck seed"
// @Success 200 {object} response.Response{data=quiz.Deck}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/brands/{brand}/quiz [get].
func (h *Handlers) HandleBrandQuiz(w http.ResponseWriter, r *http.Request) {
	brandParam := chi.URLParam(r, "brand")
	ctx := logging.WithBrand(r.Context(), brandParam)
	mode, seed, err := quizParams(r)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

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
	deck, err := quiz.ModelDeck(brand, mode, seed)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("Model quiz unavailable")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, deck)
}
