package filters

import (
	"context"
	"log/slog"
	"net/http"

	"reviewdeck/internal/http/api"
	"reviewdeck/internal/lib/sl"
	"reviewdeck/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=FilterStore --output=../mocks --outpkg=mocks
type FilterStore interface {
	LoadFilters(ctx context.Context) models.FilterOptions
	SaveFilters(ctx context.Context, opts models.FilterOptions) error
}

type FilterHandler struct {
	log   *slog.Logger
	store FilterStore
}

func NewFilterHandler(log *slog.Logger, store FilterStore) *FilterHandler {
	return &FilterHandler{
		log:   log,
		store: store,
	}
}

// Get returns the persisted last-used filter options. A missing or corrupt
// record already degraded to defaults inside the store, so this never fails.
func (h *FilterHandler) Get(w http.ResponseWriter, r *http.Request) {
	opts := h.store.LoadFilters(r.Context())

	render.JSON(w, r, api.FiltersResponse{Filters: toSchema(opts)})
}

// Put replaces the persisted filter options.
func (h *FilterHandler) Put(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.filters.Put"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input api.FilterOptionsSchema
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	opts := fromSchema(input)
	if err := h.store.SaveFilters(ctx, opts); err != nil {
		log.Error("error while saving filters", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.FiltersResponse{Filters: toSchema(opts)})
}

func toSchema(opts models.FilterOptions) api.FilterOptionsSchema {
	return api.FilterOptionsSchema{
		SearchQuery:         opts.SearchQuery,
		Repositories:        opts.Repositories,
		Authors:             opts.Authors,
		HideStale:           opts.HideStale,
		SortBy:              string(opts.SortBy),
		PrioritizeMyReviews: opts.PrioritizeMyReviews,
	}
}

func fromSchema(in api.FilterOptionsSchema) models.FilterOptions {
	opts := models.FilterOptions{
		SearchQuery:         in.SearchQuery,
		Repositories:        in.Repositories,
		Authors:             in.Authors,
		HideStale:           in.HideStale,
		SortBy:              models.SortBy(in.SortBy),
		PrioritizeMyReviews: in.PrioritizeMyReviews,
	}
	if opts.Repositories == nil {
		opts.Repositories = []string{}
	}
	if opts.Authors == nil {
		opts.Authors = []string{}
	}
	if opts.SortBy == "" {
		opts.SortBy = models.SortNewest
	}
	return opts
}
