package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"reviewdeck/internal/http/api"
	"reviewdeck/internal/lib/sl"
	"reviewdeck/internal/models"
	svc "reviewdeck/internal/service/dashboard"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=DashboardService --output=../mocks --outpkg=mocks
type DashboardService interface {
	Snapshot(ctx context.Context, opts models.FilterOptions) svc.Snapshot
	Refresh(ctx context.Context) error
	LoadFilters(ctx context.Context) models.FilterOptions
}

type DashboardHandler struct {
	log     *slog.Logger
	service DashboardService
}

func NewDashboardHandler(log *slog.Logger, s DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:     log,
		service: s,
	}
}

// Get renders the five-bucket grouped view. Filters default to the persisted
// last-used options; any filter present in the query string overrides its
// persisted counterpart for this request only.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	opts := h.service.LoadFilters(ctx)
	applyQueryOverrides(&opts, r.URL.Query())

	snap := h.service.Snapshot(ctx, opts)
	log.Debug("snapshot rendered", slog.Int("visible", snap.Visible))

	render.JSON(w, r, toDashboardResponse(snap))
}

// Refresh forces a re-fetch from the data source and renders the refreshed
// view with the persisted filters.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.Refresh"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	if err := h.service.Refresh(ctx); err != nil {
		log.Error("refresh failed", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, api.Error(api.ErrCodeUpstream, "data source unavailable"))
		return
	}

	snap := h.service.Snapshot(ctx, h.service.LoadFilters(ctx))
	render.JSON(w, r, toDashboardResponse(snap))
}

func applyQueryOverrides(opts *models.FilterOptions, q url.Values) {
	if q.Has("search") {
		opts.SearchQuery = q.Get("search")
	}
	if repos, ok := q["repo"]; ok {
		opts.Repositories = repos
	}
	if authors, ok := q["author"]; ok {
		opts.Authors = authors
	}
	if q.Has("hide_stale") {
		if v, err := strconv.ParseBool(q.Get("hide_stale")); err == nil {
			opts.HideStale = v
		}
	}
	if q.Has("sort") {
		opts.SortBy = models.SortBy(q.Get("sort"))
	}
	if q.Has("my_reviews") {
		if v, err := strconv.ParseBool(q.Get("my_reviews")); err == nil {
			opts.PrioritizeMyReviews = v
		}
	}
}

func toDashboardResponse(snap svc.Snapshot) api.DashboardResponse {
	groups := make(map[string][]api.PullRequestSchema, len(snap.Groups))
	for st, prs := range snap.Groups {
		bucket := make([]api.PullRequestSchema, len(prs))
		for i, pr := range prs {
			bucket[i] = toPullRequestSchema(pr)
		}
		groups[string(st)] = bucket
	}

	colorsByRepo := make(map[string]api.ColorSchema, len(snap.Colors))
	for name, pair := range snap.Colors {
		colorsByRepo[name] = api.ColorSchema{
			Background: pair.Background,
			Foreground: pair.Foreground,
		}
	}

	return api.DashboardResponse{
		Groups:      groups,
		Colors:      colorsByRepo,
		Total:       snap.Total,
		Visible:     snap.Visible,
		RefreshedAt: snap.RefreshedAt,
	}
}

func toPullRequestSchema(pr models.PullRequest) api.PullRequestSchema {
	return api.PullRequestSchema{
		ID:                  pr.ID,
		Number:              pr.Number,
		Title:               pr.Title,
		URL:                 pr.URL,
		Author:              pr.Author,
		Repository:          pr.Repository.Name,
		RepositoryFullName:  pr.Repository.FullName,
		IsDraft:             pr.IsDraft,
		CreatedAt:           pr.CreatedAt,
		UpdatedAt:           pr.UpdatedAt,
		Status:              string(pr.Status),
		IsStale:             pr.IsStale,
		IsPinned:            pr.IsPinned,
		IsRequestedReviewer: pr.IsRequestedReviewer,
	}
}
