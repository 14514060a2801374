package dashboard_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"reviewdeck/internal/models"
	repo "reviewdeck/internal/repository"
	"reviewdeck/internal/service/dashboard"
	"reviewdeck/internal/service/mocks"
	"reviewdeck/internal/service/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, fetcher *mocks.Fetcher, pinApplier *mocks.PinApplier, records *mocks.RecordStore) *dashboard.Service {
	t.Helper()
	classifier := status.New("carol", 7, func() time.Time { return base })
	return dashboard.NewService(discardLogger(), fetcher, classifier, pinApplier, records, models.View{PinnedFirst: true})
}

func TestRefresh_ClassifiesFetchedCollection(t *testing.T) {
	ctx := context.Background()
	fetcher := mocks.NewFetcher(t)
	pinApplier := mocks.NewPinApplier(t)
	records := mocks.NewRecordStore(t)

	raw := []models.PullRequest{
		testPR("draft", "WIP", func(p *models.PullRequest) { p.IsDraft = true; p.Status = "" }),
		testPR("plain", "Ready", func(p *models.PullRequest) { p.Status = "" }),
	}
	fetcher.On("FetchOpenPullRequests", ctx).Return(raw, nil).Once()
	pinApplier.On("ApplyTo", ctx, mock.AnythingOfType("[]models.PullRequest")).
		Return(func(_ context.Context, prs []models.PullRequest) []models.PullRequest { return prs })

	s := newService(t, fetcher, pinApplier, records)

	assert.NoError(t, s.Refresh(ctx))

	all := s.All(ctx)
	assert.Len(t, all, 2)
	assert.Equal(t, models.StatusDraft, all[0].Status)
	assert.Equal(t, models.StatusNeedsReview, all[1].Status)
}

func TestRefresh_FetchFailureKeepsPreviousCollection(t *testing.T) {
	ctx := context.Background()
	fetcher := mocks.NewFetcher(t)
	pinApplier := mocks.NewPinApplier(t)
	records := mocks.NewRecordStore(t)

	fetcher.On("FetchOpenPullRequests", ctx).
		Return([]models.PullRequest{testPR("1", "Only", nil)}, nil).Once()
	fetcher.On("FetchOpenPullRequests", ctx).
		Return(nil, errors.New("upstream down")).Once()
	pinApplier.On("ApplyTo", ctx, mock.AnythingOfType("[]models.PullRequest")).
		Return(func(_ context.Context, prs []models.PullRequest) []models.PullRequest { return prs })

	s := newService(t, fetcher, pinApplier, records)

	assert.NoError(t, s.Refresh(ctx))
	assert.Error(t, s.Refresh(ctx))
	assert.Len(t, s.All(ctx), 1)
}

func TestSnapshot_GroupsAndColors(t *testing.T) {
	ctx := context.Background()
	fetcher := mocks.NewFetcher(t)
	pinApplier := mocks.NewPinApplier(t)
	records := mocks.NewRecordStore(t)

	raw := []models.PullRequest{
		testPR("a", "Approved one", func(p *models.PullRequest) {
			p.Status = ""
			p.Reviews = []models.Review{{ID: "r1", State: models.ReviewApproved}}
		}),
		testPR("b", "Changes", func(p *models.PullRequest) {
			p.Status = ""
			p.Repository.Name = "frontend"
			p.Reviews = []models.Review{{ID: "r2", State: models.ReviewChangesRequested}}
		}),
	}
	fetcher.On("FetchOpenPullRequests", ctx).Return(raw, nil).Once()
	pinApplier.On("ApplyTo", ctx, mock.AnythingOfType("[]models.PullRequest")).
		Return(func(_ context.Context, prs []models.PullRequest) []models.PullRequest { return prs })

	s := newService(t, fetcher, pinApplier, records)
	assert.NoError(t, s.Refresh(ctx))

	snap := s.Snapshot(ctx, noFilters())

	assert.Len(t, snap.Groups, 5)
	assert.Equal(t, []string{"a"}, ids(snap.Groups[models.StatusApproved]))
	assert.Equal(t, []string{"b"}, ids(snap.Groups[models.StatusChangesRequested]))
	assert.Equal(t, 2, snap.Total)
	assert.Equal(t, 2, snap.Visible)
	assert.Contains(t, snap.Colors, "backend")
	assert.Contains(t, snap.Colors, "frontend")
}

func TestSnapshot_HiddenStaleStaysInUnfilteredCollection(t *testing.T) {
	ctx := context.Background()
	fetcher := mocks.NewFetcher(t)
	pinApplier := mocks.NewPinApplier(t)
	records := mocks.NewRecordStore(t)

	raw := []models.PullRequest{
		testPR("stale", "Old work", func(p *models.PullRequest) {
			p.Status = ""
			p.UpdatedAt = base.Add(-8 * 24 * time.Hour)
		}),
	}
	fetcher.On("FetchOpenPullRequests", ctx).Return(raw, nil).Once()
	pinApplier.On("ApplyTo", ctx, mock.AnythingOfType("[]models.PullRequest")).
		Return(func(_ context.Context, prs []models.PullRequest) []models.PullRequest { return prs })

	s := newService(t, fetcher, pinApplier, records)
	assert.NoError(t, s.Refresh(ctx))

	opts := noFilters()
	opts.HideStale = true
	snap := s.Snapshot(ctx, opts)

	assert.Equal(t, 0, snap.Visible)
	all := s.All(ctx)
	assert.Len(t, all, 1)
	assert.True(t, all[0].IsStale)
}

func TestLoadFilters_MissingRecordReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	records := mocks.NewRecordStore(t)
	records.On("Get", ctx, repo.RecordFilterOptions).Return(nil, repo.ErrNotFound)

	s := newService(t, mocks.NewFetcher(t), mocks.NewPinApplier(t), records)

	got := s.LoadFilters(ctx)
	assert.Equal(t, models.DefaultFilterOptions(), got)
}

func TestLoadFilters_CorruptRecordReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	records := mocks.NewRecordStore(t)
	records.On("Get", ctx, repo.RecordFilterOptions).Return([]byte(`not json`), nil)

	s := newService(t, mocks.NewFetcher(t), mocks.NewPinApplier(t), records)

	got := s.LoadFilters(ctx)
	assert.Equal(t, models.DefaultFilterOptions(), got)
}

func TestSaveThenLoadFilters_RoundTrips(t *testing.T) {
	ctx := context.Background()
	records := mocks.NewRecordStore(t)

	opts := models.FilterOptions{
		SearchQuery:  "auth",
		Repositories: []string{"backend"},
		Authors:      []string{},
		HideStale:    true,
		SortBy:       models.SortTitle,
	}

	var stored []byte
	records.On("Save", ctx, repo.RecordFilterOptions, mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) { stored = args.Get(2).([]byte) }).
		Return(nil).Once()

	s := newService(t, mocks.NewFetcher(t), mocks.NewPinApplier(t), records)
	assert.NoError(t, s.SaveFilters(ctx, opts))

	records.On("Get", ctx, repo.RecordFilterOptions).Return(stored, nil)
	assert.Equal(t, opts, s.LoadFilters(ctx))
}
