package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"reviewdeck/internal/lib/sl"
	"reviewdeck/internal/models"
	repo "reviewdeck/internal/repository"
	"reviewdeck/internal/service/colors"
	"reviewdeck/internal/service/status"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Fetcher --output=../mocks --outpkg=mocks
type Fetcher interface {
	FetchOpenPullRequests(ctx context.Context) ([]models.PullRequest, error)
}

type PinApplier interface {
	ApplyTo(ctx context.Context, prs []models.PullRequest) []models.PullRequest
}

type RecordStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, body []byte) error
}

// Snapshot is the output boundary handed to the presentation layer: the five
// status buckets in pipeline order plus a color pair per visible repository.
type Snapshot struct {
	Groups      map[models.Status][]models.PullRequest
	Colors      map[string]colors.Pair
	Total       int
	Visible     int
	RefreshedAt time.Time
}

// Service holds the latest classified pull-request collection and runs the
// core pipeline over it on demand. Refresh replaces the collection; Snapshot
// is read-only and safe to call concurrently with a refresh.
type Service struct {
	log        *slog.Logger
	fetcher    Fetcher
	classifier *status.Classifier
	pins       PinApplier
	records    RecordStore
	view       models.View

	mu          sync.RWMutex
	classified  []models.PullRequest
	refreshedAt time.Time
}

func NewService(
	log *slog.Logger,
	fetcher Fetcher,
	classifier *status.Classifier,
	pins PinApplier,
	records RecordStore,
	view models.View,
) *Service {
	return &Service{
		log:        log,
		fetcher:    fetcher,
		classifier: classifier,
		pins:       pins,
		records:    records,
		view:       view,
	}
}

// Refresh fetches the raw collection and swaps in its classified form. A
// partial upstream result is still classified; only a total fetch failure
// leaves the previous collection in place.
func (s *Service) Refresh(ctx context.Context) error {
	const op = "dashboard.Refresh"

	raw, err := s.fetcher.FetchOpenPullRequests(ctx)
	if err != nil {
		return err
	}

	classified := s.classifier.ClassifyAll(raw)

	s.mu.Lock()
	s.classified = classified
	s.refreshedAt = time.Now()
	s.mu.Unlock()

	s.log.Info("collection refreshed", slog.String("op", op), slog.Int("count", len(classified)))
	return nil
}

// All returns the unfiltered classified collection with pin flags stamped.
func (s *Service) All(ctx context.Context) []models.PullRequest {
	s.mu.RLock()
	classified := s.classified
	s.mu.RUnlock()

	return s.pins.ApplyTo(ctx, classified)
}

// Snapshot runs pins, filter, sort and grouping over the held collection and
// attaches a color pair for every repository left visible.
func (s *Service) Snapshot(ctx context.Context, opts models.FilterOptions) Snapshot {
	s.mu.RLock()
	classified := s.classified
	refreshedAt := s.refreshedAt
	s.mu.RUnlock()

	pinned := s.pins.ApplyTo(ctx, classified)
	visible := FilterAndSort(pinned, opts, s.view)

	repoColors := make(map[string]colors.Pair)
	for _, pr := range visible {
		if _, ok := repoColors[pr.Repository.Name]; !ok {
			repoColors[pr.Repository.Name] = colors.ForRepo(pr.Repository.Name)
		}
	}

	return Snapshot{
		Groups:      GroupByStatus(visible),
		Colors:      repoColors,
		Total:       len(classified),
		Visible:     len(visible),
		RefreshedAt: refreshedAt,
	}
}

// LoadFilters returns the persisted last-used filter options. A missing or
// corrupt record degrades to the defaults rather than surfacing an error.
func (s *Service) LoadFilters(ctx context.Context) models.FilterOptions {
	body, err := s.records.Get(ctx, repo.RecordFilterOptions)
	if err != nil {
		return models.DefaultFilterOptions()
	}

	var opts models.FilterOptions
	if err := json.Unmarshal(body, &opts); err != nil {
		return models.DefaultFilterOptions()
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

// SaveFilters persists the given options as the last-used record.
func (s *Service) SaveFilters(ctx context.Context, opts models.FilterOptions) error {
	body, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	return s.records.Save(ctx, repo.RecordFilterOptions, body)
}

// Run refreshes once immediately and then on every tick until the context is
// cancelled.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if err := s.Refresh(ctx); err != nil {
		s.log.Error("initial refresh failed", sl.Err(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.log.Error("periodic refresh failed", sl.Err(err))
			}
		}
	}
}
