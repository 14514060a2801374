package dashboard_test

import (
	"testing"
	"time"

	"reviewdeck/internal/models"
	"reviewdeck/internal/service/dashboard"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testPR(id, title string, mut func(*models.PullRequest)) models.PullRequest {
	p := models.PullRequest{
		ID:        id,
		Title:     title,
		Author:    "alice",
		Status:    models.StatusNeedsReview,
		CreatedAt: base,
		UpdatedAt: base,
		Repository: models.Repository{
			Name:     "backend",
			FullName: "acme/backend",
		},
	}
	if mut != nil {
		mut(&p)
	}
	return p
}

func noFilters() models.FilterOptions {
	opts := models.DefaultFilterOptions()
	opts.PrioritizeMyReviews = false
	return opts
}

func titles(prs []models.PullRequest) []string {
	out := make([]string, len(prs))
	for i, pr := range prs {
		out[i] = pr.Title
	}
	return out
}

func ids(prs []models.PullRequest) []string {
	out := make([]string, len(prs))
	for i, pr := range prs {
		out[i] = pr.ID
	}
	return out
}

func TestFilterAndSort_EmptyInput(t *testing.T) {
	got := dashboard.FilterAndSort(nil, noFilters(), models.View{})

	assert.Empty(t, got)
}

func TestFilterAndSort_SearchQueryTitleSort(t *testing.T) {
	prs := []models.PullRequest{
		testPR("1", "Fix bug", nil),
		testPR("2", "Add feature", nil),
		testPR("3", "fixture cleanup", nil),
	}

	opts := noFilters()
	opts.SearchQuery = "fix"
	opts.SortBy = models.SortTitle

	got := dashboard.FilterAndSort(prs, opts, models.View{})

	assert.Equal(t, []string{"Fix bug", "fixture cleanup"}, titles(got))
}

func TestFilterAndSort_SearchMatchesAuthorAndRepo(t *testing.T) {
	prs := []models.PullRequest{
		testPR("1", "Add feature", func(p *models.PullRequest) { p.Author = "bob-the-fixer" }),
		testPR("2", "Refactor", func(p *models.PullRequest) { p.Repository.Name = "bugfix-tools" }),
		testPR("3", "Cleanup", nil),
	}

	opts := noFilters()
	opts.SearchQuery = "  FIX  " // trimmed and case-folded

	got := dashboard.FilterAndSort(prs, opts, models.View{})

	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestFilterAndSort_DraftsHiddenByDefault(t *testing.T) {
	prs := []models.PullRequest{
		testPR("1", "Draft work", func(p *models.PullRequest) { p.IsDraft = true; p.Status = models.StatusDraft }),
		testPR("2", "Ready", nil),
	}

	hidden := dashboard.FilterAndSort(prs, noFilters(), models.View{})
	shown := dashboard.FilterAndSort(prs, noFilters(), models.View{ShowDrafts: true})

	assert.Equal(t, []string{"2"}, ids(hidden))
	// equal timestamps, so the stable sort keeps input order
	assert.Equal(t, []string{"1", "2"}, ids(shown))
}

func TestFilterAndSort_RepositoryAndAuthorSets(t *testing.T) {
	prs := []models.PullRequest{
		testPR("1", "A", func(p *models.PullRequest) { p.Repository.Name = "backend"; p.Author = "alice" }),
		testPR("2", "B", func(p *models.PullRequest) { p.Repository.Name = "frontend"; p.Author = "alice" }),
		testPR("3", "C", func(p *models.PullRequest) { p.Repository.Name = "backend"; p.Author = "bob" }),
	}

	opts := noFilters()
	opts.Repositories = []string{"backend"}
	opts.Authors = []string{"alice"}

	got := dashboard.FilterAndSort(prs, opts, models.View{})

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterAndSort_HideStale(t *testing.T) {
	prs := []models.PullRequest{
		testPR("1", "Fresh", nil),
		testPR("2", "Stale", func(p *models.PullRequest) { p.IsStale = true }),
	}

	opts := noFilters()
	opts.HideStale = true

	got := dashboard.FilterAndSort(prs, opts, models.View{})

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterAndSort_SortNewestAndOldest(t *testing.T) {
	prs := []models.PullRequest{
		testPR("old", "Old", func(p *models.PullRequest) { p.CreatedAt = base.Add(-72 * time.Hour) }),
		testPR("new", "New", func(p *models.PullRequest) { p.CreatedAt = base }),
		testPR("mid", "Mid", func(p *models.PullRequest) { p.CreatedAt = base.Add(-24 * time.Hour) }),
	}

	newest := noFilters()
	newest.SortBy = models.SortNewest
	oldest := noFilters()
	oldest.SortBy = models.SortOldest

	assert.Equal(t, []string{"new", "mid", "old"}, ids(dashboard.FilterAndSort(prs, newest, models.View{})))
	assert.Equal(t, []string{"old", "mid", "new"}, ids(dashboard.FilterAndSort(prs, oldest, models.View{})))
}

func TestFilterAndSort_SortUpdated(t *testing.T) {
	prs := []models.PullRequest{
		testPR("a", "A", func(p *models.PullRequest) { p.UpdatedAt = base.Add(-48 * time.Hour) }),
		testPR("b", "B", func(p *models.PullRequest) { p.UpdatedAt = base }),
	}

	opts := noFilters()
	opts.SortBy = models.SortUpdated

	assert.Equal(t, []string{"b", "a"}, ids(dashboard.FilterAndSort(prs, opts, models.View{})))
}

func TestFilterAndSort_PinPriorityBeforeReviewerPriority(t *testing.T) {
	prs := []models.PullRequest{
		testPR("plain", "Plain", nil),
		testPR("mine", "Mine", func(p *models.PullRequest) { p.IsRequestedReviewer = true }),
		testPR("pinned", "Pinned", func(p *models.PullRequest) { p.IsPinned = true }),
	}

	opts := noFilters()
	opts.PrioritizeMyReviews = true

	got := dashboard.FilterAndSort(prs, opts, models.View{PinnedFirst: true})

	assert.Equal(t, []string{"pinned", "mine", "plain"}, ids(got))
}

func TestFilterAndSort_PriorityPartitionsAreStable(t *testing.T) {
	prs := []models.PullRequest{
		testPR("p1", "P1", func(p *models.PullRequest) { p.IsPinned = true }),
		testPR("u1", "U1", nil),
		testPR("p2", "P2", func(p *models.PullRequest) { p.IsPinned = true }),
		testPR("u2", "U2", nil),
	}

	got := dashboard.FilterAndSort(prs, noFilters(), models.View{PinnedFirst: true})

	assert.Equal(t, []string{"p1", "p2", "u1", "u2"}, ids(got))
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	prs := []models.PullRequest{
		testPR("c", "Gamma", func(p *models.PullRequest) { p.CreatedAt = base.Add(-time.Hour) }),
		testPR("a", "Alpha", func(p *models.PullRequest) { p.CreatedAt = base.Add(-3 * time.Hour) }),
		testPR("b", "Beta", func(p *models.PullRequest) { p.CreatedAt = base.Add(-2 * time.Hour) }),
	}

	opts := noFilters()
	once := dashboard.FilterAndSort(prs, opts, models.View{})
	twice := dashboard.FilterAndSort(once, opts, models.View{})

	assert.Equal(t, ids(once), ids(twice))
}

func TestGroupByStatus_AllBucketsPresent(t *testing.T) {
	prs := []models.PullRequest{
		testPR("a", "A", func(p *models.PullRequest) { p.Status = models.StatusApproved }),
		testPR("b", "B", func(p *models.PullRequest) { p.Status = models.StatusChangesRequested }),
		testPR("c", "C", func(p *models.PullRequest) { p.Status = models.StatusDraft }),
	}

	groups := dashboard.GroupByStatus(prs)

	assert.Len(t, groups, 5)
	assert.Equal(t, []string{"a"}, ids(groups[models.StatusApproved]))
	assert.Equal(t, []string{"b"}, ids(groups[models.StatusChangesRequested]))
	assert.Equal(t, []string{"c"}, ids(groups[models.StatusDraft]))
	assert.Empty(t, groups[models.StatusNeedsReview])
	assert.Empty(t, groups[models.StatusUnknown])
}

func TestGroupByStatus_KeepsPipelineOrder(t *testing.T) {
	prs := []models.PullRequest{
		testPR("2", "Second", nil),
		testPR("1", "First", nil),
		testPR("3", "Third", nil),
	}

	groups := dashboard.GroupByStatus(prs)

	assert.Equal(t, []string{"2", "1", "3"}, ids(groups[models.StatusNeedsReview]))
}
