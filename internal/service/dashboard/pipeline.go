package dashboard

import (
	"slices"
	"sort"
	"strings"

	"reviewdeck/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAndSort produces the visible, ordered subset of an already classified
// collection. Filters are AND-combined; an empty repository or author set
// means no restriction. The sort is stable with three levels of precedence:
// pinned first (when the view surfaces pins), then requested-reviewer first
// (when PrioritizeMyReviews is on), then the SortBy comparator. Equal keys
// keep their relative input order.
func FilterAndSort(prs []models.PullRequest, opts models.FilterOptions, view models.View) []models.PullRequest {
	query := strings.ToLower(strings.TrimSpace(opts.SearchQuery))

	out := make([]models.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.IsDraft && !view.ShowDrafts {
			continue
		}
		if len(opts.Repositories) > 0 && !slices.Contains(opts.Repositories, pr.Repository.Name) {
			continue
		}
		if len(opts.Authors) > 0 && !slices.Contains(opts.Authors, pr.Author) {
			continue
		}
		if opts.HideStale && pr.IsStale {
			continue
		}
		if query != "" && !matchesQuery(pr, query) {
			continue
		}
		out = append(out, pr)
	}

	titles := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j], opts, view, titles)
	})

	return out
}

func matchesQuery(pr models.PullRequest, query string) bool {
	return strings.Contains(strings.ToLower(pr.Title), query) ||
		strings.Contains(strings.ToLower(pr.Author), query) ||
		strings.Contains(strings.ToLower(pr.Repository.Name), query)
}

func less(a, b *models.PullRequest, opts models.FilterOptions, view models.View, titles *collate.Collator) bool {
	// Pin priority is evaluated before reviewer priority when both are on.
	if view.PinnedFirst && a.IsPinned != b.IsPinned {
		return a.IsPinned
	}
	if opts.PrioritizeMyReviews && a.IsRequestedReviewer != b.IsRequestedReviewer {
		return a.IsRequestedReviewer
	}

	switch opts.SortBy {
	case models.SortOldest:
		return a.CreatedAt.Before(b.CreatedAt)
	case models.SortUpdated:
		return a.UpdatedAt.After(b.UpdatedAt)
	case models.SortTitle:
		return titles.CompareString(a.Title, b.Title) < 0
	default: // newest
		return a.CreatedAt.After(b.CreatedAt)
	}
}

// GroupByStatus partitions a collection into the five status buckets. Every
// bucket is present even when empty, and bucket order matches the input order:
// grouping never re-sorts.
func GroupByStatus(prs []models.PullRequest) map[models.Status][]models.PullRequest {
	groups := make(map[models.Status][]models.PullRequest, len(models.AllStatuses))
	for _, st := range models.AllStatuses {
		groups[st] = []models.PullRequest{}
	}

	for _, pr := range prs {
		st := pr.Status
		if _, ok := groups[st]; !ok {
			st = models.StatusUnknown
		}
		groups[st] = append(groups[st], pr)
	}

	return groups
}
