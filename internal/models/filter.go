package models

// SortBy selects the comparator applied after the priority partitions.
type SortBy string

const (
	SortNewest  SortBy = "newest"
	SortOldest  SortBy = "oldest"
	SortUpdated SortBy = "updated"
	SortTitle   SortBy = "title"
)

// FilterOptions is the user-controlled filter and sort configuration. The
// struct doubles as the persisted record shape, so the JSON tags are part of
// the storage contract.
type FilterOptions struct {
	SearchQuery         string   `json:"search_query"`
	Repositories        []string `json:"repositories"`
	Authors             []string `json:"authors"`
	HideStale           bool     `json:"hide_stale"`
	SortBy              SortBy   `json:"sort_by"`
	PrioritizeMyReviews bool     `json:"prioritize_my_reviews"`
}

// DefaultFilterOptions is what a missing or corrupt persisted record degrades to.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Repositories:        []string{},
		Authors:             []string{},
		SortBy:              SortNewest,
		PrioritizeMyReviews: true,
	}
}

// View carries the caller-side display toggles that sit outside FilterOptions:
// whether drafts are shown at all and whether pinned pull requests jump the
// queue. Pin priority is evaluated before reviewer priority when both are on.
type View struct {
	ShowDrafts  bool
	PinnedFirst bool
}
