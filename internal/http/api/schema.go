package api

import "time"

type PullRequestSchema struct {
	ID                  string    `json:"pull_request_id"`
	Number              int       `json:"number"`
	Title               string    `json:"title"`
	URL                 string    `json:"url"`
	Author              string    `json:"author"`
	Repository          string    `json:"repository"`
	RepositoryFullName  string    `json:"repository_full_name"`
	IsDraft             bool      `json:"is_draft"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Status              string    `json:"status"`
	IsStale             bool      `json:"is_stale"`
	IsPinned            bool      `json:"is_pinned"`
	IsRequestedReviewer bool      `json:"is_requested_reviewer"`
}

type ColorSchema struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

type FilterOptionsSchema struct {
	SearchQuery         string   `json:"search_query"`
	Repositories        []string `json:"repositories"`
	Authors             []string `json:"authors"`
	HideStale           bool     `json:"hide_stale"`
	SortBy              string   `json:"sort_by" validate:"omitempty,oneof=newest oldest updated title"`
	PrioritizeMyReviews bool     `json:"prioritize_my_reviews"`
}
