// Package github is the data-source adapter: it pulls raw open pull-request
// records from a GitHub-style REST API. Records leave this package without any
// derived fields; classification happens downstream.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"reviewdeck/internal/lib"
	"reviewdeck/internal/lib/sl"
	"reviewdeck/internal/models"
)

type Config struct {
	BaseURL string
	Org     string
	Token   string
}

type Client struct {
	log     *slog.Logger
	http    *http.Client
	baseURL string
	org     string
	token   string
}

func NewClient(log *slog.Logger, cfg Config) *Client {
	return &Client{
		log:     log,
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: cfg.BaseURL,
		org:     cfg.Org,
		token:   cfg.Token,
	}
}

type repoRecord struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

type userRecord struct {
	Login string `json:"login"`
}

type prRecord struct {
	NodeID             string       `json:"node_id"`
	Number             int          `json:"number"`
	Title              string       `json:"title"`
	HTMLURL            string       `json:"html_url"`
	Draft              bool         `json:"draft"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
	User               userRecord   `json:"user"`
	RequestedReviewers []userRecord `json:"requested_reviewers"`
}

type reviewRecord struct {
	ID          int64      `json:"id"`
	State       string     `json:"state"`
	User        userRecord `json:"user"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

// FetchOpenPullRequests lists the organization's repositories and fans out one
// goroutine per repository, each of which fans out once more per pull request
// for its reviews. The per-repository and per-review fetches are independent:
// a failing unit is logged and skipped, it never blocks the rest. Only the
// initial repository listing is fatal.
func (c *Client) FetchOpenPullRequests(ctx context.Context) ([]models.PullRequest, error) {
	const op = "github.FetchOpenPullRequests"

	var repos []repoRecord
	if err := c.get(ctx, fmt.Sprintf("/orgs/%s/repos", c.org), &repos); err != nil {
		return nil, lib.Err(op, err)
	}

	perRepo := make([][]models.PullRequest, len(repos))

	var wg sync.WaitGroup
	for i, repo := range repos {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prs, err := c.fetchRepoPulls(ctx, repo)
			if err != nil {
				c.log.Warn("skipping repository",
					slog.String("repo", repo.FullName), sl.Err(err))
				return
			}
			perRepo[i] = prs
		}()
	}
	wg.Wait()

	var out []models.PullRequest
	for _, prs := range perRepo {
		out = append(out, prs...)
	}
	return out, nil
}

func (c *Client) fetchRepoPulls(ctx context.Context, repo repoRecord) ([]models.PullRequest, error) {
	var records []prRecord
	path := fmt.Sprintf("/repos/%s/pulls?state=open", repo.FullName)
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}

	prs := make([]models.PullRequest, len(records))

	var wg sync.WaitGroup
	for i, rec := range records {
		prs[i] = toPullRequest(rec, repo)

		wg.Add(1)
		go func() {
			defer wg.Done()
			reviews, err := c.fetchReviews(ctx, repo.FullName, rec.Number)
			if err != nil {
				// A pull request with zero reviews is still classifiable.
				c.log.Warn("skipping reviews",
					slog.String("repo", repo.FullName),
					slog.Int("number", rec.Number), sl.Err(err))
				return
			}
			prs[i].Reviews = reviews
		}()
	}
	wg.Wait()

	return prs, nil
}

func (c *Client) fetchReviews(ctx context.Context, fullName string, number int) ([]models.Review, error) {
	var records []reviewRecord
	path := fmt.Sprintf("/repos/%s/pulls/%d/reviews", fullName, number)
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}

	reviews := make([]models.Review, len(records))
	for i, rec := range records {
		reviews[i] = models.Review{
			ID:          strconv.FormatInt(rec.ID, 10),
			State:       models.ReviewState(rec.State),
			Author:      rec.User.Login,
			SubmittedAt: rec.SubmittedAt,
		}
	}
	return reviews, nil
}

func toPullRequest(rec prRecord, repo repoRecord) models.PullRequest {
	id := rec.NodeID
	if id == "" {
		id = fmt.Sprintf("%s#%d", repo.FullName, rec.Number)
	}

	reviewers := make([]string, len(rec.RequestedReviewers))
	for i, u := range rec.RequestedReviewers {
		reviewers[i] = u.Login
	}

	return models.PullRequest{
		ID:        id,
		Number:    rec.Number,
		Title:     rec.Title,
		URL:       rec.HTMLURL,
		IsDraft:   rec.Draft,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Author:    rec.User.Login,
		Repository: models.Repository{
			Name:     repo.Name,
			FullName: repo.FullName,
			URL:      repo.HTMLURL,
		},
		RequestedReviewers: reviewers,
		Reviews:            []models.Review{},
	}
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
