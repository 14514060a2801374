package status

import (
	"slices"
	"time"

	"reviewdeck/internal/models"
)

// rule pairs a predicate with the status it assigns. Rules are evaluated in
// order, first match wins, so the slice below IS the priority contract:
// DRAFT > CHANGES_REQUESTED > NEEDS_REVIEW > APPROVED. In particular a pull
// request with zero reviews must land in NEEDS_REVIEW before the vacuous
// "every review is resolved" check ever runs.
type rule struct {
	matches func(*models.PullRequest) bool
	status  models.Status
}

var rules = []rule{
	{isDraft, models.StatusDraft},
	{hasChangesRequested, models.StatusChangesRequested},
	{needsReview, models.StatusNeedsReview},
	{isApproved, models.StatusApproved},
}

// Classifier derives the review-state bucket and staleness flag for pull
// requests. It is a pure transformation over in-memory records.
type Classifier struct {
	viewer     string
	staleAfter time.Duration
	now        func() time.Time
}

// New returns a classifier for the given viewer login and staleness threshold
// in days. now is injectable for tests; pass nil for time.Now.
func New(viewer string, staleThresholdDays int, now func() time.Time) *Classifier {
	if now == nil {
		now = time.Now
	}
	return &Classifier{
		viewer:     viewer,
		staleAfter: time.Duration(staleThresholdDays) * 24 * time.Hour,
		now:        now,
	}
}

// Classify returns an annotated copy of pr; the input is never mutated.
// The function is total: absent reviews and absent aggregate decision are
// handled as the empty case, not as errors.
func (c *Classifier) Classify(pr models.PullRequest) models.PullRequest {
	pr.Status = models.StatusUnknown
	for _, r := range rules {
		if r.matches(&pr) {
			pr.Status = r.status
			break
		}
	}

	// Staleness is independent of status and computed unconditionally,
	// drafts included.
	pr.IsStale = c.now().Sub(pr.UpdatedAt) > c.staleAfter
	pr.IsRequestedReviewer = c.viewer != "" && slices.Contains(pr.RequestedReviewers, c.viewer)

	return pr
}

// ClassifyAll maps Classify over a collection, preserving order.
func (c *Classifier) ClassifyAll(prs []models.PullRequest) []models.PullRequest {
	out := make([]models.PullRequest, len(prs))
	for i, pr := range prs {
		out[i] = c.Classify(pr)
	}
	return out
}

func isDraft(pr *models.PullRequest) bool {
	return pr.IsDraft
}

func hasChangesRequested(pr *models.PullRequest) bool {
	for _, rev := range pr.Reviews {
		if rev.State == models.ReviewChangesRequested {
			return true
		}
	}
	return pr.ReviewDecision == models.DecisionChangesRequested
}

func needsReview(pr *models.PullRequest) bool {
	for _, rev := range pr.Reviews {
		if rev.State == models.ReviewApproved {
			return pr.ReviewDecision == models.DecisionReviewRequired
		}
	}
	return true
}

// isApproved treats COMMENTED as resolved. The leniency only matters once at
// least one approval exists: a commented-only set never reaches this rule
// because needsReview catches it first. Kept as-is pending product
// clarification (see DESIGN.md).
func isApproved(pr *models.PullRequest) bool {
	if pr.ReviewDecision == models.DecisionApproved {
		return true
	}
	for _, rev := range pr.Reviews {
		if rev.State != models.ReviewApproved && rev.State != models.ReviewCommented {
			return false
		}
	}
	return true
}
