package models

import "time"

// ReviewState is the verdict of a single submitted review.
type ReviewState string

const (
	ReviewApproved         ReviewState = "APPROVED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewCommented        ReviewState = "COMMENTED"
	ReviewDismissed        ReviewState = "DISMISSED"
	ReviewPending          ReviewState = "PENDING"
)

// ReviewDecision is the aggregate verdict optionally precomputed by the data
// source, independent of the raw review list.
type ReviewDecision string

const (
	DecisionApproved         ReviewDecision = "APPROVED"
	DecisionChangesRequested ReviewDecision = "CHANGES_REQUESTED"
	DecisionReviewRequired   ReviewDecision = "REVIEW_REQUIRED"
)

// Status is the derived review-state bucket of a pull request.
type Status string

const (
	StatusApproved         Status = "APPROVED"
	StatusChangesRequested Status = "CHANGES_REQUESTED"
	StatusNeedsReview      Status = "NEEDS_REVIEW"
	StatusDraft            Status = "DRAFT"
	StatusUnknown          Status = "UNKNOWN"
)

// AllStatuses lists every bucket in display order.
var AllStatuses = []Status{
	StatusNeedsReview,
	StatusChangesRequested,
	StatusApproved,
	StatusDraft,
	StatusUnknown,
}

type Review struct {
	ID          string
	State       ReviewState
	Author      string
	SubmittedAt time.Time
}

type Repository struct {
	Name     string
	FullName string
	URL      string
}

// PullRequest holds the raw record returned by the data source plus the
// derived fields stamped by the core pipeline. Status, IsStale, IsPinned and
// IsRequestedReviewer are computed, not authoritative: they must be recomputed
// whenever reviews, the draft flag or the staleness threshold change.
type PullRequest struct {
	ID                 string
	Number             int
	Title              string
	URL                string
	IsDraft            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Author             string
	Repository         Repository
	RequestedReviewers []string
	Reviews            []Review
	ReviewDecision     ReviewDecision

	// Derived fields.
	Status              Status
	IsStale             bool
	IsPinned            bool
	IsRequestedReviewer bool
}
