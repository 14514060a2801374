package pins

import (
	"context"
	"encoding/json"
	"slices"

	"reviewdeck/internal/models"
	repo "reviewdeck/internal/repository"
	"reviewdeck/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RecordStore --output=../mocks --outpkg=mocks
type RecordStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, body []byte) error
}

// PinService maintains the persisted set of pinned pull-request identifiers.
// Reads fail closed: a missing or corrupt record behaves as an empty set and
// never surfaces an error to the caller.
type PinService struct {
	trm     service.TransactionManager
	records RecordStore
}

func NewPinService(trm service.TransactionManager, records RecordStore) *PinService {
	return &PinService{
		trm:     trm,
		records: records,
	}
}

// List returns the pinned identifiers in insertion order. Storage and parse
// failures degrade to an empty set.
func (s *PinService) List(ctx context.Context) []string {
	body, err := s.records.Get(ctx, repo.RecordPinnedIDs)
	if err != nil {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil {
		return []string{}
	}

	return ids
}

// Add pins an identifier. Idempotent: a no-op if already pinned.
func (s *PinService) Add(ctx context.Context, id string) error {
	ids := s.List(ctx)
	if slices.Contains(ids, id) {
		return nil
	}
	return s.save(ctx, append(ids, id))
}

// Remove unpins an identifier. Idempotent: a no-op if absent.
func (s *PinService) Remove(ctx context.Context, id string) error {
	ids := s.List(ctx)
	if !slices.Contains(ids, id) {
		return nil
	}
	return s.save(ctx, slices.DeleteFunc(ids, func(v string) bool { return v == id }))
}

// Toggle flips the pinned state of an identifier and returns the new state
// (true if it just became pinned). The read-modify-write runs inside a single
// transaction so concurrent toggles of the same identifier cannot lose an
// update.
func (s *PinService) Toggle(ctx context.Context, id string) (bool, error) {
	var pinned bool

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		ids := s.List(ctx)
		if slices.Contains(ids, id) {
			ids = slices.DeleteFunc(ids, func(v string) bool { return v == id })
			pinned = false
		} else {
			ids = append(ids, id)
			pinned = true
		}
		return s.save(ctx, ids)
	})
	if err != nil {
		return false, err
	}

	return pinned, nil
}

// ApplyTo stamps IsPinned on a copy of the collection by membership against
// List. The store itself is not modified.
func (s *PinService) ApplyTo(ctx context.Context, prs []models.PullRequest) []models.PullRequest {
	ids := s.List(ctx)

	out := make([]models.PullRequest, len(prs))
	for i, pr := range prs {
		pr.IsPinned = slices.Contains(ids, pr.ID)
		out[i] = pr
	}
	return out
}

func (s *PinService) save(ctx context.Context, ids []string) error {
	body, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.records.Save(ctx, repo.RecordPinnedIDs, body)
}
