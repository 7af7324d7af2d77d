// Package memory provides the in-memory implementations of the persistence
// interfaces. The candidate store is process-local state seeded once at
// startup; a persistent backing store can replace it behind the same
// repository contract.
package memory

import (
	"context"
	"sync"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"

	"github.com/pkg/errors"
)

type candidateRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entity.Candidate
	order  []string // seed insertion order, used for listing
	policy repository.TransitionPolicy
	now    func() time.Time
}

// NewCandidateRepository creates an empty store with the permissive
// transition policy.
func NewCandidateRepository() repository.CandidateRepository {
	return NewCandidateRepositoryWithPolicy(repository.PermitAll)
}

// NewCandidateRepositoryWithPolicy creates an empty store with a custom
// transition policy.
func NewCandidateRepositoryWithPolicy(policy repository.TransitionPolicy) repository.CandidateRepository {
	return &candidateRepository{
		byID:   make(map[string]*entity.Candidate),
		policy: policy,
		now:    time.Now,
	}
}

// Seed loads the initial candidate set, replacing any previous contents.
func (r *candidateRepository) Seed(_ context.Context, candidates []*entity.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]*entity.Candidate, len(candidates))
	r.order = make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.ID == "" {
			return errors.New("candidate with empty id")
		}
		if _, exists := r.byID[candidate.ID]; exists {
			return errors.Errorf("duplicate candidate id %q", candidate.ID)
		}
		if len(candidate.Timeline) == 0 {
			return errors.Errorf("candidate %q seeded with empty timeline", candidate.ID)
		}

		r.byID[candidate.ID] = candidate.Clone()
		r.order = append(r.order, candidate.ID)
	}

	return nil
}

func (r *candidateRepository) FindByID(_ context.Context, id string) (*entity.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidate, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrCandidateNotFound
	}

	return candidate.Clone(), nil
}

func (r *candidateRepository) ListAll(_ context.Context) ([]entity.Projection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projections := make([]entity.Projection, 0, len(r.order))
	for _, id := range r.order {
		projections = append(projections, r.byID[id].Project())
	}

	return projections, nil
}

// UpdateStage performs validate, lookup, mutate and timeline append under a
// single lock, so concurrent updates for the same candidate cannot leave the
// timeline's last entry disagreeing with the current stage.
func (r *candidateRepository) UpdateStage(_ context.Context, id string, newStage entity.Stage) error {
	if !newStage.IsValid() {
		return repository.ErrInvalidStage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	candidate, ok := r.byID[id]
	if !ok {
		return repository.ErrCandidateNotFound
	}

	if !r.policy(candidate.Stage, newStage) {
		return repository.ErrTransitionDenied
	}

	candidate.Stage = newStage
	candidate.Timeline = append(candidate.Timeline, entity.TimelineEntry{
		Stage:     newStage,
		Timestamp: r.now(),
	})

	return nil
}

func (r *candidateRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
