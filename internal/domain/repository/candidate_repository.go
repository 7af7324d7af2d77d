// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for candidate persistence.
var (
	// ErrCandidateNotFound is returned when a candidate is not found.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrInvalidStage is returned when a stage outside the fixed set is supplied.
	ErrInvalidStage = errors.New("invalid stage")
	// ErrTransitionDenied is returned when the configured transition policy
	// rejects an otherwise valid stage change.
	ErrTransitionDenied = errors.New("stage transition denied")
)

// TransitionPolicy decides whether a stage change is allowed. The default is
// permissive (any-to-any, recruiters can correct mistakes); a stricter policy
// can be injected without touching the mutation path.
type TransitionPolicy func(from, to entity.Stage) bool

// PermitAll allows any stage to be set from any other stage.
func PermitAll(_, _ entity.Stage) bool {
	return true
}

// CandidateRepository is the authoritative store of candidate records. The
// in-memory implementation is the default; a persistent backing store slots
// in behind the same contract.
type CandidateRepository interface {
	// Seed loads the initial candidate set. Called once at startup.
	Seed(ctx context.Context, candidates []*entity.Candidate) error

	// FindByID retrieves a candidate with its full timeline.
	FindByID(ctx context.Context, id string) (*entity.Candidate, error)

	// ListAll returns masked projections of every candidate in store
	// iteration order, timeline excluded.
	ListAll(ctx context.Context) ([]entity.Projection, error)

	// UpdateStage validates newStage, sets it as the candidate's current
	// stage and appends a timeline entry, atomically. Every stage change in
	// the system funnels through here.
	UpdateStage(ctx context.Context, id string, newStage entity.Stage) error

	// Count reports the number of candidates in the store.
	Count(ctx context.Context) (int, error)
}
