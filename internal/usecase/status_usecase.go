// Package usecase defines the application use-case interfaces served by the
// HTTP delivery.
package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// CandidateStatus is a candidate's masked projection together with its full
// stage history, the shape served to the recruiter detail view and the
// candidate tracker page.
type CandidateStatus struct {
	Candidate entity.Projection      `json:"candidate"`
	Timeline  []entity.TimelineEntry `json:"timeline"`
}

// StatusUsecase covers the recruiter-facing pipeline operations.
type StatusUsecase interface {
	// ListCandidates returns every candidate's masked projection, timeline
	// excluded.
	ListCandidates(ctx context.Context) ([]entity.Projection, error)

	// GetCandidate returns one candidate's projection and timeline.
	GetCandidate(ctx context.Context, id string) (*CandidateStatus, error)

	// UpdateStage moves a candidate to a new stage. This is the path behind
	// the dashboard's drag-and-drop.
	UpdateStage(ctx context.Context, id string, stage string) error
}
