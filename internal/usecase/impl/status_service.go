package impl

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

type statusService struct {
	candidateRepo repository.CandidateRepository
}

// NewStatusService creates the recruiter-facing status service.
func NewStatusService(candidateRepo repository.CandidateRepository) usecase.StatusUsecase {
	return &statusService{candidateRepo: candidateRepo}
}

func (s *statusService) ListCandidates(ctx context.Context) ([]entity.Projection, error) {
	projections, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list candidates")
	}

	return projections, nil
}

func (s *statusService) GetCandidate(ctx context.Context, id string) (*usecase.CandidateStatus, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, domainerrors.ErrCandidateNotFound
		}

		return nil, pkgerrors.Wrap(err, "find candidate")
	}

	return &usecase.CandidateStatus{
		Candidate: candidate.Project(),
		Timeline:  candidate.Timeline,
	}, nil
}

func (s *statusService) UpdateStage(ctx context.Context, id string, stage string) error {
	if err := s.candidateRepo.UpdateStage(ctx, id, entity.Stage(stage)); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStage):
			return domainerrors.ErrMissingStage
		case errors.Is(err, repository.ErrCandidateNotFound):
			return domainerrors.ErrCandidateNotFound
		case errors.Is(err, repository.ErrTransitionDenied):
			return domainerrors.ErrMissingStage.WithDetails("transition not allowed")
		}

		return pkgerrors.Wrap(err, "update stage")
	}

	return nil
}
