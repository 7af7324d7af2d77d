package impl

import (
	"context"
	"errors"
	"log/slog"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

type trackingService struct {
	candidateRepo repository.CandidateRepository
	tokenSvc      service.TrackTokenService
	cfg           *config.Config
	logger        *slog.Logger
}

// NewTrackingService creates the anonymous tracking-link service.
func NewTrackingService(
	candidateRepo repository.CandidateRepository,
	tokenSvc service.TrackTokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		candidateRepo: candidateRepo,
		tokenSvc:      tokenSvc,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *trackingService) ResolveToken(ctx context.Context, token string) (*usecase.CandidateStatus, error) {
	candidateID, err := s.tokenSvc.Verify(token)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("tracking token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidTrackToken
	}

	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			// Token was valid but the candidate has vanished from the
			// store; distinct from an invalid token.
			return nil, domainerrors.ErrCandidateNotFound
		}

		return nil, pkgerrors.Wrap(err, "find candidate for token")
	}

	return &usecase.CandidateStatus{
		Candidate: candidate.Project(),
		Timeline:  candidate.Timeline,
	}, nil
}

func (s *trackingService) IssueLink(ctx context.Context, candidateID string) (string, error) {
	// Only issue links for candidates that exist.
	if _, err := s.candidateRepo.FindByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return "", domainerrors.ErrCandidateNotFound
		}

		return "", pkgerrors.Wrap(err, "find candidate for link")
	}

	token, err := s.tokenSvc.Issue(candidateID, s.cfg.Track.TokenTTL)
	if err != nil {
		return "", pkgerrors.Wrap(err, "issue tracking token")
	}

	return token, nil
}
