package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

type webhookService struct {
	verifier  service.WebhookVerifier
	eventRepo repository.ProcessedEventRepository
	logger    *slog.Logger
}

// NewWebhookService creates the ATS webhook ingestion service.
func NewWebhookService(
	verifier service.WebhookVerifier,
	eventRepo repository.ProcessedEventRepository,
	logger *slog.Logger,
) usecase.WebhookUsecase {
	return &webhookService{
		verifier:  verifier,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *webhookService) Ingest(ctx context.Context, rawBody []byte, signature string, eventID string) (*usecase.IngestResult, error) {
	if signature == "" {
		return nil, domainerrors.ErrMissingSignature
	}
	if eventID == "" {
		return nil, domainerrors.ErrMissingEventID
	}

	// Without a configured secret, ingestion is disabled outright: never
	// silently accept unsigned events.
	if !s.verifier.Enabled() {
		return nil, domainerrors.ErrWebhookNotConfigured
	}

	if !s.verifier.Verify(rawBody, signature) {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("webhook signature mismatch", slog.String("event_id", eventID))

		return nil, domainerrors.ErrInvalidSignature
	}

	fresh, err := s.eventRepo.MarkProcessed(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "mark event processed")
	}

	// A redelivered event is a success, not an error: the sender retried
	// and the contract is idempotent from its point of view. Applying the
	// event's effect to the candidate store hangs off the fresh branch.
	return &usecase.IngestResult{Deduplicated: !fresh}, nil
}
