package usecase

import "context"

// IngestResult reports the outcome of a successful webhook ingestion.
type IngestResult struct {
	// Deduplicated is true when the event id was already processed. Senders
	// retry; a redelivery is a success from their point of view, not an
	// error.
	Deduplicated bool
}

// WebhookUsecase is the authenticated, idempotent intake path for
// externally-sourced status-change events.
type WebhookUsecase interface {
	// Ingest authenticates a delivery by its signature over the exact raw
	// body bytes, then deduplicates by event id.
	Ingest(ctx context.Context, rawBody []byte, signature string, eventID string) (*IngestResult, error)
}
