package repository

import "context"

// ProcessedEventRepository tracks webhook event identifiers that have already
// been applied, so redelivered events are acknowledged without re-applying.
type ProcessedEventRepository interface {
	// MarkProcessed records eventID if it has not been seen within the
	// retention window. Returns true when the event is new, false when it is
	// a duplicate. The check and the insert are a single atomic operation:
	// two concurrent deliveries of the same event can never both see true.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}
