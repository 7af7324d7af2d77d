package usecase

import "context"

// TrackingUsecase serves the anonymous "track my application" flow.
type TrackingUsecase interface {
	// ResolveToken verifies a tracking token and returns the bound
	// candidate's status. Verification failures are opaque to the caller.
	ResolveToken(ctx context.Context, token string) (*CandidateStatus, error)

	// IssueLink creates a fresh tracking token for a candidate. Production
	// issuance belongs to the notification dispatcher; this exists for the
	// dev-only link route and tests.
	IssueLink(ctx context.Context, candidateID string) (string, error)
}
