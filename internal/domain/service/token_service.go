// Package service defines the interfaces for domain services implemented by
// the infra layer.
package service

import "time"

// TrackTokenService issues and verifies the signed, time-limited tokens that
// bind an anonymous tracking-link viewer to exactly one candidate.
type TrackTokenService interface {
	// Issue produces a signed token carrying the candidate id and an expiry
	// of now + ttl. Issuance normally happens in the notification dispatcher;
	// in-process callers are limited to the dev-only link route and tests.
	Issue(candidateID string, ttl time.Duration) (string, error)

	// Verify checks the token's signature, signing algorithm, expiry and
	// payload shape, and returns the bound candidate id. Every failure mode
	// collapses to the same opaque error; the reason is only logged.
	Verify(token string) (candidateID string, err error)
}
