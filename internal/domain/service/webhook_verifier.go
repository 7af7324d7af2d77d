package service

// WebhookVerifier authenticates inbound webhook deliveries against the
// shared signing secret.
type WebhookVerifier interface {
	// Enabled reports whether a signing secret is configured. Ingestion must
	// be explicitly enabled; without a secret the endpoint refuses service
	// rather than accepting unsigned events.
	Enabled() bool

	// Verify computes the keyed MAC over the exact raw request body bytes
	// and compares it against the provided signature in constant time.
	Verify(rawBody []byte, providedSignature string) bool

	// Sign computes the signature for a body. Used by tests and local
	// tooling to produce valid deliveries.
	Sign(rawBody []byte) string
}
