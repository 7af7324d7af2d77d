package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"tracker/config"
	"tracker/internal/domain/service"
)

// hmacVerifier authenticates webhook bodies with HMAC-SHA256 over the exact
// raw request bytes, hex-encoded.
type hmacVerifier struct {
	secret []byte
}

// NewHMACVerifier is the constructor for hmacVerifier. An empty webhook
// secret produces a disabled verifier; ingestion must be explicitly enabled.
func NewHMACVerifier(cfg *config.Config) service.WebhookVerifier {
	return &hmacVerifier{secret: []byte(cfg.Webhook.Secret)}
}

func (v *hmacVerifier) Enabled() bool {
	return len(v.secret) > 0
}

func (v *hmacVerifier) Sign(rawBody []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(rawBody)

	return hex.EncodeToString(mac.Sum(nil))
}

func (v *hmacVerifier) Verify(rawBody []byte, providedSignature string) bool {
	if !v.Enabled() {
		return false
	}

	expected := v.Sign(rawBody)

	// Length check first, then constant-time compare: a naive equality on
	// signatures leaks mismatch position through timing.
	if len(providedSignature) != len(expected) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(providedSignature), []byte(expected)) == 1
}
