package auth

import (
	"testing"

	"tracker/config"

	"github.com/stretchr/testify/assert"
)

func newTestVerifier(secret string) *hmacVerifier {
	cfg := &config.Config{}
	cfg.Webhook.Secret = secret

	return NewHMACVerifier(cfg).(*hmacVerifier)
}

func TestHMACVerifier_SignRoundTrip(t *testing.T) {
	v := newTestVerifier("webhook-secret")
	body := []byte(`{"event_id":"evt-1","status":"offer_extended"}`)

	sig := v.Sign(body)
	assert.True(t, v.Verify(body, sig))
}

func TestHMACVerifier_SingleByteFlipRejected(t *testing.T) {
	v := newTestVerifier("webhook-secret")
	body := []byte(`{"event_id":"evt-1"}`)
	sig := v.Sign(body)

	// Flipping any one byte of a valid signature must fail verification.
	for i := range sig {
		flipped := []byte(sig)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		assert.False(t, v.Verify(body, string(flipped)), "flip at %d should be rejected", i)
	}
}

func TestHMACVerifier_LengthMismatchRejected(t *testing.T) {
	v := newTestVerifier("webhook-secret")
	body := []byte(`{"event_id":"evt-1"}`)
	sig := v.Sign(body)

	assert.False(t, v.Verify(body, sig[:len(sig)-1]))
	assert.False(t, v.Verify(body, sig+"00"))
	assert.False(t, v.Verify(body, ""))
}

func TestHMACVerifier_DifferentBodyRejected(t *testing.T) {
	v := newTestVerifier("webhook-secret")
	sig := v.Sign([]byte(`{"event_id":"evt-1"}`))

	assert.False(t, v.Verify([]byte(`{"event_id":"evt-2"}`), sig))
}

func TestHMACVerifier_Disabled(t *testing.T) {
	v := newTestVerifier("")

	assert.False(t, v.Enabled())
	assert.False(t, v.Verify([]byte("{}"), v.Sign([]byte("{}"))))
}
