// Package lifecycle holds shared lifecycle constants for server shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
