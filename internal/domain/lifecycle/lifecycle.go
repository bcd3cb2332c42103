// Package lifecycle holds process lifecycle constants shared by servers and stores.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
