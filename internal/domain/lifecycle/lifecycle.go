// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (server
// drain, DB ping, connection close).
const DefaultTimeout = 10 * time.Second
