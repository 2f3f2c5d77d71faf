// Package lifecycle holds shared lifecycle constants for startup and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup/shutdown operations such as store
// pings and HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
