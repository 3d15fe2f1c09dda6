// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart pings and OnStop shutdowns.
const DefaultTimeout = 10 * time.Second
