// Package lifecycle holds shared limits for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart ping and OnStop shutdown.
const DefaultTimeout = 10 * time.Second
