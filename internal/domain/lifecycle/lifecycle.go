// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart / OnStop hook.
const DefaultTimeout = 10 * time.Second
