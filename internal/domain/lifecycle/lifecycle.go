// Package lifecycle holds shared shutdown constants used by deliveries and
// infra components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, the scheduler and
// infra connections.
const DefaultTimeout = 10 * time.Second
