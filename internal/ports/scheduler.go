package ports

import "time"

// Scheduler runs deferred page actions. Actions are fire-and-forget: they
// cannot be cancelled, and two actions scheduled for overlapping windows both
// run. Implementations must run fn on the same sequential timeline as the
// events that scheduled it, never concurrently with them.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func())
}
