package page

import (
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// DefaultPulseDelay is how long the counter display stays enlarged after an increment.
const DefaultPulseDelay = 150 * time.Millisecond

// PulseScale is the display scale while a pulse is active.
const PulseScale = 1.3

// Counter is the page's click counter. Its value lives only as long as the session.
type Counter struct {
	value      int
	pulsing    bool
	scheduler  ports.Scheduler
	pulseDelay time.Duration
}

// NewCounter creates a counter at zero.
func NewCounter(scheduler ports.Scheduler, pulseDelay time.Duration) *Counter {
	if pulseDelay <= 0 {
		pulseDelay = DefaultPulseDelay
	}
	return &Counter{scheduler: scheduler, pulseDelay: pulseDelay}
}

// Increment adds one and starts a pulse. Each increment schedules its own
// return to normal scale; earlier ones are never cancelled.
func (c *Counter) Increment() int {
	c.value++
	c.pulsing = true
	c.scheduler.AfterFunc(c.pulseDelay, func() {
		c.pulsing = false
	})
	return c.value
}

// Reset sets the counter back to zero without a pulse.
func (c *Counter) Reset() {
	c.value = 0
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// Display returns the text shown for the counter.
func (c *Counter) Display() string {
	return strconv.Itoa(c.value)
}

// Pulsing reports whether the display is currently enlarged.
func (c *Counter) Pulsing() bool {
	return c.pulsing
}

// Scale returns the display scale.
func (c *Counter) Scale() float64 {
	if c.pulsing {
		return PulseScale
	}
	return 1
}
