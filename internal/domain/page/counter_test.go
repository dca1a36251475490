package page

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/clock"
)

func TestCounterIncrementAndReset(t *testing.T) {
	c := NewCounter(clock.NewVirtual(), 0)
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, "0", c.Display())

	ops := []string{"inc", "inc", "inc", "reset", "inc", "inc", "reset", "reset", "inc"}
	expected := 0
	for _, op := range ops {
		if op == "inc" {
			expected++
			assert.Equal(t, expected, c.Increment())
		} else {
			expected = 0
			c.Reset()
		}
		assert.Equal(t, expected, c.Value())
		assert.Equal(t, strconv.Itoa(c.Value()), c.Display())
	}
}

func TestCounterPulseEndsAfterDelay(t *testing.T) {
	vc := clock.NewVirtual()
	c := NewCounter(vc, 0)

	c.Increment()
	assert.True(t, c.Pulsing())
	assert.Equal(t, PulseScale, c.Scale())

	vc.Advance(DefaultPulseDelay - time.Millisecond)
	assert.True(t, c.Pulsing())

	vc.Advance(time.Millisecond)
	assert.False(t, c.Pulsing())
	assert.Equal(t, 1.0, c.Scale())
	assert.Equal(t, 1, c.Value(), "pulse never touches the value")
}

func TestCounterOverlappingPulsesAreNotCancelled(t *testing.T) {
	vc := clock.NewVirtual()
	c := NewCounter(vc, 0)

	c.Increment()
	vc.Advance(100 * time.Millisecond)
	c.Increment()
	assert.Equal(t, 2, vc.Pending())

	// The first reset still fires at 150ms even though the second pulse began at 100ms.
	vc.Advance(50 * time.Millisecond)
	assert.False(t, c.Pulsing())
	assert.Equal(t, 1, vc.Pending())

	vc.Advance(100 * time.Millisecond)
	assert.False(t, c.Pulsing())
	assert.Equal(t, 0, vc.Pending())
	assert.Equal(t, 2, c.Value())
}

func TestCounterResetDoesNotPulse(t *testing.T) {
	vc := clock.NewVirtual()
	c := NewCounter(vc, 0)

	c.Reset()
	assert.False(t, c.Pulsing())
	assert.Equal(t, 0, vc.Pending())
}

func TestCounterCustomPulseDelay(t *testing.T) {
	vc := clock.NewVirtual()
	c := NewCounter(vc, time.Second)

	c.Increment()
	vc.Advance(DefaultPulseDelay)
	assert.True(t, c.Pulsing())
	vc.Advance(time.Second)
	assert.False(t, c.Pulsing())
}
