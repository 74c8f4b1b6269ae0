package clock

import (
	"fmt"
	"time"
)

type State uint8

const (
	StateCountdown State = iota
	StateRunning
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}

// SessionClock owns simulation time. Time accumulates only while
// Running; countdown and pause ticks never leak into it, which keeps
// note timing aligned with the audio that starts when Running begins.
type SessionClock struct {
	state     State
	remaining time.Duration // countdown remaining
	now       time.Duration // simulation time
}

func New(countdown time.Duration) *SessionClock {
	c := &SessionClock{
		state:     StateCountdown,
		remaining: countdown,
	}
	if countdown <= 0 {
		c.state = StateRunning
		c.remaining = 0
	}
	return c
}

func (c *SessionClock) State() State {
	return c.state
}

// Now is the simulation time, originating at 0 when Running began.
func (c *SessionClock) Now() time.Duration {
	return c.now
}

func (c *SessionClock) Remaining() time.Duration {
	return c.remaining
}

// Advance feeds elapsed wall time into the clock. It reports true on
// the tick that completes the countdown, so the caller can start audio.
// The countdown remainder of that tick carries into simulation time,
// no time is lost at the boundary.
func (c *SessionClock) Advance(dt time.Duration) bool {
	switch c.state {
	case StatePaused, StateEnded:
		return false
	case StateCountdown:
		if dt < c.remaining {
			c.remaining -= dt
			return false
		}
		c.now = dt - c.remaining
		c.remaining = 0
		c.state = StateRunning
		return true
	default:
		c.now += dt
		return false
	}
}

func (c *SessionClock) Pause() error {
	if c.state != StateRunning {
		return fmt.Errorf("cannot pause while %v", c.state)
	}
	c.state = StatePaused
	return nil
}

func (c *SessionClock) Resume() error {
	if c.state != StatePaused {
		return fmt.Errorf("cannot resume while %v", c.state)
	}
	c.state = StateRunning
	return nil
}

// End is legal from every live state; quitting out of the countdown or
// a pause is a clean abort.
func (c *SessionClock) End() error {
	if c.state == StateEnded {
		return fmt.Errorf("already ended")
	}
	c.state = StateEnded
	return nil
}
