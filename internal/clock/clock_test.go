package clock

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	c := New(3 * time.Second)
	if c.State() != StateCountdown || c.Remaining() != 3*time.Second {
		t.Fatal(c.State(), c.Remaining())
	}

	if started := c.Advance(time.Second); started {
		t.Fail()
	}
	if c.Remaining() != 2*time.Second || c.Now() != 0 {
		t.Log("remaining", c.Remaining(), "now", c.Now())
		t.Fail()
	}

	// The tick that crosses zero starts Running, and its remainder
	// becomes simulation time
	if started := c.Advance(2500 * time.Millisecond); !started {
		t.Fail()
	}
	if c.State() != StateRunning || c.Now() != 500*time.Millisecond {
		t.Log("state", c.State(), "now", c.Now())
		t.Fail()
	}
}

func TestZeroCountdown(t *testing.T) {
	c := New(0)
	if c.State() != StateRunning {
		t.Fatal(c.State())
	}
	c.Advance(time.Second)
	if c.Now() != time.Second {
		t.Fail()
	}
}

func TestPauseNeutrality(t *testing.T) {
	c := New(0)
	c.Advance(time.Second)
	if err := c.Pause(); nil != err {
		t.Fatal(err)
	}

	// No amount of paused ticks moves simulation time
	for i := 0; i < 100; i++ {
		c.Advance(time.Minute)
	}
	if c.Now() != time.Second {
		t.Log("now", c.Now())
		t.Fail()
	}

	if err := c.Resume(); nil != err {
		t.Fatal(err)
	}
	c.Advance(time.Second)
	if c.Now() != 2*time.Second {
		t.Log("now", c.Now())
		t.Fail()
	}
}

func TestIllegalTransitions(t *testing.T) {
	c := New(time.Second)
	if err := c.Pause(); nil == err {
		t.Log("paused the countdown")
		t.Fail()
	}
	if err := c.Resume(); nil == err {
		t.Log("resumed while not paused")
		t.Fail()
	}

	c.Advance(time.Second)
	if err := c.Pause(); nil != err {
		t.Fatal(err)
	}
	if err := c.Pause(); nil == err {
		t.Log("double pause")
		t.Fail()
	}

	if err := c.End(); nil != err {
		t.Fatal(err)
	}
	if err := c.End(); nil == err {
		t.Log("double end")
		t.Fail()
	}
	if c.Advance(time.Second); c.Now() != 0 {
		t.Log("advanced after end")
		t.Fail()
	}
}

func TestEndFromAnyLiveState(t *testing.T) {
	for _, setup := range []func(*SessionClock){
		func(c *SessionClock) {},                                    // countdown
		func(c *SessionClock) { c.Advance(time.Second) },            // running
		func(c *SessionClock) { c.Advance(time.Second); c.Pause() }, // paused
	} {
		c := New(time.Second)
		setup(c)
		if err := c.End(); nil != err {
			t.Log(err)
			t.Fail()
		}
		if c.State() != StateEnded {
			t.Fail()
		}
	}
}
