package core

import "time"

// Clock is the time source used by Timer.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the monotonic wall clock.
var SystemClock Clock = systemClock{}

// Timer measures frame deltas and caps the frame rate by sleeping.
type Timer struct {
	clock  Clock
	last   time.Time
	target time.Duration
	delta  float64
}

func NewTimer(c Clock) *Timer {
	if c == nil {
		c = SystemClock
	}
	return &Timer{clock: c, last: c.Now()}
}

// DeltaTime returns seconds since the previous call and resets the reference
// point. Call it exactly once per frame.
func (t *Timer) DeltaTime() float64 {
	now := t.clock.Now()
	dt := now.Sub(t.last)
	t.last = now
	t.delta = dt.Seconds()
	return t.delta
}

// LastDelta is the value most recently returned by DeltaTime.
func (t *Timer) LastDelta() float64 { return t.delta }

// SetFPSLimit records a target period of 1/fps; fps <= 0 disables limiting.
func (t *Timer) SetFPSLimit(fps int) {
	if fps <= 0 {
		t.target = 0
		return
	}
	t.target = time.Duration(float64(time.Second) / float64(fps))
}

// FrameBudget is the target frame period, 0 when unlimited.
func (t *Timer) FrameBudget() time.Duration { return t.target }

// ApplyFPSLimit sleeps for the rest of the frame budget given the measured
// frame time in seconds and returns how long it slept. It never sleeps when
// the limit is disabled or the frame overran.
func (t *Timer) ApplyFPSLimit(measured float64) time.Duration {
	if t.target <= 0 {
		return 0
	}
	rest := t.target - time.Duration(measured*float64(time.Second))
	if rest <= 0 {
		return 0
	}
	t.clock.Sleep(rest)
	return rest
}
