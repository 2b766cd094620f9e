package pulledge

import (
	"time"

	"github.com/esimov/pulledge/utils"
)

// Animator drives a timed transition between two integer values.
// Implementations must not invoke the callbacks of a run after it has been canceled.
type Animator interface {
	Start(from, to int, d time.Duration, onTick func(v int), onEnd func())
	Cancel()
	Running() bool
}

// Clock provides the current animation time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

var _ Animator = (*ValueAnimator)(nil)

// ValueAnimator interpolates an integer value over time. It does not own a timer:
// the host advances it by calling Tick, usually once per rendered frame.
type ValueAnimator struct {
	clock  Clock
	interp Interpolator

	from, to int
	duration time.Duration
	start    time.Time
	onTick   func(int)
	onEnd    func()
	running  bool
}

// NewValueAnimator creates an animator reading the time from clock.
// A nil interpolator falls back to AccelerateDecelerate.
func NewValueAnimator(clock Clock, interp Interpolator) *ValueAnimator {
	if clock == nil {
		clock = SystemClock
	}
	if interp == nil {
		interp = AccelerateDecelerate
	}
	return &ValueAnimator{clock: clock, interp: interp}
}

// Start begins a new animation from the value from to the value to, canceling the running one.
// The start value is delivered synchronously to onTick.
func (a *ValueAnimator) Start(from, to int, d time.Duration, onTick func(v int), onEnd func()) {
	a.Cancel()

	a.from, a.to = from, to
	a.duration = d
	a.start = a.clock.Now()
	a.onTick, a.onEnd = onTick, onEnd
	a.running = true

	a.Tick(a.start)
}

// Cancel stops the animation without delivering any further value.
func (a *ValueAnimator) Cancel() {
	if !a.running {
		return
	}
	a.running = false
	a.onTick, a.onEnd = nil, nil
}

// Running reports whether an animation is in progress.
func (a *ValueAnimator) Running() bool {
	return a.running
}

// Tick advances the animation to the time now and reports whether it is still running.
// The last tick delivers exactly the target value, followed by the end callback.
func (a *ValueAnimator) Tick(now time.Time) bool {
	if !a.running {
		return false
	}
	fraction := 1.0
	if a.duration > 0 {
		fraction = utils.Clamp(float64(now.Sub(a.start))/float64(a.duration), 0, 1)
	}
	value := a.to
	if fraction < 1 {
		value = a.from + int(a.interp(fraction)*float64(a.to-a.from))
	}

	onTick, onEnd := a.onTick, a.onEnd
	done := fraction >= 1
	if done {
		a.running = false
		a.onTick, a.onEnd = nil, nil
	}
	if onTick != nil {
		onTick(value)
	}
	if done && onEnd != nil {
		onEnd()
	}
	return a.running
}
