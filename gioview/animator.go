package gioview

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"github.com/esimov/pulledge"
)

// FrameAnimator advances a value animation with the Gio frame clock.
type FrameAnimator struct {
	*pulledge.ValueAnimator
	now time.Time
}

// NewFrameAnimator creates an animator whose time is the time of the frame being laid out.
func NewFrameAnimator(interp pulledge.Interpolator) *FrameAnimator {
	a := new(FrameAnimator)
	a.ValueAnimator = pulledge.NewValueAnimator(pulledge.ClockFunc(func() time.Time {
		return a.now
	}), interp)
	return a
}

// begin sets the animation time for the current frame.
// It must be called before the frame events are processed.
func (a *FrameAnimator) begin(gtx layout.Context) {
	a.now = gtx.Now
}

// Layout advances the animation to the frame time and schedules
// a new frame while the animation is running.
func (a *FrameAnimator) Layout(gtx layout.Context) {
	a.now = gtx.Now
	if a.Tick(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
}
