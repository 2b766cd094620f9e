package pulledge

// startReset animates the drag view back to its resting position.
// A reset already in progress is canceled first, so the animator never
// holds more than one set of callbacks.
func (v *ScrollView) startReset() {
	if v.target == nil {
		return
	}
	if v.isReset || v.anim.Running() {
		v.cancelReset()
	}
	v.isReset = true
	v.anim.Start(v.target.ScrollY(), 0, v.cfg.ResetDuration.Duration, v.onResetTick, nil)
}

func (v *ScrollView) onResetTick(value int) {
	v.target.ScrollTo(value)
	v.notify(v.target.ScrollY() + v.container.ScrollY())
	if v.target.ScrollY() == 0 {
		v.isReset = false
	}
}

// cancelReset stops the reset animation and leaves the drag view where it is.
func (v *ScrollView) cancelReset() {
	v.anim.Cancel()
	v.isReset = false
}
