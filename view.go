package pulledge

// Container is the outer scrollable container hosting the drag view.
type Container interface {
	// ScrollY returns the current vertical scroll position.
	ScrollY() int
	// Height returns the height of the visible area.
	Height() int
}

// DragTarget is the child which gets offset once the container cannot scroll any further.
// Its scroll position is independent of, and additive to, the container scroll position.
type DragTarget interface {
	// Height returns the height of the content.
	Height() int
	ScrollY() int
	ScrollBy(dy int)
	ScrollTo(y int)
}

// ScrollView arbitrates the vertical drag gestures between a scrollable container and its drag view.
// When the container reaches one of its scroll edges, the remaining drag is redirected to the
// drag view offset, which is reset with an animation once the gesture ends.
//
// ScrollView is not safe for concurrent use: all the methods should be called from the
// goroutine delivering the UI events.
type ScrollView struct {
	container Container
	target    DragTarget
	anim      Animator
	cfg       Config

	listeners []ScrollListener

	lastMotionY     int
	activePointerID int
	isBeingDragged  bool
	isReset         bool
	dragStartY      int
}

// NewScrollView creates the state machine for the container. A nil target makes the
// view inert: the drag is never redirected and only the native scroll is reported.
// The animator is used for the reset animation; when nil, a ValueAnimator reading the
// system clock is created, in which case the host must call its Tick method.
// A nil configuration selects DefaultConfig.
func NewScrollView(container Container, target DragTarget, anim Animator, cfg *Config) *ScrollView {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if anim == nil {
		interp, err := EasingByName(cfg.Easing)
		if err != nil {
			interp = AccelerateDecelerate
		}
		anim = NewValueAnimator(SystemClock, interp)
	}
	return &ScrollView{
		container:       container,
		target:          target,
		anim:            anim,
		cfg:             *cfg,
		activePointerID: cfg.InvalidPointer,
	}
}

// Config returns the configuration in use.
func (v *ScrollView) Config() Config {
	return v.cfg
}

// Dragging reports whether the drag is redirected to the drag view.
func (v *ScrollView) Dragging() bool {
	return v.isBeingDragged
}

// Resetting reports whether the drag view is animating back to its resting position.
func (v *ScrollView) Resetting() bool {
	return v.isReset
}

// Offset returns the drag view offset, or 0 for an inert view.
func (v *ScrollView) Offset() int {
	if v.target == nil {
		return 0
	}
	return v.target.ScrollY()
}

// CombinedScrollY returns the container scroll position plus the drag view offset.
func (v *ScrollView) CombinedScrollY() int {
	return v.container.ScrollY() + v.Offset()
}

// OnScrollChanged should be called by the host every time the container scroll position changes.
func (v *ScrollView) OnScrollChanged(scrollY int) {
	v.notify(scrollY + v.Offset())
}

// AllowOverScroll reports whether the host may apply its native over-scroll step.
// It is suppressed while dragging or resetting, to keep the container from
// fighting the drag view offset.
func (v *ScrollView) AllowOverScroll() bool {
	return !v.isBeingDragged && !v.isReset
}
