package gioview

import (
	"image"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/esimov/pulledge"
)

// inf is the maximum height offered to the content, which is measured unconstrained.
const inf = 1e6

// View is a vertically scrollable Gio widget whose content can be pulled past the scroll edges.
type View struct {
	Scroller Scroller
	Offset   Offset

	anim       *FrameAnimator
	core       *pulledge.ScrollView
	translator Translator
	// nativeY is the last position of the tracked pointer seen by the native scroll.
	nativeY int
}

// NewView creates a pull edge view. A nil configuration selects pulledge.DefaultConfig.
func NewView(cfg *pulledge.Config) (*View, error) {
	if cfg == nil {
		cfg = pulledge.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	interp, err := pulledge.EasingByName(cfg.Easing)
	if err != nil {
		return nil, err
	}
	v := new(View)
	v.anim = NewFrameAnimator(interp)
	v.core = pulledge.NewScrollView(&v.Scroller, &v.Offset, v.anim, cfg)
	v.Scroller.allowOverScroll = v.core.AllowOverScroll
	v.Scroller.onChange = v.core.OnScrollChanged
	return v, nil
}

// ScrollView returns the gesture state machine driving the view.
func (v *View) ScrollView() *pulledge.ScrollView {
	return v.core
}

// SetOnScrollListener replaces the listener notified with the combined scroll position.
func (v *View) SetOnScrollListener(l pulledge.ScrollListener) {
	v.core.SetOnScrollListener(l)
}

// Layout lays out w, measured without a height limit, inside the viewport given by the constraints.
func (v *View) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	v.anim.begin(gtx)

	macro := op.Record(gtx.Ops)
	cgtx := gtx
	cgtx.Constraints.Min.Y = 0
	cgtx.Constraints.Max.Y = inf
	dims := w(cgtx)
	call := macro.Stop()

	viewport := gtx.Constraints.Max
	v.Offset.height = dims.Size.Y
	v.Scroller.setExtents(viewport.Y, dims.Size.Y)

	v.update(gtx)
	v.anim.Layout(gtx)

	defer clip.Rect(image.Rectangle{Max: viewport}).Push(gtx.Ops).Pop()
	pointer.InputOp{
		Tag:   v,
		Grab:  v.core.Dragging(),
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
		ScrollBounds: image.Rectangle{
			Min: image.Pt(0, -v.Scroller.ScrollY()),
			Max: image.Pt(0, v.Scroller.MaxScrollY()-v.Scroller.ScrollY()),
		},
	}.Add(gtx.Ops)

	trans := op.Offset(image.Pt(0, -v.core.CombinedScrollY())).Push(gtx.Ops)
	call.Add(gtx.Ops)
	trans.Pop()

	return layout.Dimensions{Size: viewport}
}

// update processes the pointer events delivered since the last frame.
func (v *View) update(gtx layout.Context) {
	for _, e := range gtx.Events(v) {
		pe, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		if pe.Type == pointer.Scroll {
			v.Scroller.ScrollBy(int(pe.Scroll.Y))
			continue
		}
		ev, ok := v.translator.Translate(pe)
		if !ok {
			continue
		}
		v.core.OnTouchEvent(ev)
		v.nativeScroll(ev)
	}
}

// nativeScroll is the default handling of the container, run after the
// drag view had its chance to intercept the event.
func (v *View) nativeScroll(ev pulledge.MotionEvent) {
	idx := ev.FindPointerIndex(v.core.ActivePointer())
	if idx == -1 {
		return
	}
	y := ev.Y(idx)
	switch ev.Action {
	case pulledge.ActionMove:
		v.Scroller.ScrollBy(v.nativeY - y)
		v.nativeY = y
	case pulledge.ActionDown, pulledge.ActionPointerDown, pulledge.ActionPointerUp:
		v.nativeY = y
	}
}
