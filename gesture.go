package pulledge

import "github.com/esimov/pulledge/utils"

// OnTouchEvent updates the gesture state from a pointer event and redirects the drag to the
// drag view when the container is at one of its scroll edges. It reports whether the event
// changed the drag view offset. The host should still run its default event handling
// afterwards; AllowOverScroll tells whether that handling may move the container.
func (v *ScrollView) OnTouchEvent(ev MotionEvent) bool {
	switch ev.Action {
	case ActionDown:
		if ev.PointerCount() == 0 {
			return false
		}
		v.lastMotionY = ev.Y(0)
		v.activePointerID = ev.PointerID(0)
		if v.isReset {
			// Grabbing the drag view while it returns to rest resumes the drag from the current offset.
			v.cancelReset()
			v.isBeingDragged = true
		}
	case ActionMove:
		return v.onMove(ev)
	case ActionUp, ActionCancel:
		v.activePointerID = v.cfg.InvalidPointer
		v.lastMotionY = 0
		v.isBeingDragged = false
		if v.target != nil && v.target.ScrollY() != 0 {
			v.startReset()
		}
	case ActionPointerDown:
		idx := ev.ActionIndex
		if idx < 0 || idx >= ev.PointerCount() {
			return false
		}
		v.lastMotionY = ev.Y(idx)
		v.activePointerID = ev.PointerID(idx)
	case ActionPointerUp:
		v.onSecondaryPointerUp(ev)
	}
	return false
}

func (v *ScrollView) onMove(ev MotionEvent) bool {
	idx := ev.FindPointerIndex(v.activePointerID)
	if idx == -1 {
		return false
	}
	y := ev.Y(idx)
	if v.target == nil {
		v.lastMotionY = y
		return false
	}
	deltaY := v.lastMotionY - y

	scrollY := v.container.ScrollY()
	canDragUp := scrollY >= v.target.Height()-v.container.Height()
	canDragDown := scrollY == 0

	if !v.isBeingDragged {
		if (canDragUp && deltaY > 0) || (canDragDown && deltaY < 0) {
			if utils.Abs(deltaY) > 0 {
				v.isBeingDragged = true
				v.dragStartY = y
			}
		} else {
			v.lastMotionY = y
		}
	}
	if !v.isBeingDragged {
		return false
	}
	applied := v.applyDelta(deltaY)
	if applied != 0 {
		v.lastMotionY = y
	}
	return applied != 0
}

// onSecondaryPointerUp moves the tracking to another pointer when the tracked one is lifted.
func (v *ScrollView) onSecondaryPointerUp(ev MotionEvent) {
	idx := ev.ActionIndex
	if idx < 0 || idx >= ev.PointerCount() {
		return
	}
	if ev.PointerID(idx) == v.activePointerID {
		newIdx := 0
		if idx == 0 {
			newIdx = 1
		}
		if newIdx < ev.PointerCount() {
			v.activePointerID = ev.PointerID(newIdx)
		}
	}
	if i := ev.FindPointerIndex(v.activePointerID); i != -1 {
		v.lastMotionY = ev.Y(i)
	}
}

// ActivePointer returns the id of the tracked pointer, or the configured invalid pointer id.
func (v *ScrollView) ActivePointer() int {
	return v.activePointerID
}

// DragStartY returns the pointer position at which the last drag was activated.
func (v *ScrollView) DragStartY() int {
	return v.dragStartY
}
