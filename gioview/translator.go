package gioview

import (
	"gioui.org/io/pointer"
	"github.com/esimov/pulledge"
)

// Translator converts the per-pointer Gio events into motion events describing
// every pointer currently down. Gio reports each finger separately, so the
// translator keeps the ordered list of down pointers between events.
type Translator struct {
	pointers []pulledge.Pointer
}

// Translate returns the motion event corresponding to e. The second return value
// is false for events which do not affect the gesture (hover, scroll wheel, unknown pointers).
func (t *Translator) Translate(e pointer.Event) (pulledge.MotionEvent, bool) {
	id, y := int(e.PointerID), e.Position.Y

	switch e.Type {
	case pointer.Press:
		if t.index(id) != -1 {
			// Another button of an already pressed mouse.
			return pulledge.MotionEvent{}, false
		}
		t.pointers = append(t.pointers, pulledge.Pointer{ID: id, Y: y})
		action := pulledge.ActionDown
		if len(t.pointers) > 1 {
			action = pulledge.ActionPointerDown
		}
		return t.event(action, len(t.pointers)-1), true
	case pointer.Drag:
		i := t.index(id)
		if i == -1 {
			return pulledge.MotionEvent{}, false
		}
		t.pointers[i].Y = y
		return t.event(pulledge.ActionMove, i), true
	case pointer.Release:
		i := t.index(id)
		if i == -1 {
			return pulledge.MotionEvent{}, false
		}
		t.pointers[i].Y = y
		action := pulledge.ActionPointerUp
		if len(t.pointers) == 1 {
			action = pulledge.ActionUp
		}
		ev := t.event(action, i)
		t.pointers = append(t.pointers[:i], t.pointers[i+1:]...)
		return ev, true
	case pointer.Cancel:
		if len(t.pointers) == 0 {
			return pulledge.MotionEvent{}, false
		}
		ev := t.event(pulledge.ActionCancel, 0)
		t.pointers = t.pointers[:0]
		return ev, true
	}
	return pulledge.MotionEvent{}, false
}

// Down returns the number of pointers currently down.
func (t *Translator) Down() int {
	return len(t.pointers)
}

func (t *Translator) index(id int) int {
	for i, p := range t.pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// event snapshots the pointer list, which is mutated by the following events.
func (t *Translator) event(action pulledge.Action, index int) pulledge.MotionEvent {
	pointers := make([]pulledge.Pointer, len(t.pointers))
	copy(pointers, t.pointers)
	return pulledge.MotionEvent{
		Action:      action,
		ActionIndex: index,
		Pointers:    pointers,
	}
}
