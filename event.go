package pulledge

import "fmt"

// Action is the kind of a MotionEvent.
type Action uint8

const (
	// ActionDown is sent when the first pointer touches the view.
	ActionDown Action = iota
	// ActionMove is sent when one or more pointers changed position.
	ActionMove
	// ActionUp is sent when the last pointer is lifted.
	ActionUp
	// ActionCancel aborts the current gesture.
	ActionCancel
	// ActionPointerDown is sent when a secondary pointer goes down.
	// ActionIndex identifies the new pointer.
	ActionPointerDown
	// ActionPointerUp is sent when a pointer is lifted while others stay down.
	// ActionIndex identifies the lifted pointer, which is still part of the event.
	ActionPointerUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionMove:
		return "Move"
	case ActionUp:
		return "Up"
	case ActionCancel:
		return "Cancel"
	case ActionPointerDown:
		return "PointerDown"
	case ActionPointerUp:
		return "PointerUp"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Pointer is the state of a single pointer within a MotionEvent.
type Pointer struct {
	ID int
	Y  float32
}

// MotionEvent describes a change of the pointers touching the view.
// Pointers lists every pointer currently down, in the order they went down.
type MotionEvent struct {
	Action      Action
	ActionIndex int
	Pointers    []Pointer
}

// PointerCount returns the number of pointers in the event.
func (e MotionEvent) PointerCount() int {
	return len(e.Pointers)
}

// PointerID returns the id of the pointer found at index.
func (e MotionEvent) PointerID(index int) int {
	return e.Pointers[index].ID
}

// Y returns the vertical coordinate, truncated to integer pixels, of the pointer found at index.
func (e MotionEvent) Y(index int) int {
	return int(e.Pointers[index].Y)
}

// FindPointerIndex returns the index of the pointer with the given id, or -1 if it is not part of the event.
func (e MotionEvent) FindPointerIndex(id int) int {
	for i, p := range e.Pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}
