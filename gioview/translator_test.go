package gioview

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/esimov/pulledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(typ pointer.Type, id pointer.ID, y float32) pointer.Event {
	return pointer.Event{
		Type:      typ,
		Source:    pointer.Touch,
		PointerID: id,
		Position:  f32.Pt(50, y),
	}
}

func TestTranslator_MultiTouchSequence(t *testing.T) {
	assert := assert.New(t)
	var tr Translator

	ev, ok := tr.Translate(touch(pointer.Press, 3, 100))
	require.True(t, ok)
	assert.Equal(pulledge.ActionDown, ev.Action)
	assert.Equal([]pulledge.Pointer{{ID: 3, Y: 100}}, ev.Pointers)

	ev, ok = tr.Translate(touch(pointer.Press, 5, 200))
	require.True(t, ok)
	assert.Equal(pulledge.ActionPointerDown, ev.Action)
	assert.Equal(1, ev.ActionIndex)
	assert.Equal(5, ev.PointerID(ev.ActionIndex))

	ev, ok = tr.Translate(touch(pointer.Drag, 5, 210))
	require.True(t, ok)
	assert.Equal(pulledge.ActionMove, ev.Action)
	assert.Equal([]pulledge.Pointer{{ID: 3, Y: 100}, {ID: 5, Y: 210}}, ev.Pointers)

	ev, ok = tr.Translate(touch(pointer.Release, 3, 104))
	require.True(t, ok)
	assert.Equal(pulledge.ActionPointerUp, ev.Action)
	assert.Equal(0, ev.ActionIndex)
	assert.Equal(2, ev.PointerCount(), "the lifted pointer is part of its own event")
	assert.Equal(1, tr.Down())

	ev, ok = tr.Translate(touch(pointer.Release, 5, 212))
	require.True(t, ok)
	assert.Equal(pulledge.ActionUp, ev.Action)
	assert.Equal(212, ev.Y(0))
	assert.Equal(0, tr.Down())
}

func TestTranslator_IgnoresUnrelatedEvents(t *testing.T) {
	var tr Translator

	for _, e := range []pointer.Event{
		touch(pointer.Drag, 1, 10),
		touch(pointer.Release, 1, 10),
		touch(pointer.Cancel, 1, 10),
		touch(pointer.Move, 1, 10),
		touch(pointer.Enter, 1, 10),
	} {
		_, ok := tr.Translate(e)
		assert.False(t, ok, e.Type.String())
	}

	_, ok := tr.Translate(touch(pointer.Press, 1, 10))
	assert.True(t, ok)
	_, ok = tr.Translate(touch(pointer.Press, 1, 12))
	assert.False(t, ok, "a second press of the same pointer")
}

func TestTranslator_CancelReleasesEveryPointer(t *testing.T) {
	var tr Translator

	tr.Translate(touch(pointer.Press, 1, 10))
	tr.Translate(touch(pointer.Press, 2, 20))

	ev, ok := tr.Translate(touch(pointer.Cancel, 0, 0))
	require.True(t, ok)
	assert.Equal(t, pulledge.ActionCancel, ev.Action)
	assert.Equal(t, 2, ev.PointerCount())
	assert.Equal(t, 0, tr.Down())
}

func TestTranslator_EventsAreSnapshots(t *testing.T) {
	var tr Translator

	first, _ := tr.Translate(touch(pointer.Press, 1, 10))
	tr.Translate(touch(pointer.Drag, 1, 40))

	assert.Equal(t, 10, first.Y(0))
}
