package pulledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedistribute_DampsGrowingDisplacement(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		offset, delta, applied int
	}{
		{offset: -10, delta: -10, applied: -5},
		{offset: 10, delta: 10, applied: 5},
		{offset: 10, delta: 3, applied: 1},
		{offset: -10, delta: -1, applied: 0},
		{offset: 1, delta: 40, applied: 20},
	}
	for _, c := range cases {
		f := newFixture(0, nil)
		f.target.scrollY = c.offset
		f.view.isBeingDragged = true

		applied := f.view.applyDelta(c.delta)
		assert.Equal(c.applied, applied, "offset %d, delta %d", c.offset, c.delta)
		assert.Equal(c.offset+c.applied, f.target.scrollY)
		assert.True(f.view.Dragging())
	}
}

func TestRedistribute_UndampedWhenReturningToRest(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		offset, delta int
	}{
		{offset: -15, delta: 5},
		{offset: 12, delta: -4},
		{offset: -3, delta: 2},
		// An offset at rest is never an obstacle.
		{offset: 0, delta: -10},
		{offset: 0, delta: 7},
	}
	for _, c := range cases {
		f := newFixture(0, nil)
		f.target.scrollY = c.offset
		f.view.isBeingDragged = true

		assert.Equal(c.delta, f.view.applyDelta(c.delta), "offset %d, delta %d", c.offset, c.delta)
		assert.Equal(c.offset+c.delta, f.target.scrollY)
	}
}

func TestRedistribute_SnapsToRestInsteadOfOvershooting(t *testing.T) {
	assert := assert.New(t)

	for offset := -30; offset <= 30; offset++ {
		if offset == 0 {
			continue
		}
		for _, extra := range []int{0, 1, 5, 50} {
			// A delta pointing back to rest, large enough to reach or cross it.
			delta := -offset
			if offset > 0 {
				delta -= extra
			} else {
				delta += extra
			}
			f := newFixture(0, nil)
			f.target.scrollY = offset
			f.view.isBeingDragged = true

			applied := f.view.applyDelta(delta)
			assert.Equal(-offset, applied, "offset %d, delta %d", offset, delta)
			assert.Equal(0, f.target.scrollY)
			assert.False(f.view.Dragging(), "reaching rest should stop the drag")
		}
	}
}

func TestRedistribute_NotifiesCombinedPosition(t *testing.T) {
	f := newFixture(maxScrollY, nil)
	f.target.scrollY = 4
	f.view.isBeingDragged = true

	f.view.applyDelta(6)
	f.view.applyDelta(-2)

	assert.Equal(t, []int{maxScrollY + 7, maxScrollY + 5}, f.scrolls)
}

func TestRedistribute_UsesConfiguredDampingRatio(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DampingRatio = 0.25

	f := newFixture(0, cfg)
	f.target.scrollY = -4
	f.view.isBeingDragged = true

	assert.Equal(t, -5, f.view.applyDelta(-20))
	assert.Equal(t, -9, f.target.scrollY)
}
