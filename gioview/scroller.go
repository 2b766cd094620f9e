package gioview

import (
	"github.com/esimov/pulledge"
	"github.com/esimov/pulledge/utils"
)

var (
	_ pulledge.Container  = (*Scroller)(nil)
	_ pulledge.DragTarget = (*Offset)(nil)
)

// Scroller holds the native scroll state of the container.
type Scroller struct {
	scrollY  int
	viewport int
	content  int

	// allowOverScroll gates the native scroll; nil allows it.
	allowOverScroll func() bool
	onChange        func(scrollY int)
}

// ScrollY returns the native scroll position.
func (s *Scroller) ScrollY() int { return s.scrollY }

// Height returns the viewport height.
func (s *Scroller) Height() int { return s.viewport }

// MaxScrollY returns the largest native scroll position.
func (s *Scroller) MaxScrollY() int {
	return utils.Max(0, s.content-s.viewport)
}

// ScrollBy scrolls the container by dy, clamped to the content bounds, and
// reports whether the position changed. Nothing happens while the over-scroll
// step is suppressed by the drag view.
func (s *Scroller) ScrollBy(dy int) bool {
	if dy == 0 || (s.allowOverScroll != nil && !s.allowOverScroll()) {
		return false
	}
	return s.scrollTo(s.scrollY + dy)
}

func (s *Scroller) scrollTo(y int) bool {
	y = utils.Clamp(y, 0, s.MaxScrollY())
	if y == s.scrollY {
		return false
	}
	s.scrollY = y
	if s.onChange != nil {
		s.onChange(y)
	}
	return true
}

// setExtents updates the viewport and content heights measured during layout.
func (s *Scroller) setExtents(viewport, content int) {
	s.viewport, s.content = viewport, content
	s.scrollTo(s.scrollY)
}

// Offset is the drag view offset, independent of the native scroll position.
type Offset struct {
	height int
	y      int
}

// Height returns the content height.
func (o *Offset) Height() int { return o.height }

func (o *Offset) ScrollY() int { return o.y }
func (o *Offset) ScrollBy(dy int) { o.y += dy }
func (o *Offset) ScrollTo(y int) { o.y = y }
