package pulledge

import "time"

const (
	viewportHeight = 100
	contentHeight  = 300
	maxScrollY     = contentHeight - viewportHeight
)

type fakeContainer struct {
	scrollY int
	height  int
}

func (c *fakeContainer) ScrollY() int { return c.scrollY }
func (c *fakeContainer) Height() int { return c.height }

type fakeTarget struct {
	height  int
	scrollY int
}

func (t *fakeTarget) Height() int { return t.height }
func (t *fakeTarget) ScrollY() int { return t.scrollY }
func (t *fakeTarget) ScrollBy(dy int) { t.scrollY += dy }
func (t *fakeTarget) ScrollTo(y int) { t.scrollY = y }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// fixture bundles a scroll view with its fake host.
type fixture struct {
	view      *ScrollView
	container *fakeContainer
	target    *fakeTarget
	anim      *ValueAnimator
	clock     *fakeClock
	scrolls   []int
}

func newFixture(scrollY int, cfg *Config) *fixture {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	interp, err := EasingByName(cfg.Easing)
	if err != nil {
		panic(err)
	}
	f := &fixture{
		container: &fakeContainer{scrollY: scrollY, height: viewportHeight},
		target:    &fakeTarget{height: contentHeight},
		clock:     &fakeClock{now: time.Unix(1000, 0)},
	}
	f.anim = NewValueAnimator(f.clock, interp)
	f.view = NewScrollView(f.container, f.target, f.anim, cfg)
	f.view.SetOnScrollListener(ScrollListenerFunc(func(y int) {
		f.scrolls = append(f.scrolls, y)
	}))
	return f
}

func linearConfig() *Config {
	cfg := DefaultConfig()
	cfg.Easing = EasingLinear
	return cfg
}

func down(id int, y float32) MotionEvent {
	return MotionEvent{Action: ActionDown, Pointers: []Pointer{{ID: id, Y: y}}}
}

func move(id int, y float32) MotionEvent {
	return MotionEvent{Action: ActionMove, Pointers: []Pointer{{ID: id, Y: y}}}
}

func up(id int, y float32) MotionEvent {
	return MotionEvent{Action: ActionUp, Pointers: []Pointer{{ID: id, Y: y}}}
}
