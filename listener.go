package pulledge

// ScrollListener receives the combined vertical scroll position, that is
// the container scroll position plus the drag view offset.
// It may be invoked more than once per frame.
type ScrollListener interface {
	OnScrollY(scrollY int)
}

// ScrollListenerFunc adapts an ordinary function to the ScrollListener interface.
type ScrollListenerFunc func(scrollY int)

// OnScrollY calls f(scrollY).
func (f ScrollListenerFunc) OnScrollY(scrollY int) { f(scrollY) }

// SetOnScrollListener replaces every registered listener with l. A nil listener removes them all.
func (v *ScrollView) SetOnScrollListener(l ScrollListener) {
	v.listeners = v.listeners[:0]
	if l != nil {
		v.listeners = append(v.listeners, l)
	}
}

// AddOnScrollListener registers l after the already registered listeners.
func (v *ScrollView) AddOnScrollListener(l ScrollListener) {
	if l == nil {
		return
	}
	v.listeners = append(v.listeners, l)
}

func (v *ScrollView) notify(scrollY int) {
	for _, l := range v.listeners {
		l.OnScrollY(scrollY)
	}
}
