/*
Package pulledge implements a pull edge scroll container: once the container reaches its top or
bottom edge, the vertical drag is redirected to an inner drag view, which gets offset from its
resting position. Pulling the drag view further away from rest is damped, and when the gesture
ends the drag view returns to rest with an animation.

The package contains only the gesture state machine. The host toolkit feeds it with pointer events
and exposes the container and the drag view through the Container and DragTarget interfaces.
The gioview package provides such a host for Gio.

A minimal integration looks like this:

	package main

	import (
		"fmt"

		"github.com/esimov/pulledge"
	)

	func main() {
		anim := pulledge.NewValueAnimator(pulledge.SystemClock, pulledge.AccelerateDecelerate)
		view := pulledge.NewScrollView(container, dragView, anim, pulledge.DefaultConfig())
		view.SetOnScrollListener(pulledge.ScrollListenerFunc(func(y int) {
			fmt.Println("scroll position:", y)
		}))

		// Forward the pointer events from the event loop...
		view.OnTouchEvent(ev)
		// ...and advance the reset animation on every frame.
		anim.Tick(time.Now())
	}
*/
package pulledge
