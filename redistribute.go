package pulledge

import "github.com/esimov/pulledge/utils"

// applyDelta moves the drag view by deltaY and returns the amount actually applied.
// Pulling the drag view further away from rest is damped, while pushing it back is not,
// but it never overshoots the resting position.
func (v *ScrollView) applyDelta(deltaY int) int {
	offset := v.target.ScrollY()

	obstacle := offset != 0 && utils.Sign(offset) == utils.Sign(deltaY)
	needScrollY := deltaY
	if obstacle {
		needScrollY = int(float64(deltaY) * v.cfg.DampingRatio)
	}
	if (offset > 0 && offset < -needScrollY) || (offset < 0 && offset > -needScrollY) {
		needScrollY = -offset
	}

	v.target.ScrollBy(needScrollY)
	v.notify(v.target.ScrollY() + v.container.ScrollY())

	if v.target.ScrollY() == 0 {
		v.isBeingDragged = false
	}
	return needScrollY
}
