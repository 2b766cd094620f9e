package pulledge

import (
	"fmt"
	"math"
)

// Interpolator maps the elapsed fraction of an animation to the fraction of
// the value change. Every interpolator maps 0 to 0 and 1 to 1 and is monotonic in between.
type Interpolator func(t float64) float64

// The supported easing function names.
const (
	EasingLinear               = "linear"
	EasingAccelerateDecelerate = "accelerate_decelerate"
	EasingDecelerate           = "decelerate"
)

// Linear changes the value at a constant rate.
func Linear(t float64) float64 { return t }

// AccelerateDecelerate starts and ends slowly and accelerates through the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Decelerate starts quickly and slows down towards the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EasingByName returns the interpolator registered under name.
// An empty name resolves to the default accelerate-decelerate curve.
func EasingByName(name string) (Interpolator, error) {
	switch name {
	case "", EasingAccelerateDecelerate:
		return AccelerateDecelerate, nil
	case EasingLinear:
		return Linear, nil
	case EasingDecelerate:
		return Decelerate, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}
