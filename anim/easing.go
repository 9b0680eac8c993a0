package anim

import "math"

// Easing maps linear progress in [0, 1] to eased progress in [0, 1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseOutCubic decelerates toward the end. Used for independent growth.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutCubic accelerates then decelerates. Used for sequences.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName resolves the names accepted in manifests.
// Unknown names yield nil.
func EasingByName(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "ease-out-cubic", "easeOutCubic":
		return EaseOutCubic
	case "ease-in-out-cubic", "easeInOutCubic":
		return EaseInOutCubic
	}
	return nil
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
