// Package anim holds the animation core of the sketch: eased progress
// helpers, per-node animation state, the fixed-period scheduler, the node
// chain that decides which node animates next, and the controller that ties
// them together.
package anim

import "math"

const (
	// ScaleDiv is the progress threshold at which MirrorValue switches phase.
	ScaleDiv = 0.51
	// StepGap scales every per-tick progress increment.
	StepGap = 0.05
)

// ScaleFactor returns floor(scale / ScaleDiv).
func ScaleFactor(scale float64) int {
	return int(math.Floor(scale / ScaleDiv))
}

// MaxScale clamps the offset of segment i out of n at zero.
func MaxScale(scale float64, i, n int) float64 {
	return math.Max(0, scale-float64(i)/float64(n))
}

// DivideScale maps scale to the [0, 1] progress of segment i out of n, so
// segments fill one after another as scale rises from 0 to 1.
func DivideScale(scale float64, i, n int) float64 {
	return math.Min(1/float64(n), MaxScale(scale, i, n)) * float64(n)
}

// MirrorValue returns 1/a below the first threshold and 1/b above it.
func MirrorValue(scale float64, a, b int) float64 {
	k := float64(ScaleFactor(scale))
	return (1-k)/float64(a) + k/float64(b)
}

// UpdateValue is the signed per-tick increment for a progress value.
func UpdateValue(scale, dir float64, a, b int) float64 {
	return MirrorValue(scale, a, b) * dir * StepGap
}
