package game

import (
	"fmt"
	"math"
	"time"
)

type point struct{ X, Y float64 }

// rotate turns p by theta radians about the origin. With y pointing down
// this is clockwise on screen.
func rotate(p point, theta float64) point {
	sin, cos := math.Sincos(theta)
	return point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
