package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// DefaultTPS is the fixed update rate the loop runs at.
	DefaultTPS = 60
)

// WrapAngle keeps an angle in radians within [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
