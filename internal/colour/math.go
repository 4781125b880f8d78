package colour

import "math"

// Lerp linearly interpolates between start and stop.
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// SanitizeDegrees normalises an angle to [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegreesInt normalises an integer angle to [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// DifferenceDegrees returns the distance between two angles on a circle,
// always in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// RotationDirection returns the sign of the shortest rotation from one angle
// to another: 1 if increasing is shortest (including the 180-degree tie),
// -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}
