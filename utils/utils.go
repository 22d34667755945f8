package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any type the numeric helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits value to the closed range [low, high].
func Clamp[T Number](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func Distance(x1, y1, x2, y2 float64) float64 {
	deltaX := x2 - x1
	deltaY := y2 - y1

	return math.Sqrt(deltaX*deltaX + deltaY*deltaY)
}

// CheckPointWithinBounds reports whether (x, y) lies in the closed box
// spanned by topLeft and bottomRight.
func CheckPointWithinBounds(x, y float64, topLeft, bottomRight [2]float64) bool {
	return x >= topLeft[0] && x <= bottomRight[0] && y >= topLeft[1] && y <= bottomRight[1]
}
