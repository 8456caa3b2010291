package gamemath

import "math"

// Vector is a 2D vector in world units. Y grows downward, as on screen.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// MirrorX flips the horizontal component by a facing sign.
func (v Vector) MirrorX(facing float64) Vector {
	return Vector{X: v.X * facing, Y: v.Y}
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceX returns the absolute horizontal distance between two points.
func DistanceX(a, b Vector) float64 {
	return math.Abs(a.X - b.X)
}
