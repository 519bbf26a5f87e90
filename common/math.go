package common

// Point is a position in world space. The world is y-up.
type Point struct {
	X, Y float64
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector is a displacement in world space.
type Vector struct {
	X, Y float64
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
