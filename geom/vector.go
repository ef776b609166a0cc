package geom

import "github.com/ByteArena/box2d"

// Vector2 is a point or offset in screen space (y grows downward).
type Vector2 struct {
	X, Y float64
}

func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// DistanceTo is the straight-line distance between two points.
func (v Vector2) DistanceTo(other Vector2) float64 {
	return box2d.B2Vec2Distance(v.b2(), other.b2())
}

func (v Vector2) b2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}
