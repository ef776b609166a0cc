package geom

import (
	"github.com/ByteArena/box2d"
)

// Rect is an axis-aligned box given by its top-left (Min) and
// bottom-right (Max) corners. Min <= Max is assumed, not checked.
type Rect struct {
	Min, Max Vector2
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Min: Vector2{X: x, Y: y},
		Max: Vector2{X: x + width, Y: y + height},
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Vector2 {
	return Vector2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Translate(d Vector2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// AABB converts the rectangle to a box2d bounding box.
func (r Rect) AABB() box2d.B2AABB {
	return box2d.B2AABB{
		LowerBound: r.Min.b2(),
		UpperBound: r.Max.b2(),
	}
}

// Overlaps reports whether the rectangles share any point, edges included.
func (r Rect) Overlaps(other Rect) bool {
	return box2d.B2TestOverlapBoundingBoxes(r.AABB(), other.AABB())
}
