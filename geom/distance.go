package geom

// Side tells where a rectangle lies relative to a reference rectangle.
type Side int

const (
	Intersection Side = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Left
	Right
	Top
	Bottom
)

var sideNames = [...]string{
	Intersection: "intersection",
	TopLeft:      "top left",
	TopRight:     "top right",
	BottomLeft:   "bottom left",
	BottomRight:  "bottom right",
	Left:         "left",
	Right:        "right",
	Top:          "top",
	Bottom:       "bottom",
}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "unknown"
	}
	return sideNames[s]
}

// Diagonal reports whether s is one of the four corner sides.
func (s Side) Diagonal() bool {
	return s == TopLeft || s == TopRight || s == BottomLeft || s == BottomRight
}

// Distance returns the position of r2 relative to r1 together with the gap
// between them. Corner cases use the distance between the two nearest
// corners, edge cases the gap along a single axis. A diagonal side is only
// reported when both axes are strictly separated. Boxes that overlap or
// touch on both axes give Intersection and 0; boxes touching on one axis
// only report the gap along the other.
func Distance(r1, r2 Rect) (Side, float64) {
	left := r2.Max.X < r1.Min.X
	right := r1.Max.X < r2.Min.X
	top := r2.Max.Y < r1.Min.Y
	bottom := r1.Max.Y < r2.Min.Y

	switch {
	case bottom && left:
		return BottomLeft, V(r1.Min.X, r1.Max.Y).DistanceTo(V(r2.Max.X, r2.Min.Y))
	case left && top:
		return TopLeft, r1.Min.DistanceTo(r2.Max)
	case top && right:
		return TopRight, V(r1.Max.X, r1.Min.Y).DistanceTo(V(r2.Min.X, r2.Max.Y))
	case right && bottom:
		return BottomRight, r1.Max.DistanceTo(r2.Min)
	case left:
		return Left, r1.Min.X - r2.Max.X
	case right:
		return Right, r2.Min.X - r1.Max.X
	case top:
		return Top, r1.Min.Y - r2.Max.Y
	case bottom:
		return Bottom, r2.Min.Y - r1.Max.Y
	}
	return Intersection, 0
}
