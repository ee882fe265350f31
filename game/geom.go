package game

import "math"

// Box is an axis-aligned bounding box. X,Y is the top-left corner and
// y grows downward, so row 0 is the top of the field.
type Box struct {
	X, Y float64
	W, H float64
}

// Intersects reports strict overlap on both axes. Boxes that merely
// touch edges do not collide.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W &&
		b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// Near reports whether the two boxes sit at the same position within tol
// on both axes. Home claims use this instead of Intersects: the landing
// has to be aligned, not merely overlapping.
func (b Box) Near(o Box, tol float64) bool {
	return math.Abs(b.X-o.X) < tol && math.Abs(b.Y-o.Y) < tol
}
