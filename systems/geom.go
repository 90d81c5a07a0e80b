// Package systems contains the per-tick simulation systems.
package systems

import "math"

// overlapEpsilon absorbs float noise at box edges: an axis only counts as
// separating when the gap exceeds it.
const overlapEpsilon = 1e-4

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector length.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// AABBOverlap reports whether two axis-aligned boxes overlap, given their
// centers and half extents. Touching edges do not count.
func AABBOverlap(c1 Vec2, h1 Vec2, c2 Vec2, h2 Vec2) bool {
	return c1.X+h1.X > c2.X-h2.X &&
		c1.X-h1.X < c2.X+h2.X &&
		c1.Y+h1.Y > c2.Y-h2.Y &&
		c1.Y-h1.Y < c2.Y+h2.Y
}

// OBBOverlap runs a separating-axis test between two rectangles with
// arbitrary z rotations. For a rectangle pair only the four face normals
// need checking: the two local axes of each box. The boxes overlap when no
// axis shows a gap; a gap must exceed overlapEpsilon to count, so boxes
// brushing at float precision still collide.
func OBBOverlap(c1 Vec2, angle1 float32, h1 Vec2, c2 Vec2, angle2 float32, h2 Vec2) bool {
	sin1, cos1 := math.Sincos(float64(angle1))
	sin2, cos2 := math.Sincos(float64(angle2))
	x1 := Vec2{float32(cos1), float32(sin1)}
	y1 := Vec2{-float32(sin1), float32(cos1)}
	x2 := Vec2{float32(cos2), float32(sin2)}
	y2 := Vec2{-float32(sin2), float32(cos2)}

	d := c2.Sub(c1)
	axes := [4]Vec2{x1, y1, x2, y2}
	for _, axis := range axes {
		// Radius of each box projected onto the axis, using its own
		// orientation.
		r1 := absf(h1.X*axis.Dot(x1)) + absf(h1.Y*axis.Dot(y1))
		r2 := absf(h2.X*axis.Dot(x2)) + absf(h2.Y*axis.Dot(y2))
		gap := absf(d.Dot(axis)) - (r1 + r2)
		if gap > overlapEpsilon {
			return false
		}
	}
	return true
}
