package geometry

import (
	"github.com/solarlune/resolv"
)

// SATIntersector tests convex polygons with resolv's separating-axis
// implementation. Polygons with fewer than three vertices never overlap.
type SATIntersector struct{}

func (SATIntersector) Intersects(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}

	// Touching polygons get contacts with a zero translation vector; like the
	// other overlap tests, touching is not a collision.
	if contact := toConvex(a).Intersection(0, 0, toConvex(b)); contact != nil && contact.MTV.Magnitude() > 0 {
		return true
	}

	// resolv reports contacts from crossing edges; a polygon nested entirely
	// inside the other has none.
	return containsPoint(b, centroid(a)) || containsPoint(a, centroid(b))
}

// centroid is the vertex average, which lies strictly inside a convex polygon.
func centroid(p Polygon) Vec {
	var c Vec
	for _, v := range p {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(p))
	return Vec{X: c.X / n, Y: c.Y / n}
}

func toConvex(p Polygon) *resolv.ConvexPolygon {
	points := make([]float64, 0, len(p)*2)
	for _, v := range p {
		points = append(points, v.X, v.Y)
	}
	return resolv.NewConvexPolygon(0, 0, points...)
}

// containsPoint reports whether pt lies strictly inside the convex polygon,
// for either winding order.
func containsPoint(p Polygon, pt Vec) bool {
	sign := 0
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
		switch {
		case cross == 0:
			return false
		case cross > 0 && sign < 0, cross < 0 && sign > 0:
			return false
		case cross > 0:
			sign = 1
		default:
			sign = -1
		}
	}
	return true
}

// RectPolygon returns the four corners of r, clockwise from the top-left.
func RectPolygon(r Rect) Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}
