package geometry

import (
	"github.com/lguibr/jetrun/utils"
)

// RectOverlaps reports whether two boxes intersect. Boxes that only share an
// edge do not collide.
func RectOverlaps(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// CircleRectOverlaps clamps the circle centre to the nearest point of the box
// and tests that point against the radius, boundary included.
func CircleRectOverlaps(circle Circle, rect Rect) bool {
	closestX := utils.Clamp(circle.X, rect.X, rect.Right())
	closestY := utils.Clamp(circle.Y, rect.Y, rect.Bottom())

	distance := utils.Distance(circle.X, circle.Y, closestX, closestY)

	return distance <= circle.Radius
}

// CirclesOverlap reports whether the centres are closer than the sum of the
// radii. Circles that only touch do not collide.
func CirclesOverlap(a, b Circle) bool {
	return utils.Distance(a.X, a.Y, b.X, b.Y) < a.Radius+b.Radius
}

// PolygonIntersector tests two convex polygons for overlap.
type PolygonIntersector interface {
	Intersects(a, b Polygon) bool
}

// PolygonsOverlap delegates to with. Without an intersector it always
// returns false, which is not a collision test; pass SATIntersector{} when
// the answer matters.
func PolygonsOverlap(a, b Polygon, with PolygonIntersector) bool {
	if with == nil {
		return false
	}
	return with.Intersects(a, b)
}
