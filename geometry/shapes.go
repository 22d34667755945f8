// Package geometry holds the collision tests and per-frame motion helpers
// applied to caller-owned entities.
package geometry

// Vec is a 2D point or displacement.
type Vec struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Circle is anchored at its centre.
type Circle struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"radius" msgpack:"radius"`
}

// Polygon is a closed, convex vertex list in absolute coordinates.
type Polygon []Vec

// Entity is a moving body owned by the game loop. X and Y are the top-left
// corner of its bounding box; it is a circle when Height is zero and Radius is set.
type Entity struct {
	X        float64 `json:"x" msgpack:"x"`
	Y        float64 `json:"y" msgpack:"y"`
	Width    float64 `json:"width,omitempty" msgpack:"width,omitempty"`
	Height   float64 `json:"height,omitempty" msgpack:"height,omitempty"`
	Radius   float64 `json:"radius,omitempty" msgpack:"radius,omitempty"`
	Vx       float64 `json:"vx" msgpack:"vx"`
	Vy       float64 `json:"vy" msgpack:"vy"`
	Ax       float64 `json:"ax" msgpack:"ax"`
	Ay       float64 `json:"ay" msgpack:"ay"`
	OnGround bool    `json:"onGround" msgpack:"onGround"`
}

func (e *Entity) IsCircle() bool {
	return e.Height <= 0 && e.Radius > 0
}

// Extent is the vertical size: Height for boxes, the diameter for circles.
// An entity with neither has extent 0.
func (e *Entity) Extent() float64 {
	if e.Height > 0 {
		return e.Height
	}
	return 2 * e.Radius
}

// Rect returns the bounding box.
func (e *Entity) Rect() Rect {
	if e.IsCircle() {
		return Rect{X: e.X, Y: e.Y, Width: 2 * e.Radius, Height: 2 * e.Radius}
	}
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Circle returns the inscribed circle of a circular entity.
func (e *Entity) Circle() Circle {
	return Circle{X: e.X + e.Radius, Y: e.Y + e.Radius, Radius: e.Radius}
}
