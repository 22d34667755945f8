package geometry

// IntegrateMotion advances e by one frame: position with the current
// velocity, then velocity with the acceleration, then the world scroll.
func IntegrateMotion(e *Entity, applyScroll bool, scrollSpeed float64) {
	e.X += e.Vx
	e.Y += e.Vy

	e.Vx += e.Ax
	e.Vy += e.Ay

	if applyScroll {
		e.X -= scrollSpeed
	}
}

// ClampToBounds keeps e between topY and bottomY. Hitting the top stops
// vertical motion; resting on the bottom also marks the entity on ground.
// Only one side is clamped per call, the top first.
func ClampToBounds(e *Entity, topY, bottomY float64) {
	if e.Y < topY {
		e.Y = topY
		e.Vy = 0
		return
	}

	if e.Y+e.Extent() > bottomY {
		e.Y = bottomY - e.Extent()
		e.Vy = 0
		e.OnGround = true
		return
	}

	e.OnGround = false
}
