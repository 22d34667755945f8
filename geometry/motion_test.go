package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateMotion(t *testing.T) {
	t.Run("constant velocity", func(t *testing.T) {
		e := &Entity{X: 0, Vx: 2}
		IntegrateMotion(e, false, 5)
		assert.Equal(t, 2.0, e.X)
		IntegrateMotion(e, false, 5)
		assert.Equal(t, 4.0, e.X)
	})

	t.Run("position uses the previous velocity", func(t *testing.T) {
		e := &Entity{Y: 10, Vy: 1, Ay: 0.5}
		IntegrateMotion(e, false, 0)
		assert.Equal(t, 11.0, e.Y)
		assert.Equal(t, 1.5, e.Vy)

		IntegrateMotion(e, false, 0)
		assert.Equal(t, 12.5, e.Y)
		assert.Equal(t, 2.0, e.Vy)
	})

	t.Run("scroll applied after integration", func(t *testing.T) {
		e := &Entity{X: 100, Vx: 3, Ax: 1}
		IntegrateMotion(e, true, 2)
		assert.Equal(t, 101.0, e.X)
		assert.Equal(t, 4.0, e.Vx, "scroll does not touch velocity")
	})
}

func TestClampToBounds(t *testing.T) {
	testCases := []struct {
		name     string
		entity   Entity
		topY     float64
		bottomY  float64
		expected Entity
	}{
		{
			name:     "above top",
			entity:   Entity{Y: -5, Height: 10, Vy: -3},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 0, Height: 10, Vy: 0},
		},
		{
			name:     "above top keeps ground flag",
			entity:   Entity{Y: -5, Height: 10, Vy: -3, OnGround: true},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 0, Height: 10, Vy: 0, OnGround: true},
		},
		{
			name:     "below bottom",
			entity:   Entity{Y: 95, Height: 10, Vy: 4},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 90, Height: 10, Vy: 0, OnGround: true},
		},
		{
			name:     "circle below bottom",
			entity:   Entity{Y: 85, Radius: 10, Vy: 4},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 80, Radius: 10, Vy: 0, OnGround: true},
		},
		{
			name:     "resting exactly on bottom is airborne",
			entity:   Entity{Y: 90, Height: 10, Vy: 0, OnGround: true},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 90, Height: 10, Vy: 0, OnGround: false},
		},
		{
			name:     "in between",
			entity:   Entity{Y: 40, Height: 10, Vy: 2, OnGround: true},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 40, Height: 10, Vy: 2, OnGround: false},
		},
		{
			name:     "taller than bounds clamps top only",
			entity:   Entity{Y: -1, Height: 200, Vy: 1},
			topY:     0,
			bottomY:  100,
			expected: Entity{Y: 0, Height: 200, Vy: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.entity
			ClampToBounds(&e, tc.topY, tc.bottomY)
			assert.Equal(t, tc.expected, e)
		})
	}
}

func TestEntity_Shapes(t *testing.T) {
	ball := Entity{X: 10, Y: 20, Radius: 5}
	assert.True(t, ball.IsCircle())
	assert.Equal(t, 10.0, ball.Extent())
	assert.Equal(t, Circle{X: 15, Y: 25, Radius: 5}, ball.Circle())
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 10, Height: 10}, ball.Rect())

	box := Entity{X: 1, Y: 2, Width: 3, Height: 4}
	assert.False(t, box.IsCircle())
	assert.Equal(t, 4.0, box.Extent())
	assert.Equal(t, Rect{X: 1, Y: 2, Width: 3, Height: 4}, box.Rect())

	empty := Entity{}
	assert.Equal(t, 0.0, empty.Extent(), "no size means zero extent")
}
