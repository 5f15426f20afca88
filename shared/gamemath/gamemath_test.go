package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}

	assert.True(t, a.Intersects(Rect{X: 31, Y: 31, W: 32, H: 32}))
	assert.False(t, a.Intersects(Rect{X: 32, Y: 0, W: 32, H: 32}), "shared edge is not an overlap")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 32, W: 32, H: 32}))
	assert.False(t, a.Intersects(Rect{X: 100, Y: 100, W: 1, H: 1}))
}

func TestPenetrationPicksShallowestSide(t *testing.T) {
	body := Rect{X: 10, Y: 28, W: 32, H: 32}
	block := Rect{X: 0, Y: 56, W: 32, H: 32}

	p := PenetrationOf(body, block)
	assert.Equal(t, 4.0, p.Top)
	assert.Equal(t, 22.0, p.Right)
	assert.Equal(t, 42.0, p.Left)
	assert.Equal(t, 4.0, p.Min())
}

func TestInflate(t *testing.T) {
	r := Rect{X: 64, Y: 64, W: 32, H: 32}.Inflate(32)
	assert.Equal(t, Rect{X: 32, Y: 32, W: 96, H: 96}, r)
}

func TestApplyGravityClampsToTerminal(t *testing.T) {
	assert.InDelta(t, 800.0/60.0, ApplyGravity(0, 800, 1000, 1.0/60.0), 1e-9)
	assert.Equal(t, 1000.0, ApplyGravity(995, 800, 1000, 0.05))
	assert.Equal(t, -400+40.0, ApplyGravity(-400, 800, 1000, 0.05))
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 0.0, ClampFloat(-5, 0, 10))
	assert.Equal(t, 10.0, ClampFloat(15, 0, 10))
	assert.Equal(t, 3.0, ClampFloat(3, 0, 10))
	assert.Equal(t, -6.0, ClampSpeed(-9, 6))
}
