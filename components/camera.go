package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the top-left corner of the view in level pixels.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// Offset returns the translation applied to world coordinates when drawing.
func (c *CameraData) Offset() (float64, float64) {
	return c.Position.X, c.Position.Y
}
