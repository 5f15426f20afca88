package systems

import (
	"math"

	"github.com/automoto/stonerush/components"
	"github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/automoto/stonerush/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	camera, targetX, targetY, ok := cameraTarget(e)
	if !ok {
		return
	}

	// Ease toward the target, then keep the view inside the level.
	x := gamemath.Lerp(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	y := gamemath.Lerp(camera.Position.Y, targetY, config.Camera.FollowSmoothing)
	camera.Position.X, camera.Position.Y = clampCamera(e, x, y)
}

// SnapCamera jumps the camera straight to its target. Used right after a
// level is built so the first frame doesn't pan in from the origin.
func SnapCamera(e *ecs.ECS) {
	camera, targetX, targetY, ok := cameraTarget(e)
	if !ok {
		return
	}
	camera.Position.X, camera.Position.Y = clampCamera(e, targetX, targetY)
}

// cameraTarget keeps the player a fixed distance from the left edge and
// vertically centered.
func cameraTarget(e *ecs.ECS) (*components.CameraData, float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, 0, 0, false
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, 0, 0, false
	}
	obj := components.Object.Get(playerEntry)

	targetX := obj.Position.X - config.Camera.OffsetX
	targetY := obj.Position.Y - float64(config.C.Height)/2
	return components.Camera.Get(cameraEntry), targetX, targetY, true
}

func clampCamera(e *ecs.ECS, x, y float64) (float64, float64) {
	level, ok := getLevel(e)
	if !ok {
		return x, y
	}
	maxX := math.Max(0, level.Width-float64(config.C.Width))
	maxY := math.Max(0, level.Height-float64(config.C.Height))
	return gamemath.ClampFloat(x, 0, maxX), gamemath.ClampFloat(y, 0, maxY)
}
