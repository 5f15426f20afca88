package factory

import (
	"github.com/automoto/stonerush/archetypes"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its top-left corner at (x, y) in
// screen space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := components.NewObjectData(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Body.Data = player
	components.Object.SetValue(player, obj)

	components.Player.SetValue(player, components.PlayerData{
		State:  cfg.Idle,
		Facing: cfg.DirectionRight,
		Lives:  cfg.Player.StartingLives,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	addToSpace(ecs, obj.Body)

	return player
}
