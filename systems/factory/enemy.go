package factory

import (
	"github.com/automoto/stonerush/archetypes"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/automoto/stonerush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy at (x, y) in screen space. It starts
// patrolling to the right, anchored at x.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := components.NewObjectData(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.Body.Data = enemy
	components.Object.SetValue(enemy, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		StartX:          x,
		PatrolDirection: cfg.DirectionRight,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Velocity: gamemath.Vector{X: cfg.Sign(cfg.DirectionRight) * cfg.Enemy.Speed},
	})

	addToSpace(ecs, obj.Body)

	return enemy
}
