package systems

import (
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies turns enemies around once they stray a full patrol
// distance from their anchor. Edge and wall reversals happen later in
// UpdateCollisions and win if both fire in the same frame.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.IsDead {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		updatePatrol(enemy, physics, obj.Position.X)
	})
}

func updatePatrol(enemy *components.EnemyData, physics *components.PhysicsData, x float64) {
	travelled := x - enemy.StartX

	// Only turn while heading away from the anchor, otherwise an enemy
	// pushed past the limit would flip every frame.
	switch {
	case travelled >= cfg.Enemy.PatrolDistance && enemy.PatrolDirection == cfg.DirectionRight:
		enemy.PatrolDirection = cfg.DirectionLeft
	case travelled <= -cfg.Enemy.PatrolDistance && enemy.PatrolDirection == cfg.DirectionLeft:
		enemy.PatrolDirection = cfg.DirectionRight
	}

	physics.Velocity.X = cfg.Sign(enemy.PatrolDirection) * cfg.Enemy.Speed
}
