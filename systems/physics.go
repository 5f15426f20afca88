package systems

import (
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity to every movable body. Dead enemies are
// frozen until the collision sweep removes them.
func UpdatePhysics(ecs *ecs.ECS) {
	delta := frameDelta(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Enemy) && components.Enemy.Get(e).IsDead {
			return
		}
		physics := components.Physics.Get(e)
		physics.Velocity.Y = gamemath.ApplyGravity(
			physics.Velocity.Y,
			cfg.World.Gravity,
			cfg.World.TerminalVelocity,
			delta,
		)
	})
}
