package systems

import (
	"github.com/automoto/stonerush/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects integrates velocity into position and resyncs bounds.
// Collision then works on the tentative position and corrects it in place.
func UpdateObjects(ecs *ecs.ECS) {
	delta := frameDelta(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Enemy) && components.Enemy.Get(e).IsDead {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.Position = obj.Position.Add(physics.Velocity.Scale(delta))
		obj.SyncBounds()
	})
}
