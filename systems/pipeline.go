package systems

import "github.com/yohamta/donburi/ecs"

// Pipeline returns the per-frame systems in execution order. Later
// systems rely on state corrected by earlier ones, so the order matters:
// gravity runs before integration so a body resting on a block is pushed
// into it and resolved back with zero vertical speed every frame.
func Pipeline(src InputSource) []ecs.System {
	return []ecs.System{
		NewInputSystem(src),
		WithGameplayChecks(UpdatePlayer),
		WithGameplayChecks(UpdateEnemies),
		WithGameplayChecks(UpdatePhysics),
		WithGameplayChecks(UpdateObjects),
		WithGameplayChecks(UpdateCollisions),
		WithGameplayChecks(UpdateStates),
		WithGameplayChecks(UpdateCamera),
		UpdateSession,
	}
}
