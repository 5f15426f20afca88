package systems

import (
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/logger"
	"github.com/automoto/stonerush/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the player's timers and turns this frame's input
// into velocity. Must run AFTER input and BEFORE physics.
func UpdatePlayer(ecs *ecs.ECS) {
	delta := frameDelta(ecs)
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		updatePlayerTimers(player, physics, delta)
		applyPlayerIntents(player, physics, input)
	})
}

func updatePlayerTimers(player *components.PlayerData, physics *components.PhysicsData, delta float64) {
	if player.IsRamming() {
		player.RamTimer -= delta
		if player.RamTimer <= 0 {
			stopRam(player, physics)
		}
	}

	if player.Invulnerable {
		player.InvulnTimer -= delta
		if player.InvulnTimer <= 0 {
			player.Invulnerable = false
			player.InvulnTimer = 0
		}
	}
}

func applyPlayerIntents(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	// Horizontal movement is locked while the dash runs
	if !player.IsRamming() {
		switch {
		case input.Action(cfg.ActionMoveLeft).Pressed:
			physics.Velocity.X = -cfg.Player.Speed
			player.Facing = cfg.DirectionLeft
		case input.Action(cfg.ActionMoveRight).Pressed:
			physics.Velocity.X = cfg.Player.Speed
			player.Facing = cfg.DirectionRight
		default:
			physics.Velocity.X = 0
		}
	}

	if input.Action(cfg.ActionJump).Pressed && physics.Grounded && !player.IsRamming() {
		physics.Velocity.Y = cfg.Player.JumpVelocity
		physics.Grounded = false
		logger.Log.Debug("player jumped")
	}

	if input.Action(cfg.ActionRam).Pressed && physics.Grounded && !player.IsRamming() {
		startRam(player, physics)
	}
}

func startRam(player *components.PlayerData, physics *components.PhysicsData) {
	player.State = cfg.Ramming
	player.RamTimer = cfg.Player.RamDuration
	physics.Velocity.X = cfg.Sign(player.Facing) * cfg.Player.RamSpeed
	logger.Log.WithFields(logrus.Fields{
		"facing": player.Facing,
	}).Debug("ram started")
}

// stopRam ends the dash and halts horizontal motion. The movement-derived
// state is re-evaluated by UpdateStates.
func stopRam(player *components.PlayerData, physics *components.PhysicsData) {
	player.State = cfg.Idle
	player.RamTimer = 0
	physics.Velocity.X = 0
	logger.Log.Debug("ram stopped")
}
