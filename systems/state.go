package systems

import (
	"math"

	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/logger"
	"github.com/automoto/stonerush/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates evaluates the player state machine on the corrected,
// post-collision velocity and grounding.
func UpdateStates(ecs *ecs.ECS) {
	delta := frameDelta(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		prev := player.State
		player.State = nextPlayerState(player, physics)
		if player.State != prev {
			logger.Log.WithFields(logrus.Fields{
				"from": prev,
				"to":   player.State,
			}).Debug("player state changed")
		}

		updateWalkFrame(player, delta)
	})
}

// nextPlayerState applies the transition priority: an active ram is
// latched, then airborne states, then walking versus idle.
func nextPlayerState(player *components.PlayerData, physics *components.PhysicsData) cfg.PlayerState {
	if player.IsRamming() {
		return cfg.Ramming
	}
	if !physics.Grounded {
		if physics.Velocity.Y < 0 {
			return cfg.Jumping
		}
		return cfg.Falling
	}
	if math.Abs(physics.Velocity.X) > cfg.Player.WalkDeadzone {
		return cfg.Walking
	}
	return cfg.Idle
}

// updateWalkFrame toggles between the idle and walk frames while walking.
func updateWalkFrame(player *components.PlayerData, delta float64) {
	if player.State != cfg.Walking {
		player.WalkTimer = 0
		player.WalkFrame = 0
		return
	}

	period := 1 / cfg.Player.WalkFrameRate
	player.WalkTimer += delta
	for player.WalkTimer >= period {
		player.WalkTimer -= period
		player.WalkFrame = 1 - player.WalkFrame
	}
}
