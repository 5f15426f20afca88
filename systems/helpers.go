package systems

import (
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateFrame returns the singleton Frame entry's data, creating it if
// needed.
func getOrCreateFrame(ecs *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Frame, components.Input))
	}
	return components.Frame.Get(entry)
}

// SetFrameDelta stores the delta the next Update pass will simulate.
func SetFrameDelta(ecs *ecs.ECS, delta float64) {
	getOrCreateFrame(ecs).Delta = delta
}

func frameDelta(ecs *ecs.ECS) float64 {
	return getOrCreateFrame(ecs).Delta
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry)
	}
	return nil
}

func getLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// GetSession returns the session singleton, if the world has one.
func GetSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// IsPlaying reports whether the simulation should advance. A world without
// a session always plays.
func IsPlaying(ecs *ecs.ECS) bool {
	session, ok := GetSession(ecs)
	return !ok || session.Status == cfg.StatusPlaying
}

// WithGameplayChecks wraps a system to skip execution once the level is
// complete, the player is dead, or the game is won.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if !IsPlaying(ecs) {
			return
		}
		system(ecs)
	}
}
