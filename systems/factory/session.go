package factory

import (
	"github.com/automoto/stonerush/archetypes"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton for the given level.
func CreateSession(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		LevelIndex: levelIndex,
		Status:     cfg.StatusPlaying,
	})
	return session
}

// CreateFrame spawns the singleton holding frame delta and polled input.
func CreateFrame(ecs *ecs.ECS) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{})
	components.Input.SetValue(frame, components.InputData{})
	return frame
}
