package components

import (
	"github.com/automoto/stonerush/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData tracks level progression across rebuilds of the world.
type SessionData struct {
	LevelIndex int
	Status     config.SessionStatus

	// Transition runs while Status is LevelComplete or Dead and fades the
	// overlay in. Progress is its latest value in [0, 1].
	Transition *gween.Tween
	Progress   float64

	// Set when the transition finishes; the scene rebuilds the world at
	// NextLevel.
	RebuildRequested bool
	NextLevel        int
}

var Session = donburi.NewComponentType[SessionData]()
