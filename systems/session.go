package systems

import (
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/logger"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/automoto/stonerush/tags"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession checks the win and lose conditions while playing, and runs
// the transition pause afterwards. It runs even when gameplay is frozen.
func UpdateSession(ecs *ecs.ECS) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}

	if session.Status == cfg.StatusPlaying {
		checkSessionOutcome(ecs, session)
		return
	}

	updateTransition(session, frameDelta(ecs))
}

func checkSessionOutcome(ecs *ecs.ECS, session *components.SessionData) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	bounds := components.Object.Get(playerEntry).Bounds()

	// Falling out of the level is always fatal.
	if bounds.Y > level.Height {
		player.Lives = 0
	}

	switch {
	case player.Lives <= 0:
		beginTransition(session, cfg.StatusDead)
	case bounds.Intersects(level.Goal):
		if session.LevelIndex >= leveldata.LastLevel {
			beginTransition(session, cfg.StatusWon)
		} else {
			beginTransition(session, cfg.StatusLevelComplete)
		}
	}
}

func beginTransition(session *components.SessionData, status cfg.SessionStatus) {
	session.Status = status
	session.Progress = 0
	session.Transition = gween.New(0, 1, float32(cfg.Transition.PauseSeconds), ease.Linear)

	logger.Log.WithFields(logrus.Fields{
		"level":  session.LevelIndex,
		"status": status,
	}).Info("level ended")
}

func updateTransition(session *components.SessionData, delta float64) {
	if session.Transition == nil || session.RebuildRequested {
		return
	}

	value, finished := session.Transition.Update(float32(delta))
	session.Progress = float64(value)
	if !finished {
		return
	}

	switch session.Status {
	case cfg.StatusLevelComplete:
		session.NextLevel = session.LevelIndex + 1
		session.RebuildRequested = true
	case cfg.StatusDead:
		session.NextLevel = session.LevelIndex
		session.RebuildRequested = true
	case cfg.StatusWon:
		// Final screen stays up.
		session.Transition = nil
		session.Progress = 1
	}
}
