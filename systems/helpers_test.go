package systems

import (
	"testing"

	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/automoto/stonerush/systems/factory"
	"github.com/automoto/stonerush/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testDelta = 1.0 / 60
	testRows  = 20

	// Screen y of the top of grid row 1, where a body standing on row 0 sits.
	groundTop = (testRows - 1) * leveldata.BlockSize
	standY    = groundTop - 32
)

// scriptedInput holds a fixed set of actions down.
type scriptedInput struct {
	held map[cfg.ActionID]bool
}

func hold(ids ...cfg.ActionID) *scriptedInput {
	s := &scriptedInput{held: map[cfg.ActionID]bool{}}
	for _, id := range ids {
		s.held[id] = true
	}
	return s
}

func (s *scriptedInput) Poll(pressed *[cfg.ActionCount]bool) {
	for id, on := range s.held {
		pressed[id] = on
	}
}

// flatLevel returns a level with a single ground row across columns
// [0, groundCols).
func flatLevel(width, groundCols int) *leveldata.LevelData {
	d := leveldata.New(width, testRows)
	for x := 0; x < groundCols; x++ {
		d.SetBlock(x, 0, leveldata.Ground)
	}
	d.SetPlayerSpawn(64, 96)
	d.SetGoal(float64(width-3)*leveldata.BlockSize, 96)
	return d
}

func newTestWorld(t *testing.T, data *leveldata.LevelData) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateFrame(e)
	factory.CreateSession(e, 1)
	factory.BuildLevel(e, 1, data)
	SetFrameDelta(e, testDelta)
	return e
}

func runFrame(e *ecs.ECS, src InputSource) {
	for _, system := range Pipeline(src) {
		system(e)
	}
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "player missing")
	return entry
}

// placePlayer moves the player to (x, y) at rest.
func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) (*components.PlayerData, *components.PhysicsData, *components.ObjectData) {
	t.Helper()
	entry := playerEntry(t, e)
	obj := components.Object.Get(entry)
	obj.SetPosition(x, y)
	physics := components.Physics.Get(entry)
	physics.Velocity.X, physics.Velocity.Y = 0, 0
	return components.Player.Get(entry), physics, obj
}

func startRamming(player *components.PlayerData, physics *components.PhysicsData) {
	startRammingToward(player, physics, cfg.DirectionRight)
}

func startRammingToward(player *components.PlayerData, physics *components.PhysicsData, dir cfg.Direction) {
	player.State = cfg.Ramming
	player.RamTimer = cfg.Player.RamDuration
	player.Facing = dir
	physics.Velocity.X = cfg.Sign(dir) * cfg.Player.RamSpeed
	physics.Grounded = true
}

func countEnemies(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func session(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	s, ok := GetSession(e)
	require.True(t, ok)
	return s
}
