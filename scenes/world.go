package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/stonerush/assets"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/logger"
	"github.com/automoto/stonerush/systems"
	"github.com/automoto/stonerush/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene owns the current level's world. Advancing or respawning
// throws the whole world away and builds a fresh one.
type PlatformerScene struct {
	ecs        *ecs.ECS
	input      systems.InputSource
	renderer   *systems.Renderer
	levelIndex int
	once       sync.Once
	err        error
}

// NewPlatformerScene creates a scene that starts at levelIndex (1-based).
// The registry may be nil; every sprite then draws as a placeholder.
func NewPlatformerScene(levelIndex int, input systems.InputSource, reg *assets.Registry) *PlatformerScene {
	return &PlatformerScene{
		input:      input,
		renderer:   systems.NewRenderer(reg),
		levelIndex: levelIndex,
	}
}

// Step advances the simulation by delta seconds. Delta is clamped to the
// configured maximum so a stalled frame can't tunnel bodies through blocks.
func (ps *PlatformerScene) Step(delta float64) error {
	ps.once.Do(func() { ps.err = ps.configure(ps.levelIndex) })
	if ps.err != nil {
		return ps.err
	}

	if delta > cfg.World.MaxDelta {
		delta = cfg.World.MaxDelta
	}
	if delta < 0 {
		delta = 0
	}
	systems.SetFrameDelta(ps.ecs, delta)
	ps.ecs.Update()

	session, ok := systems.GetSession(ps.ecs)
	if ok && session.RebuildRequested {
		return ps.configure(session.NextLevel)
	}
	return nil
}

// Render draws the current world to sink.
func (ps *PlatformerScene) Render(sink systems.Sink) {
	if ps.ecs == nil {
		return
	}
	ps.renderer.Draw(ps.ecs, sink)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Black)
	ps.Render(systems.NewEbitenSink(screen))
}

// QuitRequested reports whether the quit action was pressed this frame.
func (ps *PlatformerScene) QuitRequested() bool {
	if ps.ecs == nil {
		return false
	}
	entry, ok := components.Input.First(ps.ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Action(cfg.ActionQuit).JustPressed
}

// ECS exposes the current world, mainly for tests and tools.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	return ps.ecs
}

// LevelIndex returns the level currently being played.
func (ps *PlatformerScene) LevelIndex() int {
	return ps.levelIndex
}

func (ps *PlatformerScene) configure(levelIndex int) error {
	world := ecs.NewECS(donburi.NewWorld())

	for _, system := range systems.Pipeline(ps.input) {
		world.AddSystem(system)
	}

	factory.CreateFrame(world)
	factory.CreateSession(world, levelIndex)
	if _, err := factory.CreateLevelAtIndex(world, levelIndex); err != nil {
		return fmt.Errorf("build level %d: %w", levelIndex, err)
	}
	systems.SnapCamera(world)

	ps.ecs = world
	ps.levelIndex = levelIndex

	logger.Log.WithFields(logrus.Fields{
		"level": levelIndex,
	}).Info("level started")
	return nil
}
