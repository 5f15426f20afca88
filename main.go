package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/stonerush/assets"
	"github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/fonts"
	"github.com/automoto/stonerush/logger"
	"github.com/automoto/stonerush/scenes"
	"github.com/automoto/stonerush/systems"
	"github.com/automoto/stonerush/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Game struct {
	scene *scenes.PlatformerScene
	last  time.Time
}

func NewGame(scene *scenes.PlatformerScene) *Game {
	return &Game{scene: scene}
}

// Update steps the scene by the wall-clock time since the previous tick.
func (g *Game) Update() error {
	now := time.Now()
	delta := 1 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		delta = now.Sub(g.last).Seconds()
	}
	g.last = now

	if err := g.scene.Step(delta); err != nil {
		return err
	}
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", config.Debug.StartLevel, "level to start at (1-10)")
	configPath := flag.String("config", "", "YAML file overriding gameplay tuning")
	assetDir := flag.String("assets", "", "directory holding sprite PNGs")
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	debug := flag.Bool("debug", false, "outline collision bounds")
	flag.Parse()

	logger.Init()
	config.Debug.DrawBounds = *debug

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			logger.Log.WithError(err).Warn("ignoring config overrides")
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level": *level,
		"tui":   *useTUI,
	}).Info("starting StoneRush")

	if *useTUI {
		if err := runTerminal(*level); err != nil {
			logger.Log.Fatal(err)
		}
		return
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleFontSize); err != nil {
		logger.Log.Fatal(err)
	}

	registry := assets.NewRegistry()
	if *assetDir != "" {
		registry.Load(os.DirFS(*assetDir), assets.AllSprites...)
	}

	scene := scenes.NewPlatformerScene(*level, &systems.KeyboardSource{}, registry)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TargetFPS)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.Log.Fatal(err)
	}
}

func runTerminal(level int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// The terminal is the display; log lines would corrupt it.
	logger.Log.SetOutput(io.Discard)

	keys := tui.NewKeySource()
	scene := scenes.NewPlatformerScene(level, keys, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tui.NewRunner(screen, scene, keys).Run(ctx)
}
