package tui

import (
	"context"
	"time"

	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/systems"
	"github.com/gdamore/tcell/v2"
)

// Game is the part of a scene the terminal runner drives.
type Game interface {
	Step(delta float64) error
	Render(sink systems.Sink)
}

// Runner drives a Game from a tcell screen at the target frame rate.
type Runner struct {
	screen tcell.Screen
	game   Game
	keys   *KeySource
	sink   *Sink
}

func NewRunner(screen tcell.Screen, game Game, keys *KeySource) *Runner {
	return &Runner{
		screen: screen,
		game:   game,
		keys:   keys,
		sink:   NewSink(screen, cfg.C.Width, cfg.C.Height),
	}
}

// Run loops until ctx is cancelled, a quit key is pressed, or the game
// returns an error. The delta handed to the game is wall-clock time.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.C.TargetFPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(ev.Key()) {
					return nil
				}
				r.keys.Handle(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				r.screen.Sync()
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			if err := r.Frame(delta); err != nil {
				return err
			}
		}
	}
}

// Frame steps the game once and redraws the screen.
func (r *Runner) Frame(delta float64) error {
	if err := r.game.Step(delta); err != nil {
		return err
	}
	r.screen.Clear()
	r.game.Render(r.sink)
	r.screen.Show()
	return nil
}
