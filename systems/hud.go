package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the lives counter and level number in the top-left corner.
func DrawHUD(e *ecs.ECS, sink Sink) {
	margin := float64(cfg.HUD.Margin)

	if entry, ok := components.Player.First(e.World); ok {
		lives := components.Player.Get(entry).Lives
		sink.DrawText(fmt.Sprintf("Lives: %d", lives), margin, margin, TextBody, cfg.HUD.TextColor)
	}

	if session, ok := GetSession(e); ok {
		label := fmt.Sprintf("Level %d/%d", session.LevelIndex, leveldata.LastLevel)
		_, h := sink.MeasureText(label, TextBody)
		sink.DrawText(label, margin, margin+h+4, TextBody, cfg.HUD.TextColor)
	}
}

// DrawOverlay fades in the end-of-level message while the transition runs.
func DrawOverlay(e *ecs.ECS, sink Sink) {
	session, ok := GetSession(e)
	if !ok || session.Status == cfg.StatusPlaying {
		return
	}

	var title string
	switch session.Status {
	case cfg.StatusLevelComplete:
		title = cfg.HUD.CompleteText
	case cfg.StatusDead:
		title = cfg.HUD.GameOverText
	case cfg.StatusWon:
		title = cfg.HUD.WonText
	}

	w, h := sink.Size()
	sink.FillRect(0, 0, float64(w), float64(h), fade(cfg.HUD.OverlayColor, session.Progress))

	tw, th := sink.MeasureText(title, TextTitle)
	x := (float64(w) - tw) / 2
	y := (float64(h) - th) / 2
	sink.DrawText(title, x, y, TextTitle, cfg.Colors.White)
}

// fade scales a premultiplied color by t in [0, 1].
func fade(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: uint8(float64(c.A) * t),
	}
}
