package systems

import (
	"image/color"

	"github.com/automoto/stonerush/assets"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/automoto/stonerush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TextStyle selects one of the HUD font faces.
type TextStyle int

const (
	TextBody TextStyle = iota
	TextTitle
)

// ImageOptions tweaks how a sprite is drawn.
type ImageOptions struct {
	FlipX bool
	Flash bool // Brightened while invulnerable
}

// Sink receives draw commands in screen space. Rendering never reads
// anything back from it except its size and text metrics.
type Sink interface {
	Size() (int, int)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	// DrawImage reports false when the sink cannot show images; callers
	// then draw a placeholder.
	DrawImage(img *ebiten.Image, x, y float64, opts ImageOptions) bool
	DrawText(s string, x, y float64, style TextStyle, clr color.Color)
	MeasureText(s string, style TextStyle) (float64, float64)
}

// RenderFunc draws one layer of the world.
type RenderFunc func(e *ecs.ECS, sink Sink)

// Renderer draws the world with sprites from an explicit registry.
type Renderer struct {
	Assets *assets.Registry
}

func NewRenderer(reg *assets.Registry) *Renderer {
	return &Renderer{Assets: reg}
}

// Layers returns the draw passes in back-to-front order.
func (r *Renderer) Layers() []RenderFunc {
	return []RenderFunc{
		r.DrawBackground,
		r.DrawLevel,
		DrawEnemies,
		r.DrawPlayer,
		DrawDebug,
		DrawHUD,
		DrawOverlay,
	}
}

// Draw runs every layer against sink.
func (r *Renderer) Draw(e *ecs.ECS, sink Sink) {
	for _, layer := range r.Layers() {
		layer(e, sink)
	}
}

func cameraOffset(e *ecs.ECS) (float64, float64) {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry).Offset()
	}
	return 0, 0
}

// onScreen culls rects entirely outside the view.
func onScreen(sink Sink, x, y, w, h float64) bool {
	sw, sh := sink.Size()
	return x+w > 0 && y+h > 0 && x < float64(sw) && y < float64(sh)
}

func (r *Renderer) DrawBackground(e *ecs.ECS, sink Sink) {
	w, h := sink.Size()
	if img := r.Assets.Sprite(assets.Background); img != nil {
		if sink.DrawImage(img, 0, 0, ImageOptions{}) {
			return
		}
	}
	sink.FillRect(0, 0, float64(w), float64(h), cfg.Colors.Sky)
}

// DrawLevel draws the remaining blocks and the goal with its flag pole.
func (r *Renderer) DrawLevel(e *ecs.ECS, sink Sink) {
	camX, camY := cameraOffset(e)

	tags.Block.Each(e.World, func(entry *donburi.Entry) {
		block := components.Block.Get(entry)
		if !block.IsSolid() {
			return
		}
		bounds := components.Object.Get(entry).Bounds()
		x, y := bounds.X-camX, bounds.Y-camY
		if !onScreen(sink, x, y, bounds.W, bounds.H) {
			return
		}

		sprite, fill := assets.BlockGround, cfg.Colors.Ground
		if block.Type == leveldata.Cracked {
			sprite, fill = assets.BlockCracked, cfg.Colors.CrackedBlock
		}
		if img := r.Assets.Sprite(sprite); img != nil && sink.DrawImage(img, x, y, ImageOptions{}) {
			return
		}
		sink.FillRect(x, y, bounds.W, bounds.H, fill)
		if block.Type == leveldata.Cracked {
			sink.StrokeRect(x, y, bounds.W, bounds.H, 2, cfg.Colors.Black)
		}
	})

	level, ok := getLevel(e)
	if !ok {
		return
	}
	goal := level.Goal
	gx, gy := goal.X-camX, goal.Y-camY
	if !onScreen(sink, gx, gy, goal.W, goal.H) {
		return
	}
	sink.FillRect(gx, gy, goal.W, goal.H, cfg.Colors.Goal)
	sink.FillRect(gx+10, gy, 4, goal.H, cfg.Colors.DarkGray)
}

// DrawEnemies draws live enemies as red squares with eyes.
func DrawEnemies(e *ecs.ECS, sink Sink) {
	camX, camY := cameraOffset(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).IsDead {
			return
		}
		bounds := components.Object.Get(entry).Bounds()
		x, y := bounds.X-camX, bounds.Y-camY
		if !onScreen(sink, x, y, bounds.W, bounds.H) {
			return
		}
		sink.FillRect(x, y, bounds.W, bounds.H, cfg.Colors.Enemy)
		sink.FillRect(x+6, y+18, 4, 4, cfg.Colors.Black)
		sink.FillRect(x+22, y+18, 4, 4, cfg.Colors.Black)
	})
}

// DrawPlayer draws the player sprite, facing-flipped, flashing while
// invulnerable, with speed lines during a ram.
func (r *Renderer) DrawPlayer(e *ecs.ECS, sink Sink) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camX, camY := cameraOffset(e)
	player := components.Player.Get(entry)
	bounds := components.Object.Get(entry).Bounds()
	x, y := bounds.X-camX, bounds.Y-camY

	// Flash on even tenths of a second
	flash := player.Invulnerable && int(player.InvulnTimer*10)%2 == 0

	name := assets.PlayerIdle
	if player.State == cfg.Walking && player.WalkFrame == 1 {
		name = assets.PlayerWalk
	}
	opts := ImageOptions{FlipX: player.Facing == cfg.DirectionLeft, Flash: flash}
	img := r.Assets.Sprite(name)
	if img == nil || !sink.DrawImage(img, x, y, opts) {
		sink.FillRect(x, y, bounds.W, bounds.H, cfg.Colors.Player)
		if flash {
			sink.FillRect(x, y, bounds.W, bounds.H, cfg.Colors.Flash)
		}
	}

	if player.IsRamming() {
		sign := cfg.Sign(player.Facing)
		lineX := x - 10
		if player.Facing == cfg.DirectionLeft {
			lineX = x + bounds.W + 10
		}
		drawSpeedLine(sink, lineX, y+10, -sign*8)
		drawSpeedLine(sink, lineX, y+20, -sign*6)
	}
}

func drawSpeedLine(sink Sink, x, y, length float64) {
	if length < 0 {
		x, length = x+length, -length
	}
	sink.FillRect(x, y-1, length, 3, cfg.Colors.White)
}

// DrawDebug outlines every bounding box and the goal when enabled.
func DrawDebug(e *ecs.ECS, sink Sink) {
	if !cfg.Debug.DrawBounds {
		return
	}
	camX, camY := cameraOffset(e)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Block) && !components.Block.Get(entry).IsSolid() {
			return
		}
		b := components.Object.Get(entry).Bounds()
		sink.StrokeRect(b.X-camX, b.Y-camY, b.W, b.H, 1, cfg.Debug.BoundsColor)
	})

	if level, ok := getLevel(e); ok {
		g := level.Goal
		sink.StrokeRect(g.X-camX, g.Y-camY, g.W, g.H, 1, cfg.Debug.BoundsColor)
	}
}
