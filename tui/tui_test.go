package tui

import (
	"image/color"
	"testing"
	"time"

	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 38)
	t.Cleanup(screen.Fini)
	return screen
}

func TestFillRectCoversCells(t *testing.T) {
	screen := newScreen(t)
	sink := NewSink(screen, 800, 600)
	red := color.RGBA{R: 255, A: 255}

	sink.FillRect(16, 32, 16, 32, red)

	_, _, style, _ := screen.GetContent(2, 2)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.FromImageColor(red), bg)

	_, _, style, _ = screen.GetContent(4, 2)
	_, bg, _ = style.Decompose()
	assert.NotEqual(t, tcell.FromImageColor(red), bg)
}

func TestTranslucentFillIgnored(t *testing.T) {
	screen := newScreen(t)
	sink := NewSink(screen, 800, 600)

	sink.FillRect(0, 0, 800, 600, color.RGBA{A: 60})

	_, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, tcell.StyleDefault, style)
}

func TestDrawTextPlacesRunes(t *testing.T) {
	screen := newScreen(t)
	sink := NewSink(screen, 800, 600)

	sink.DrawText("Lives: 3", 10, 10, systems.TextBody, color.Black)

	var got []rune
	for x := 1; x < 9; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, "Lives: 3", string(got))

	w, h := sink.MeasureText("Lives: 3", systems.TextBody)
	assert.Equal(t, 64.0, w)
	assert.Equal(t, 16.0, h)
}

func TestSinkCannotDrawImages(t *testing.T) {
	sink := NewSink(newScreen(t), 800, 600)
	assert.False(t, sink.DrawImage(nil, 0, 0, systems.ImageOptions{}))
}

func TestKeysHeldWithinWindow(t *testing.T) {
	clock := time.Unix(0, 0)
	keys := NewKeySource()
	keys.now = func() time.Time { return clock }

	assert.True(t, keys.Handle(tcell.KeyRune, 'd'))
	assert.False(t, keys.Handle(tcell.KeyRune, 'z'))

	var pressed [cfg.ActionCount]bool
	keys.Poll(&pressed)
	assert.True(t, pressed[cfg.ActionMoveRight])
	assert.False(t, pressed[cfg.ActionMoveLeft])

	clock = clock.Add(HoldWindow + time.Millisecond)
	pressed = [cfg.ActionCount]bool{}
	keys.Poll(&pressed)
	assert.False(t, pressed[cfg.ActionMoveRight])
}

func TestQuitKeys(t *testing.T) {
	assert.True(t, IsQuit(tcell.KeyEscape))
	assert.True(t, IsQuit(tcell.KeyCtrlC))
	assert.False(t, IsQuit(tcell.KeyRune))
	assert.True(t, NewKeySource().Handle(tcell.KeyF1, 0), "debug toggle")
}

type fakeGame struct {
	deltas []float64
	drawn  int
}

func (f *fakeGame) Step(delta float64) error {
	f.deltas = append(f.deltas, delta)
	return nil
}

func (f *fakeGame) Render(sink systems.Sink) {
	f.drawn++
	sink.FillRect(0, 0, 8, 16, color.White)
}

func TestRunnerFrameStepsAndDraws(t *testing.T) {
	screen := newScreen(t)
	game := &fakeGame{}
	r := NewRunner(screen, game, NewKeySource())

	require.NoError(t, r.Frame(0.016))

	assert.Equal(t, []float64{0.016}, game.deltas)
	assert.Equal(t, 1, game.drawn)
}
