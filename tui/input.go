package tui

import (
	"time"

	cfg "github.com/automoto/stonerush/config"
	"github.com/gdamore/tcell/v2"
)

// HoldWindow is how long a key counts as held after its last event.
// Terminals only send presses and auto-repeats, never releases.
const HoldWindow = 200 * time.Millisecond

var keyActions = map[tcell.Key]cfg.ActionID{
	tcell.KeyLeft:  cfg.ActionMoveLeft,
	tcell.KeyRight: cfg.ActionMoveRight,
	tcell.KeyUp:    cfg.ActionJump,
	tcell.KeyF1:    cfg.ActionToggleDebug,
}

var runeActions = map[rune]cfg.ActionID{
	'a': cfg.ActionMoveLeft,
	'd': cfg.ActionMoveRight,
	'w': cfg.ActionJump,
	' ': cfg.ActionJump,
	'x': cfg.ActionRam,
	'j': cfg.ActionRam,
}

// KeySource turns terminal key events into held actions.
type KeySource struct {
	lastSeen [cfg.ActionCount]time.Time
	now      func() time.Time
}

func NewKeySource() *KeySource {
	return &KeySource{now: time.Now}
}

// IsQuit reports whether key should end the program.
func IsQuit(key tcell.Key) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC
}

// Handle records a key event. It reports whether the key maps to an action.
func (k *KeySource) Handle(key tcell.Key, r rune) bool {
	action, ok := keyActions[key]
	if !ok && key == tcell.KeyRune {
		action, ok = runeActions[r]
	}
	if !ok {
		return false
	}
	k.lastSeen[action] = k.now()
	return true
}

func (k *KeySource) Poll(pressed *[cfg.ActionCount]bool) {
	now := k.now()
	for id, seen := range k.lastSeen {
		if !seen.IsZero() && now.Sub(seen) <= HoldWindow {
			pressed[id] = true
		}
	}
}
