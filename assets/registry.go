package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/stonerush/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

// Sprite names known to the renderer.
const (
	PlayerIdle   = "player_idle"
	PlayerWalk   = "player_walk"
	BlockGround  = "block_ground"
	BlockCracked = "block_cracked"
	Background   = "background"
)

// AllSprites lists every sprite the game asks for.
var AllSprites = []string{PlayerIdle, PlayerWalk, BlockGround, BlockCracked, Background}

// Registry maps sprite names to decoded images. It is built once before
// the level and handed to whatever renders; there is no package-level
// cache.
type Registry struct {
	images map[string]*ebiten.Image
}

// NewRegistry returns an empty registry. Every lookup yields nil until
// Load is called.
func NewRegistry() *Registry {
	return &Registry{images: make(map[string]*ebiten.Image)}
}

// Load decodes "<name>.png" from fsys for each name. Missing or broken
// files are logged and skipped so the renderer falls back to placeholders.
// It returns the number of sprites loaded.
func (r *Registry) Load(fsys fs.FS, names ...string) int {
	loaded := 0
	for _, name := range names {
		img, err := loadImage(fsys, name+".png")
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"sprite": name,
				"error":  err,
			}).Warn("sprite unavailable, using placeholder")
			continue
		}
		r.images[name] = img
		loaded++
	}
	return loaded
}

// Add registers an already decoded image under name.
func (r *Registry) Add(name string, img *ebiten.Image) {
	r.images[name] = img
}

// Sprite returns the image for name, or nil if it was never loaded.
// A nil registry behaves as an empty one.
func (r *Registry) Sprite(name string) *ebiten.Image {
	if r == nil {
		return nil
	}
	return r.images[name]
}

func loadImage(fsys fs.FS, file string) (*ebiten.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no asset directory")
	}
	data, err := fs.ReadFile(fsys, path.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return img, nil
}
