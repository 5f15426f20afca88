// Package leveldata describes level layouts as plain grid data and builds
// them deterministically from a level index.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "github.com/automoto/stonerush/shared/gamemath"

// BlockType is the content of one grid cell.
type BlockType int

const (
	Empty BlockType = iota
	Ground
	Cracked
)

func (t BlockType) String() string {
	switch t {
	case Ground:
		return "Ground"
	case Cracked:
		return "Cracked"
	}
	return "Empty"
}

// BlockSize is the edge length of one grid cell in pixels.
const BlockSize = 32.0

// LevelData is a width x height grid of block types plus spawn points.
//
// Grid and spawn coordinates are in level space: (0, 0) is the bottom-left
// cell and y grows upward. Use ScreenY/SpawnScreenY to convert to screen
// space when materializing entities.
type LevelData struct {
	width, height int
	blocks        [][]BlockType // column-major, blocks[x][y]

	playerSpawn gamemath.Vector
	enemySpawns []gamemath.Vector
	goal        gamemath.Vector
}

// New returns an empty grid.
func New(width, height int) *LevelData {
	blocks := make([][]BlockType, width)
	for x := range blocks {
		blocks[x] = make([]BlockType, height)
	}
	return &LevelData{width: width, height: height, blocks: blocks}
}

func (d *LevelData) Width() int  { return d.width }
func (d *LevelData) Height() int { return d.height }

// PixelWidth returns the level width in pixels.
func (d *LevelData) PixelWidth() float64 { return float64(d.width) * BlockSize }

// PixelHeight returns the level height in pixels.
func (d *LevelData) PixelHeight() float64 { return float64(d.height) * BlockSize }

func (d *LevelData) inBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// Block returns the block at (x, y). Coordinates outside the grid read as
// Empty.
func (d *LevelData) Block(x, y int) BlockType {
	if !d.inBounds(x, y) {
		return Empty
	}
	return d.blocks[x][y]
}

// SetBlock sets the block at (x, y). Coordinates outside the grid are
// ignored.
func (d *LevelData) SetBlock(x, y int, t BlockType) {
	if !d.inBounds(x, y) {
		return
	}
	d.blocks[x][y] = t
}

// SetPlayerSpawn sets the player spawn in level-space pixels.
func (d *LevelData) SetPlayerSpawn(x, y float64) {
	d.playerSpawn = gamemath.Vector{X: x, Y: y}
}

// AddEnemySpawn appends an enemy spawn in level-space pixels.
func (d *LevelData) AddEnemySpawn(x, y float64) {
	d.enemySpawns = append(d.enemySpawns, gamemath.Vector{X: x, Y: y})
}

// SetGoal sets the goal position in level-space pixels.
func (d *LevelData) SetGoal(x, y float64) {
	d.goal = gamemath.Vector{X: x, Y: y}
}

func (d *LevelData) PlayerSpawn() gamemath.Vector { return d.playerSpawn }
func (d *LevelData) Goal() gamemath.Vector        { return d.goal }

// EnemySpawns returns the ordered enemy spawn list. The slice is shared.
func (d *LevelData) EnemySpawns() []gamemath.Vector { return d.enemySpawns }

// ScreenY converts a grid row to the screen-space y of the block's top edge.
func (d *LevelData) ScreenY(gridY int) float64 {
	return float64(d.height-1-gridY) * BlockSize
}

// SpawnScreenY converts a level-space spawn height to the screen-space y of
// an entity's top edge, measured against a view of height viewHeight.
func SpawnScreenY(levelY, entityHeight, viewHeight float64) float64 {
	return viewHeight - levelY - entityHeight
}
