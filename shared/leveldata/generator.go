package leveldata

import (
	"errors"
	"fmt"
)

const (
	FirstLevel = 1
	LastLevel  = 10

	HeightBlocks    = 20
	baseWidthBlocks = 100
	widthStepBlocks = 10

	groundRows = 3

	spawnColumn     = 2
	goalInsetBlocks = 5

	// Gaps stay clear of the spawn area and the goal run-up.
	gapStartColumn = 12
	gapEndInset    = 15

	maxStackHeight = 3
)

// platformTiers are the three grid rows elevated platforms sit on.
var platformTiers = [3]int{5, 7, 9}

// ErrLevelOutOfRange is returned for indices outside FirstLevel..LastLevel.
var ErrLevelOutOfRange = errors.New("level index out of range")

// Generate builds the layout for a 1-based level index. The result depends
// only on the index.
func Generate(index int) (*LevelData, error) {
	if index < FirstLevel || index > LastLevel {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrLevelOutOfRange, index, FirstLevel, LastLevel)
	}

	width := baseWidthBlocks + widthStepBlocks*(index-1)
	d := New(width, HeightBlocks)

	for x := 0; x < width; x++ {
		for y := 0; y < groundRows; y++ {
			d.SetBlock(x, y, Ground)
		}
	}

	carveGaps(d, index)
	placePlatforms(d, index)
	placeCrackedStacks(d, index)

	surface := groundRows * BlockSize
	d.SetPlayerSpawn(spawnColumn*BlockSize, surface)
	placeEnemies(d, index)
	d.SetGoal(float64(width-goalInsetBlocks)*BlockSize, surface)

	return d, nil
}

// GapCount is the number of holes in the ground strip for a level.
func GapCount(index int) int { return index / 2 }

// GapWidth is the width in blocks of every gap in a level.
func GapWidth(index int) int { return 2 + index/4 }

// PlatformCount is the number of elevated platforms in a level.
func PlatformCount(index int) int { return 4 + index/2 }

// CrackedStackCount is the number of Cracked block stacks in a level.
func CrackedStackCount(index int) int { return 2 + index/2 }

// CrackedStackHeight is the height in blocks of every Cracked stack.
func CrackedStackHeight(index int) int {
	return min(maxStackHeight, 1+(index-1)/3)
}

// EnemyCount is the number of enemy spawns in a level.
func EnemyCount(index int) int { return 2 + index }

func carveGaps(d *LevelData, index int) {
	count := GapCount(index)
	if count == 0 {
		return
	}
	gapWidth := GapWidth(index)
	span := d.Width() - gapEndInset - gapStartColumn
	spacing := span / (count + 1)

	for k := 0; k < count; k++ {
		start := gapStartColumn + spacing*(k+1) - gapWidth/2
		for x := start; x < start+gapWidth; x++ {
			for y := 0; y < groundRows; y++ {
				d.SetBlock(x, y, Empty)
			}
		}
	}
}

func placePlatforms(d *LevelData, index int) {
	count := PlatformCount(index)
	length := 10 - index/3
	spacing := (d.Width() - 20) / count

	for k := 0; k < count; k++ {
		start := 10 + k*spacing
		row := platformTiers[(k+index)%len(platformTiers)]
		for x := start; x < start+length && x < d.Width()-1; x++ {
			d.SetBlock(x, row, Ground)
		}
	}
}

func placeCrackedStacks(d *LevelData, index int) {
	count := CrackedStackCount(index)
	height := CrackedStackHeight(index)
	limit := d.Width() - goalInsetBlocks - 1
	spacing := (d.Width() - 30) / count

	for k := 0; k < count; k++ {
		col := 20 + k*spacing + spacing/2
		for col < limit && !columnFree(d, col, height+1) {
			col++
		}
		if col >= limit {
			continue
		}
		for y := groundRows; y < groundRows+height; y++ {
			d.SetBlock(col, y, Cracked)
		}
	}
}

func placeEnemies(d *LevelData, index int) {
	count := EnemyCount(index)
	limit := d.Width() - goalInsetBlocks - 1
	spacing := (d.Width() - 20) / count
	surface := groundRows * BlockSize

	for k := 0; k < count; k++ {
		col := 10 + k*spacing + spacing/2
		for col < limit && !columnFree(d, col, 1) {
			col++
		}
		if col >= limit {
			continue
		}
		d.AddEnemySpawn(float64(col)*BlockSize, surface)
	}
}

// columnFree reports whether col has ground under it and the first rows
// rows above the ground strip are empty.
func columnFree(d *LevelData, col, rows int) bool {
	if d.Block(col, groundRows-1) != Ground {
		return false
	}
	for y := groundRows; y < groundRows+rows; y++ {
		if d.Block(col, y) != Empty {
			return false
		}
	}
	return true
}
