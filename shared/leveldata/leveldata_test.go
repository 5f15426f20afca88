package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfBoundsAccessFailsClosed(t *testing.T) {
	d := New(4, 3)
	d.SetBlock(1, 1, Cracked)

	assert.Equal(t, Cracked, d.Block(1, 1))
	assert.Equal(t, Empty, d.Block(-1, 0))
	assert.Equal(t, Empty, d.Block(4, 0))
	assert.Equal(t, Empty, d.Block(0, 3))

	assert.NotPanics(t, func() { d.SetBlock(10, 10, Ground) })
	assert.NotPanics(t, func() { d.SetBlock(-1, -1, Ground) })
}

func TestScreenYFlipsRows(t *testing.T) {
	d := New(10, 20)

	assert.Equal(t, 19*BlockSize, d.ScreenY(0), "bottom row is drawn lowest")
	assert.Equal(t, 0.0, d.ScreenY(19), "top row is drawn at y=0")
	assert.Equal(t, 472.0, SpawnScreenY(96, 32, 600))
}

func TestGenerateRejectsOutOfRange(t *testing.T) {
	for _, index := range []int{0, -1, 11} {
		_, err := Generate(index)
		assert.ErrorIs(t, err, ErrLevelOutOfRange, "index %d", index)
	}
}

func TestGenerateIsPure(t *testing.T) {
	for index := FirstLevel; index <= LastLevel; index++ {
		a, err := Generate(index)
		require.NoError(t, err)
		b, err := Generate(index)
		require.NoError(t, err)
		assert.Equal(t, a, b, "level %d", index)
	}
}

func TestGenerateLayout(t *testing.T) {
	for index := FirstLevel; index <= LastLevel; index++ {
		d, err := Generate(index)
		require.NoError(t, err)

		spawn := d.PlayerSpawn()
		spawnCol := int(spawn.X / BlockSize)
		assert.Equal(t, Ground, d.Block(spawnCol, groundRows-1), "level %d: ground under spawn", index)
		assert.Less(t, spawn.X, d.PixelWidth()/4, "level %d: spawn near start", index)

		goal := d.Goal()
		assert.Greater(t, goal.X, d.PixelWidth()*0.9, "level %d: goal near far end", index)
		assert.Equal(t, Ground, d.Block(int(goal.X/BlockSize), groundRows-1), "level %d: ground under goal", index)

		assert.Len(t, d.EnemySpawns(), EnemyCount(index), "level %d", index)
		for _, e := range d.EnemySpawns() {
			col := int(e.X / BlockSize)
			assert.Equal(t, Ground, d.Block(col, groundRows-1), "level %d: enemy at col %d over ground", index, col)
			assert.Equal(t, Empty, d.Block(col, groundRows), "level %d: enemy at col %d not inside a block", index, col)
		}

		assert.Equal(t, GapCount(index)*GapWidth(index), countGapColumns(d), "level %d gaps", index)
		assert.Positive(t, countBlocks(d, Cracked), "level %d has cracked blocks", index)
	}
}

func TestDifficultyScales(t *testing.T) {
	first, err := Generate(FirstLevel)
	require.NoError(t, err)
	last, err := Generate(LastLevel)
	require.NoError(t, err)

	assert.Greater(t, countGapColumns(last), countGapColumns(first))
	assert.Greater(t, len(last.EnemySpawns()), len(first.EnemySpawns()))
	assert.Greater(t, countBlocks(last, Cracked), countBlocks(first, Cracked))
	assert.Greater(t, last.Width(), first.Width())
}

func TestEnemySpawnsAreEvenlyOrdered(t *testing.T) {
	d, err := Generate(5)
	require.NoError(t, err)

	spawns := d.EnemySpawns()
	for i := 1; i < len(spawns); i++ {
		assert.Greater(t, spawns[i].X, spawns[i-1].X)
	}
}

func countGapColumns(d *LevelData) int {
	n := 0
	for x := 0; x < d.Width(); x++ {
		if d.Block(x, 0) == Empty {
			n++
		}
	}
	return n
}

func countBlocks(d *LevelData, t BlockType) int {
	n := 0
	for x := 0; x < d.Width(); x++ {
		for y := 0; y < d.Height(); y++ {
			if d.Block(x, y) == t {
				n++
			}
		}
	}
	return n
}
