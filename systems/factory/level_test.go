package factory

import (
	"testing"

	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/automoto/stonerush/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBuildLevelFlipsIntoScreenSpace(t *testing.T) {
	d := leveldata.New(4, 20)
	d.SetBlock(0, 0, leveldata.Ground)
	d.SetBlock(1, 2, leveldata.Cracked)
	d.SetPlayerSpawn(64, 96)
	d.AddEnemySpawn(96, 96)
	d.SetGoal(64, 96)

	e := ecs.NewECS(donburi.NewWorld())
	level := BuildLevel(e, 1, d)
	data := components.Level.Get(level)

	assert.Equal(t, 128.0, data.Width)
	assert.Equal(t, 640.0, data.Height)
	assert.Equal(t, 600-96-cfg.Level.GoalHeight, data.Goal.Y)

	var blocks []components.ObjectData
	var types []leveldata.BlockType
	tags.Block.Each(e.World, func(entry *donburi.Entry) {
		blocks = append(blocks, *components.Object.Get(entry))
		types = append(types, components.Block.Get(entry).Type)
	})
	require.Len(t, blocks, 2)
	assert.Equal(t, 608.0, blocks[0].Position.Y, "bottom row lands at the bottom")
	assert.Equal(t, 544.0, blocks[1].Position.Y)
	assert.Equal(t, 32.0, blocks[1].Position.X)
	assert.Equal(t, leveldata.Cracked, types[1])
	assert.True(t, blocks[1].Body.HasTags(tags.ResolvCracked))

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 472.0, components.Object.Get(player).Position.Y)
	assert.Equal(t, cfg.Player.StartingLives, components.Player.Get(player).Lives)

	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	enemyData := components.Enemy.Get(enemy)
	assert.Equal(t, 96.0, enemyData.StartX)
	assert.Equal(t, cfg.DirectionRight, enemyData.PatrolDirection)
	assert.Equal(t, cfg.Enemy.Speed, components.Physics.Get(enemy).Velocity.X)

	_, ok = components.Camera.First(e.World)
	assert.True(t, ok)
}

func TestBodiesShareTheLevelSpace(t *testing.T) {
	d := leveldata.New(4, 20)
	d.SetBlock(0, 0, leveldata.Ground)

	e := ecs.NewECS(donburi.NewWorld())
	BuildLevel(e, 1, d)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		assert.Same(t, space, obj.Body.Space)
		linked, ok := obj.Body.Data.(*donburi.Entry)
		require.True(t, ok)
		assert.Equal(t, entry.Entity(), linked.Entity())
	})
}

func TestCreateLevelAtIndexRejectsOutOfRange(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreateLevelAtIndex(e, 0)
	assert.ErrorIs(t, err, leveldata.ErrLevelOutOfRange)
}

func TestCreateLevelAtIndexMatchesGenerator(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level, err := CreateLevelAtIndex(e, 4)
	require.NoError(t, err)

	data := components.Level.Get(level)
	assert.Equal(t, 4, data.Index)

	enemies := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { enemies++ })
	assert.Equal(t, leveldata.EnemyCount(4), enemies)
}
