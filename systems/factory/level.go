package factory

import (
	"fmt"

	"github.com/automoto/stonerush/archetypes"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex generates the layout for a 1-based level index and
// materializes it into the world.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) (*donburi.Entry, error) {
	data, err := leveldata.Generate(levelIndex)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return BuildLevel(ecs, levelIndex, data), nil
}

// BuildLevel creates the space, blocks, player, enemies, goal and camera
// described by data.
//
// This is the single place where level space (y up, origin bottom-left)
// is flipped into screen space (y down, origin top-left).
func BuildLevel(ecs *ecs.ECS, levelIndex int, data *leveldata.LevelData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	viewHeight := float64(cfg.C.Height)
	goal := data.Goal()
	levelData := &components.LevelData{
		Index:  levelIndex,
		Data:   data,
		Width:  data.PixelWidth(),
		Height: data.PixelHeight(),
		Goal: gamemath.Rect{
			X: goal.X,
			Y: leveldata.SpawnScreenY(goal.Y, cfg.Level.GoalHeight, viewHeight),
			W: cfg.Level.GoalWidth,
			H: cfg.Level.GoalHeight,
		},
	}
	components.Level.Set(level, levelData)

	// Now create the space for collision detection using the level's dimensions.
	cell := int(cfg.Level.BlockSize)
	CreateSpace(ecs, int(levelData.Width), int(levelData.Height), cell, cell)

	order := 0
	for x := 0; x < data.Width(); x++ {
		for y := 0; y < data.Height(); y++ {
			blockType := data.Block(x, y)
			if blockType == leveldata.Empty {
				continue
			}
			CreateBlock(ecs, float64(x)*cfg.Level.BlockSize, data.ScreenY(y), blockType, order)
			order++
		}
	}

	spawn := data.PlayerSpawn()
	CreatePlayer(ecs, spawn.X, leveldata.SpawnScreenY(spawn.Y, cfg.Player.Height, viewHeight))

	for _, s := range data.EnemySpawns() {
		CreateEnemy(ecs, s.X, leveldata.SpawnScreenY(s.Y, cfg.Enemy.Height, viewHeight))
	}

	CreateCamera(ecs)

	return level
}
