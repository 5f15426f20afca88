package factory

import (
	"github.com/automoto/stonerush/archetypes"
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/automoto/stonerush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock spawns a terrain block with its top-left corner at (x, y).
func CreateBlock(ecs *ecs.ECS, x, y float64, blockType leveldata.BlockType, order int) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	size := cfg.Level.BlockSize
	objTags := []string{tags.ResolvSolid}
	if blockType == leveldata.Cracked {
		objTags = append(objTags, tags.ResolvCracked)
	}
	obj := components.NewObjectData(x, y, size, size, objTags...)
	obj.Body.Data = block // Link for O(1) lookup

	components.Object.SetValue(block, obj)
	components.Block.SetValue(block, components.BlockData{
		Type:  blockType,
		Order: order,
	})

	addToSpace(ecs, obj.Body)

	return block
}
