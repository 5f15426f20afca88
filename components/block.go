package components

import (
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/yohamta/donburi"
)

type BlockData struct {
	Type      leveldata.BlockType
	Destroyed bool // One-way latch, set when rammed while Cracked
	Order     int  // Creation order, used to keep query results stable
}

var Block = donburi.NewComponentType[BlockData]()

// IsSolid reports whether the block still takes part in collisions.
func (b *BlockData) IsSolid() bool {
	return !b.Destroyed && b.Type != leveldata.Empty
}
