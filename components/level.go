package components

import (
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Index  int
	Data   *leveldata.LevelData
	Width  float64 // pixels
	Height float64 // pixels
	Goal   gamemath.Rect
}

var Level = donburi.NewComponentType[LevelData]()
