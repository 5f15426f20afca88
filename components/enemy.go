package components

import (
	"github.com/automoto/stonerush/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	StartX          float64 // Patrol anchor
	PatrolDirection config.Direction
	IsDead          bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
