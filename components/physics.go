package components

import (
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity gamemath.Vector
	Grounded bool // Resting on solid geometry, within the ground tolerance
}

var Physics = donburi.NewComponentType[PhysicsData]()
