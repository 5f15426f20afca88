package components

import "github.com/yohamta/donburi"

// FrameData carries the current frame's time step in seconds.
type FrameData struct {
	Delta float64
}

var Frame = donburi.NewComponentType[FrameData]()
