package components

import (
	"github.com/automoto/stonerush/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State  config.PlayerState
	Facing config.Direction
	Lives  int

	RamTimer     float64 // Seconds of dash left
	Invulnerable bool
	InvulnTimer  float64 // Seconds of invulnerability left

	// Walk animation
	WalkTimer float64
	WalkFrame int // 0 = idle frame, 1 = walk frame
}

var Player = donburi.NewComponentType[PlayerData]()

func (p *PlayerData) IsRamming() bool { return p.State == config.Ramming }

// TakeDamage removes a life and starts the invulnerability window. It does
// nothing while invulnerable and reports whether a life was lost.
func (p *PlayerData) TakeDamage(invulnDuration float64) bool {
	if p.Invulnerable {
		return false
	}
	p.Lives--
	p.Invulnerable = true
	p.InvulnTimer = invulnDuration
	return true
}
