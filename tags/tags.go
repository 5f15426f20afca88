package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Block  = donburi.NewTag().SetName("Block")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvCracked = "cracked"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
)
