package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Block    = donburi.NewTag().SetName("Block")
	Crate    = donburi.NewTag().SetName("Crate")
	Metal    = donburi.NewTag().SetName("Metal")
	GameRect = donburi.NewTag().SetName("GameRect")
)

// Resolv tags for the broad phase
const (
	ResolvPlayer = "player"
	ResolvBlock  = "block"
)
