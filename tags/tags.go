package tags

import "github.com/yohamta/donburi"

var (
	Actor    = donburi.NewTag().SetName("Actor")
	Minigame = donburi.NewTag().SetName("Minigame")
)
