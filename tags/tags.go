package tags

import "github.com/yohamta/donburi"

var (
	Controller = donburi.NewTag().SetName("Controller")
	Relay      = donburi.NewTag().SetName("Relay")
)
