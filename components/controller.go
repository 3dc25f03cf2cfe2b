package components

import (
	"github.com/automoto/padchat/gamepad"
	"github.com/yohamta/donburi"
)

// ControllerData binds one polled gamepad to its input engine.
type ControllerData struct {
	Engine    *gamepad.Engine
	Sampler   gamepad.Sampler
	LastInput string // Label of the most recent event ("A", "L (TR)")
	Frames    int    // Snapshots consumed so far
}

var Controller = donburi.NewComponentType[ControllerData]()
