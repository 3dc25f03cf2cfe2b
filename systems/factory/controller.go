package factory

import (
	"github.com/automoto/padchat/archetypes"
	"github.com/automoto/padchat/components"
	"github.com/automoto/padchat/gamepad"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateController spawns a controller entity with a fresh engine.
func CreateController(ecs *ecs.ECS, cfg gamepad.Config, sampler gamepad.Sampler) *donburi.Entry {
	controller := archetypes.Controller.Spawn(ecs)
	components.Controller.SetValue(controller, components.ControllerData{
		Engine:  gamepad.New(cfg),
		Sampler: sampler,
	})
	return controller
}
