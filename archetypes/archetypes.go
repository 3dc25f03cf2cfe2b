package archetypes

import (
	"github.com/automoto/padchat/components"
	cfg "github.com/automoto/padchat/config"
	"github.com/automoto/padchat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Controller = newArchetype(
		tags.Controller,
		components.Controller,
	)
	Relay = newArchetype(
		tags.Relay,
		components.Relay,
		components.Telemetry,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
