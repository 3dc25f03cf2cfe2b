package factory

import (
	"github.com/automoto/padchat/archetypes"
	"github.com/automoto/padchat/command"
	"github.com/automoto/padchat/components"
	"github.com/automoto/padchat/telemetry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRelay spawns the single relay entity. A nil recorder disables
// telemetry counting.
func CreateRelay(ecs *ecs.ECS, relay *command.Relay, recorder *telemetry.Recorder) *donburi.Entry {
	entry := archetypes.Relay.Spawn(ecs)
	components.Relay.SetValue(entry, components.RelayData{
		Relay:   relay,
		Visible: true,
	})
	components.Telemetry.SetValue(entry, components.TelemetryData{
		Recorder: recorder,
	})
	return entry
}
