package systems

import (
	"log"

	"github.com/automoto/padchat/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTelemetry counts the commands sent this frame and empties the outbox.
// Must run AFTER UpdateDispatch.
func UpdateTelemetry(ecs *ecs.ECS) {
	components.Relay.Each(ecs.World, func(entry *donburi.Entry) {
		relay := components.Relay.Get(entry)
		if len(relay.Outbox) == 0 {
			return
		}
		if entry.HasComponent(components.Telemetry) {
			rec := components.Telemetry.Get(entry).Recorder
			for _, cmd := range relay.Outbox {
				if rec == nil {
					break
				}
				if err := rec.Add(cmd); err != nil {
					log.Printf("Warning: %v", err)
				}
			}
		}
		relay.Outbox = relay.Outbox[:0]
	})
}
