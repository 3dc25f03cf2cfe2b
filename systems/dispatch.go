package systems

import (
	"log"

	"github.com/automoto/padchat/command"
	"github.com/automoto/padchat/components"
	cfg "github.com/automoto/padchat/config"
	"github.com/automoto/padchat/gamepad"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateDispatch returns the system that drains every controller's event
// queues, turns them into commands and hands them to the relay.
func NewUpdateDispatch(c cfg.Config) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		relayEntry, ok := components.Relay.First(e.World)
		if !ok {
			return
		}
		relay := components.Relay.Get(relayEntry)

		components.Controller.Each(e.World, func(entry *donburi.Entry) {
			ctrl := components.Controller.Get(entry)
			if ctrl.Engine == nil {
				return
			}
			dispatchButtons(ctrl, relay, c.LongPressDuration)
			dispatchMoves(ctrl, relay, c.LongMoveDuration)
		})

		for _, digit := range ReleasedDigits() {
			cmd, err := command.ForKey(digit)
			if err != nil {
				log.Printf("Warning: %v", err)
				continue
			}
			relay.LastInput = cmd
			send(relay, cmd)
		}
	}
}

func dispatchButtons(ctrl *components.ControllerData, relay *components.RelayData, longPress float64) {
	for {
		ev, ok := ctrl.Engine.NextButtonEvent()
		if !ok {
			return
		}
		label := command.ButtonLabel(ev)
		ctrl.LastInput = label
		relay.LastInput = label
		log.Printf("[gamepad] button=%q duration=\"%.2f s\"", ev.Button, ev.Duration/1000)

		// START is reserved for showing and hiding the status title.
		if ev.Button == gamepad.ButtonStart {
			relay.Visible = !relay.Visible
			continue
		}
		send(relay, command.ForButton(ev, longPress))
	}
}

func dispatchMoves(ctrl *components.ControllerData, relay *components.RelayData, longMove float64) {
	for {
		ev, ok := ctrl.Engine.NextDirectionEvent()
		if !ok {
			return
		}
		label := command.DirectionLabel(ev)
		ctrl.LastInput = label
		relay.LastInput = label
		log.Printf("[gamepad] side=%q button=\"M%s%s\" duration=\"%.2f s\"",
			ev.Side, ev.Side.Letter(), ev.Bucket, ev.Duration/1000)

		send(relay, command.ForDirection(ev, longMove))
	}
}

func send(relay *components.RelayData, cmd string) {
	if relay.Relay == nil {
		return
	}
	sent, err := relay.Relay.Send(cmd)
	if err != nil {
		log.Printf("Warning: Could not send command %q: %v", cmd, err)
		return
	}
	if sent {
		relay.Outbox = append(relay.Outbox, cmd)
	}
}
