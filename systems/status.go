package systems

import (
	"fmt"

	"github.com/automoto/padchat/components"
	cfg "github.com/automoto/padchat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var lastTitle string

// StatusTitle is the window title for the current relay state.
func StatusTitle(relay *components.RelayData) string {
	if !relay.Visible {
		return cfg.Window.Title
	}
	label := relay.LastInput
	if label == "" {
		label = "N/A"
	}
	sent := 0
	if relay.Relay != nil {
		sent = relay.Relay.Sent
	}
	return fmt.Sprintf("%s | last: %s | sent: %d", cfg.Window.Title, label, sent)
}

// UpdateStatus mirrors the last input label into the window title.
func UpdateStatus(ecs *ecs.ECS) {
	entry, ok := components.Relay.First(ecs.World)
	if !ok {
		return
	}
	title := StatusTitle(components.Relay.Get(entry))
	if title == lastTitle {
		return
	}
	lastTitle = title
	ebiten.SetWindowTitle(title)
}
