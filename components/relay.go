package components

import (
	"github.com/automoto/padchat/command"
	"github.com/automoto/padchat/telemetry"
	"github.com/yohamta/donburi"
)

// RelayData holds the outbound side of the pipeline.
type RelayData struct {
	Relay     *command.Relay
	Outbox    []string // Commands produced this frame, consumed by telemetry
	LastInput string   // Mirrors the latest controller or keyboard label
	Visible   bool     // Toggled by START; gates the status title
}

var Relay = donburi.NewComponentType[RelayData]()

// TelemetryData wraps the command counter.
type TelemetryData struct {
	Recorder *telemetry.Recorder
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
