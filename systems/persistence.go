package systems

import (
	"log"

	"github.com/automoto/padchat/telemetry"
)

var telemetryStore *telemetry.GdataStore
var gdataInitialized bool

// InitPersistence opens the gdata store used for telemetry counters
func InitPersistence(appName string) error {
	s, err := telemetry.OpenGdataStore(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	telemetryStore = s
	gdataInitialized = true
	return nil
}

// TelemetryStore returns the persistent store, or nil when persistence is
// unavailable so counters live in memory only.
func TelemetryStore() telemetry.Store {
	if !gdataInitialized || telemetryStore == nil {
		return nil
	}
	return telemetryStore
}
