package config

import (
	"github.com/automoto/padchat/gamepad"
)

// StickThresholds contains the dead and active zone radii of one stick
type StickThresholds struct {
	Dead   float64 // Below this length the stick is at rest
	Active float64 // At or above this length a direction is held
}

// Threshold limits enforced by SetDead/SetActive
const (
	MinActive     = 0.02
	MaxActive     = 0.99
	MinDead       = 0.01
	MaxDead       = 0.98
	thresholdStep = 0.01
)

// SetActive clamps the active threshold into range and lowers the dead
// threshold when it would no longer sit below it.
func (s *StickThresholds) SetActive(v float64) {
	if v < MinActive {
		v = MinActive
	} else if v > MaxActive {
		v = MaxActive
	}
	if v <= s.Dead {
		s.Dead = v - thresholdStep
	}
	s.Active = v
}

// SetDead clamps the dead threshold into range and raises the active
// threshold when it would no longer sit above it.
func (s *StickThresholds) SetDead(v float64) {
	if v < MinDead {
		v = MinDead
	} else if v > MaxDead {
		v = MaxDead
	}
	if v >= s.Active {
		s.Active = v + thresholdStep
	}
	s.Dead = v
}

// Config holds everything the relay needs at start-up
type Config struct {
	Left  StickThresholds
	Right StickThresholds

	// Timing (milliseconds)
	FirstFrameDelta   float64 // Credited to the first polled frame
	LongPressDuration float64 // Button held at least this long sends a "+" command
	LongMoveDuration  float64 // Stick held at least this long sends a "+" command

	// Sampling
	GamepadIndex int  // Which connected gamepad to read
	InvertY      bool // Platform reports down as +Y; flip so up is T

	// Dispatch
	DropFirstCommand bool // Swallow the first command after start-up
	Randomize        bool // Rotate letter case of outgoing commands

	TelemetryEnabled bool
	AppName          string // gdata application name
}

// WindowConfig contains status window configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Window is the global status window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Width:  320,
		Height: 120,
		Title:  "padchat",
	}
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Left:              StickThresholds{Dead: 0.2, Active: 0.8},
		Right:             StickThresholds{Dead: 0.2, Active: 0.8},
		FirstFrameDelta:   gamepad.DefaultFirstFrameDelta,
		LongPressDuration: 400,
		LongMoveDuration:  400,
		GamepadIndex:      0,
		InvertY:           true,
		DropFirstCommand:  true,
		Randomize:         true,
		TelemetryEnabled:  true,
		AppName:           "padchat",
	}
}

// Stick returns the thresholds for one side.
func (c *Config) Stick(side gamepad.StickSide) *StickThresholds {
	if side == gamepad.StickLeft {
		return &c.Left
	}
	return &c.Right
}

// Engine builds the value injected into gamepad.New.
func (c Config) Engine() gamepad.Config {
	return gamepad.Config{
		Sticks: [gamepad.StickCount]gamepad.StickConfig{
			gamepad.StickLeft:  {Dead: c.Left.Dead, Active: c.Left.Active},
			gamepad.StickRight: {Dead: c.Right.Dead, Active: c.Right.Active},
		},
		FirstFrameDelta: c.FirstFrameDelta,
	}
}
