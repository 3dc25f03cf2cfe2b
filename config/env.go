package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by Load
const (
	EnvLeftDead         = "PADCHAT_LEFT_DEAD"
	EnvLeftActive       = "PADCHAT_LEFT_ACTIVE"
	EnvRightDead        = "PADCHAT_RIGHT_DEAD"
	EnvRightActive      = "PADCHAT_RIGHT_ACTIVE"
	EnvFirstFrameDelta  = "PADCHAT_FIRST_FRAME_MS"
	EnvLongPress        = "PADCHAT_LONG_PRESS_MS"
	EnvLongMove         = "PADCHAT_LONG_MOVE_MS"
	EnvGamepadIndex     = "PADCHAT_GAMEPAD"
	EnvInvertY          = "PADCHAT_INVERT_Y"
	EnvDropFirstCommand = "PADCHAT_DROP_FIRST"
	EnvRandomize        = "PADCHAT_RANDOMIZE"
	EnvTelemetry        = "PADCHAT_TELEMETRY"
)

// Load reads an optional .env file from the working directory, then applies
// PADCHAT_* environment variables over the defaults.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies variables from lookup over Default. Unset variables keep
// their default; malformed ones are an error.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	p := envParser{lookup: lookup}

	// Active before dead so a lowered active pulls dead along with it.
	if v, ok := p.parseFloat(EnvLeftActive); ok {
		c.Left.SetActive(v)
	}
	if v, ok := p.parseFloat(EnvLeftDead); ok {
		c.Left.SetDead(v)
	}
	if v, ok := p.parseFloat(EnvRightActive); ok {
		c.Right.SetActive(v)
	}
	if v, ok := p.parseFloat(EnvRightDead); ok {
		c.Right.SetDead(v)
	}

	if v, ok := p.parseFloat(EnvFirstFrameDelta); ok {
		c.FirstFrameDelta = v
	}
	if v, ok := p.parseFloat(EnvLongPress); ok {
		c.LongPressDuration = v
	}
	if v, ok := p.parseFloat(EnvLongMove); ok {
		c.LongMoveDuration = v
	}
	if v, ok := p.parseInt(EnvGamepadIndex); ok {
		c.GamepadIndex = v
	}
	if v, ok := p.parseBool(EnvInvertY); ok {
		c.InvertY = v
	}
	if v, ok := p.parseBool(EnvDropFirstCommand); ok {
		c.DropFirstCommand = v
	}
	if v, ok := p.parseBool(EnvRandomize); ok {
		c.Randomize = v
	}
	if v, ok := p.parseBool(EnvTelemetry); ok {
		c.TelemetryEnabled = v
	}

	if p.err != nil {
		return Default(), p.err
	}
	if c.FirstFrameDelta <= 0 {
		return Default(), fmt.Errorf("%s must be positive, got %v", EnvFirstFrameDelta, c.FirstFrameDelta)
	}
	if c.GamepadIndex < 0 {
		return Default(), fmt.Errorf("%s must not be negative, got %d", EnvGamepadIndex, c.GamepadIndex)
	}
	return c, nil
}

// envParser keeps the first parse error so callers can check once.
type envParser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *envParser) raw(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (p *envParser) parseFloat(key string) (float64, bool) {
	s, ok := p.raw(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("failed to parse %s: %w", key, err)
		return 0, false
	}
	return v, true
}

func (p *envParser) parseInt(key string) (int, bool) {
	s, ok := p.raw(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.err = fmt.Errorf("failed to parse %s: %w", key, err)
		return 0, false
	}
	return v, true
}

func (p *envParser) parseBool(key string) (bool, bool) {
	s, ok := p.raw(key)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		p.err = fmt.Errorf("failed to parse %s: %w", key, err)
		return false, false
	}
	return v, true
}
