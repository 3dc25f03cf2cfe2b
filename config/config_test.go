package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/padchat/gamepad"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestSetActiveClampsAndPushesDead(t *testing.T) {
	tests := []struct {
		name       string
		start      StickThresholds
		value      float64
		wantActive float64
		wantDead   float64
	}{
		{"in range", StickThresholds{0.2, 0.8}, 0.7, 0.7, 0.2},
		{"too high", StickThresholds{0.2, 0.8}, 1.5, MaxActive, 0.2},
		{"too low", StickThresholds{0.005, 0.8}, 0, MinActive, 0.005},
		{"crosses dead", StickThresholds{0.5, 0.8}, 0.4, 0.4, 0.39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.SetActive(tt.value)
			if !near(s.Active, tt.wantActive) || !near(s.Dead, tt.wantDead) {
				t.Errorf("expected %v/%v, got %v/%v", tt.wantDead, tt.wantActive, s.Dead, s.Active)
			}
			if s.Dead >= s.Active {
				t.Errorf("dead %v must stay below active %v", s.Dead, s.Active)
			}
		})
	}
}

func TestSetDeadClampsAndPushesActive(t *testing.T) {
	tests := []struct {
		name       string
		start      StickThresholds
		value      float64
		wantDead   float64
		wantActive float64
	}{
		{"in range", StickThresholds{0.2, 0.8}, 0.3, 0.3, 0.8},
		{"too low", StickThresholds{0.2, 0.8}, -1, MinDead, 0.8},
		{"too high", StickThresholds{0.2, 0.995}, 1, MaxDead, 0.995},
		{"crosses active", StickThresholds{0.2, 0.5}, 0.6, 0.6, 0.61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.SetDead(tt.value)
			if !near(s.Dead, tt.wantDead) || !near(s.Active, tt.wantActive) {
				t.Errorf("expected %v/%v, got %v/%v", tt.wantDead, tt.wantActive, s.Dead, s.Active)
			}
		})
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(mapLookup(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLayerDefaultIsFirstLayer(t *testing.T) {
	if LayerDefault != 0 {
		t.Errorf("expected layer 0, got %d", LayerDefault)
	}
	if Default().Left != (StickThresholds{Dead: 0.2, Active: 0.8}) {
		t.Errorf("unexpected default thresholds %+v", Default().Left)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	c, err := FromEnv(mapLookup(map[string]string{
		EnvLeftDead:         "0.1",
		EnvRightActive:      "0.6",
		EnvLongPress:        "750",
		EnvGamepadIndex:     "2",
		EnvInvertY:          "false",
		EnvDropFirstCommand: "0",
		EnvTelemetry:        "",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Left.Dead != 0.1 || c.Left.Active != 0.8 {
		t.Errorf("unexpected left %+v", c.Left)
	}
	if c.Right.Active != 0.6 {
		t.Errorf("unexpected right %+v", c.Right)
	}
	if c.LongPressDuration != 750 || c.LongMoveDuration != 400 {
		t.Errorf("unexpected durations %v/%v", c.LongPressDuration, c.LongMoveDuration)
	}
	if c.GamepadIndex != 2 || c.InvertY || c.DropFirstCommand {
		t.Errorf("unexpected sampling/dispatch %+v", c)
	}
	if !c.TelemetryEnabled {
		t.Error("empty variable must keep the default")
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []map[string]string{
		{EnvLeftDead: "abc"},
		{EnvGamepadIndex: "1.5"},
		{EnvRandomize: "maybe"},
		{EnvFirstFrameDelta: "-3"},
		{EnvGamepadIndex: "-1"},
	}

	for _, env := range tests {
		c, err := FromEnv(mapLookup(env))
		if err == nil {
			t.Errorf("%v: expected error", env)
		}
		if c != Default() {
			t.Errorf("%v: expected defaults on error", env)
		}
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLongMove+"=1200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvLongMove) })

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.LongMoveDuration != 1200 {
		t.Errorf("expected 1200, got %v", c.LongMoveDuration)
	}
}

func TestEngineConfig(t *testing.T) {
	c := Default()
	c.Right = StickThresholds{Dead: 0.3, Active: 0.9}
	c.FirstFrameDelta = 8

	e := c.Engine()
	if e.Sticks[gamepad.StickLeft] != (gamepad.StickConfig{Dead: 0.2, Active: 0.8}) {
		t.Errorf("unexpected left %+v", e.Sticks[gamepad.StickLeft])
	}
	if e.Sticks[gamepad.StickRight] != (gamepad.StickConfig{Dead: 0.3, Active: 0.9}) {
		t.Errorf("unexpected right %+v", e.Sticks[gamepad.StickRight])
	}
	if e.FirstFrameDelta != 8 {
		t.Errorf("expected 8, got %v", e.FirstFrameDelta)
	}
	if c.Stick(gamepad.StickRight).Active != 0.9 {
		t.Error("Stick(right) must address Right")
	}
}
