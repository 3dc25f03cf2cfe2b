// Package telemetry counts the commands a user sends, split into short and
// long variants, and persists the counters between runs.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"maps"

	"github.com/automoto/padchat/command"
	"github.com/automoto/padchat/gamepad"
)

// Counts maps a counter key ("A", "+A", "TR", "+TR", "3") to its total.
type Counts map[string]int

// Counters is the persisted telemetry document.
type Counters struct {
	Keyboard Counts `json:"keyboard"`
	Gamepad  Counts `json:"gamepad"`
	LJ       Counts `json:"LJ"`
	RJ       Counts `json:"RJ"`
}

func newCounters() Counters {
	return Counters{
		Keyboard: Counts{},
		Gamepad:  Counts{},
		LJ:       Counts{},
		RJ:       Counts{},
	}
}

func (c Counters) clone() Counters {
	return Counters{
		Keyboard: maps.Clone(c.Keyboard),
		Gamepad:  maps.Clone(c.Gamepad),
		LJ:       maps.Clone(c.LJ),
		RJ:       maps.Clone(c.RJ),
	}
}

// Stick returns the counts for one side.
func (c Counters) Stick(side gamepad.StickSide) Counts {
	if side == gamepad.StickLeft {
		return c.LJ
	}
	return c.RJ
}

// Listener is told about every counter change with a copy of the section
// that changed and the key that was incremented.
type Listener func(section Counts, cmd command.Command, key string)

// LogListener logs every counter change.
func LogListener(section Counts, cmd command.Command, key string) {
	log.Printf("[telemetry] %s %s=%d", cmd.Section, key, section[key])
}

// Recorder accumulates command counters. It is not safe for concurrent use.
type Recorder struct {
	counters  Counters
	store     Store
	recording bool
	listener  Listener
}

// NewRecorder loads existing counters from store. A missing or unreadable
// document starts from zero.
func NewRecorder(store Store) *Recorder {
	r := &Recorder{
		counters:  newCounters(),
		store:     store,
		recording: true,
	}
	if store == nil {
		return r
	}

	data, err := store.Load()
	if err != nil {
		log.Printf("Warning: Could not load telemetry: %v", err)
		return r
	}
	if len(data) == 0 {
		return r
	}
	var loaded Counters
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("Warning: Could not parse saved telemetry: %v", err)
		return r
	}
	r.merge(loaded)
	return r
}

func (r *Recorder) merge(c Counters) {
	maps.Copy(r.counters.Keyboard, c.Keyboard)
	maps.Copy(r.counters.Gamepad, c.Gamepad)
	maps.Copy(r.counters.LJ, c.LJ)
	maps.Copy(r.counters.RJ, c.RJ)
}

// Enable resumes recording.
func (r *Recorder) Enable() { r.recording = true }

// Disable pauses recording; Add becomes a no-op.
func (r *Recorder) Disable() { r.recording = false }

// Recording reports whether Add counts commands.
func (r *Recorder) Recording() bool { return r.recording }

// SetListener replaces the change listener. nil removes it.
func (r *Recorder) SetListener(fn Listener) { r.listener = fn }

// Snapshot returns a deep copy of the counters.
func (r *Recorder) Snapshot() Counters {
	return r.counters.clone()
}

// Add parses and counts one sent command.
func (r *Recorder) Add(raw string) error {
	if !r.recording {
		return nil
	}
	cmd, err := command.Parse(raw)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	var section Counts
	switch cmd.Section {
	case command.SectionGamepad:
		section = r.counters.Gamepad
	case command.SectionJoystick:
		section = r.counters.Stick(cmd.Side)
	default:
		section = r.counters.Keyboard
	}

	key := cmd.Key()
	if cmd.Long {
		key = command.LongPrefix + key
	}
	section[key]++

	if err := r.save(); err != nil {
		log.Printf("Warning: Could not save telemetry: %v", err)
	}
	if r.listener != nil {
		r.listener(maps.Clone(section), cmd, key)
	}
	return nil
}

func (r *Recorder) save() error {
	if r.store == nil {
		return nil
	}
	data, err := json.Marshal(r.counters)
	if err != nil {
		return fmt.Errorf("failed to serialize telemetry: %w", err)
	}
	return r.store.Save(data)
}

// Export writes the counters as indented JSON.
func (r *Recorder) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.counters)
}
