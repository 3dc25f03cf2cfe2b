// Package gamepad reduces polled controller snapshots into button release
// and stick direction events carrying accurate hold durations.
//
// An Engine is fed one Snapshot per frame with ConsumeInput and drained with
// NextButtonEvent and NextDirectionEvent. It is not safe for concurrent use.
package gamepad

// DefaultFirstFrameDelta is the elapsed time, in milliseconds, credited to
// the first snapshot an Engine sees. It assumes a 60Hz poll.
const DefaultFirstFrameDelta = 1000.0 / 60.0

// Config is injected into an Engine at construction.
type Config struct {
	Sticks          [StickCount]StickConfig
	FirstFrameDelta float64
}

// DefaultConfig returns dead 0.2 and active 0.8 on both sticks.
func DefaultConfig() Config {
	stick := StickConfig{Dead: 0.2, Active: 0.8}
	return Config{
		Sticks:          [StickCount]StickConfig{stick, stick},
		FirstFrameDelta: DefaultFirstFrameDelta,
	}
}

type buttonHold struct {
	open     bool
	duration float64
}

type stickHold struct {
	open     bool
	bucket   Bucket
	duration float64
}

// Engine is the per-controller input reducer.
type Engine struct {
	cfg Config

	buttons [ButtonCount]buttonHold
	sticks  [StickCount]stickHold

	buttonEvents    queue[ButtonRelease]
	directionEvents queue[DirectionChange]

	hasPrevious   bool
	lastTimestamp float64
}

// New creates an Engine using the given configuration.
func New(cfg Config) *Engine {
	if cfg.FirstFrameDelta <= 0 {
		cfg.FirstFrameDelta = DefaultFirstFrameDelta
	}
	return &Engine{cfg: cfg}
}

// ConsumeInput advances every accumulator by the time elapsed since the
// previous snapshot and queues any events completed by this one.
// Timestamps must strictly increase; a repeated or older timestamp adds 0 ms,
// so a hold opened on such a frame can complete with a 0 ms duration.
func (e *Engine) ConsumeInput(snap Snapshot) {
	delta := e.cfg.FirstFrameDelta
	if e.hasPrevious {
		delta = snap.Timestamp - e.lastTimestamp
	}
	// Replayed or stale timestamps contribute nothing.
	if delta < 0 {
		delta = 0
	}

	for id := ButtonID(0); id < ButtonCount; id++ {
		e.consumeButton(snap, id, delta)
	}
	for side := StickLeft; side < StickCount; side++ {
		e.consumeStick(side, snap.Stick(side), delta)
	}

	e.hasPrevious = true
	e.lastTimestamp = snap.Timestamp
}

func (e *Engine) consumeButton(snap Snapshot, id ButtonID, delta float64) {
	hold := &e.buttons[id]

	if snap.Buttons[id] {
		if !hold.open {
			hold.open = true
			hold.duration = delta
			return
		}
		hold.duration += delta
		return
	}

	if hold.open {
		e.buttonEvents.push(ButtonRelease{Button: id, Duration: hold.duration})
		*hold = buttonHold{}
	}
}

func (e *Engine) consumeStick(side StickSide, pos Vector, delta float64) {
	hold := &e.sticks[side]
	length, angle := Vectorize(pos)

	switch e.cfg.Sticks[side].Classify(length) {
	case ZoneActive:
		bucket := BucketFor(angle)
		if hold.open && hold.bucket == bucket {
			hold.duration += delta
			return
		}
		// Sweeping into another bucket without passing through the dead
		// zone restarts the hold; the previous bucket never emits.
		*hold = stickHold{open: true, bucket: bucket, duration: delta}
	case ZoneDead:
		if !hold.open {
			return
		}
		e.directionEvents.push(DirectionChange{
			Side:     side,
			Bucket:   hold.bucket,
			Duration: hold.duration,
		})
		*hold = stickHold{}
	case ZoneTransitional:
		// Hysteresis band: hold is neither extended nor flushed.
	}
}

// NextButtonEvent pops the oldest queued release. The boolean is false when
// the queue is empty.
func (e *Engine) NextButtonEvent() (ButtonRelease, bool) {
	return e.buttonEvents.pop()
}

// NextDirectionEvent pops the oldest queued direction change. The boolean is
// false when the queue is empty.
func (e *Engine) NextDirectionEvent() (DirectionChange, bool) {
	return e.directionEvents.pop()
}

// Pending returns the number of queued button and direction events.
func (e *Engine) Pending() (buttons, directions int) {
	return e.buttonEvents.len(), e.directionEvents.len()
}

// Holding reports whether a button is currently being timed.
func (e *Engine) Holding(id ButtonID) bool {
	return e.buttons[id].open
}

// Pointing returns the bucket a stick is currently being timed in.
func (e *Engine) Pointing(side StickSide) (Bucket, bool) {
	hold := e.sticks[side]
	return hold.bucket, hold.open
}
