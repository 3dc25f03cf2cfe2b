package gamepad

// ButtonID identifies one of the digital buttons tracked by the engine.
type ButtonID int

const (
	ButtonA ButtonID = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonLT
	ButtonRT
	ButtonLB
	ButtonRB
	ButtonStart
	ButtonL3
	ButtonR3
	ButtonCount // Must be last - used for array sizing
)

var buttonNames = [ButtonCount]string{
	ButtonA:     "A",
	ButtonB:     "B",
	ButtonX:     "X",
	ButtonY:     "Y",
	ButtonUp:    "UP",
	ButtonDown:  "DOWN",
	ButtonLeft:  "LEFT",
	ButtonRight: "RIGHT",
	ButtonLT:    "LT",
	ButtonRT:    "RT",
	ButtonLB:    "LB",
	ButtonRB:    "RB",
	ButtonStart: "START",
	ButtonL3:    "L3",
	ButtonR3:    "R3",
}

func (b ButtonID) String() string {
	if b < 0 || b >= ButtonCount {
		return "?"
	}
	return buttonNames[b]
}

// ParseButton returns the ButtonID whose name is s.
func ParseButton(s string) (ButtonID, bool) {
	for id, name := range buttonNames {
		if name == s {
			return ButtonID(id), true
		}
	}
	return 0, false
}

// StickSide selects one of the two analog sticks.
type StickSide int

const (
	StickLeft StickSide = iota
	StickRight
	StickCount
)

func (s StickSide) String() string {
	if s == StickLeft {
		return "left"
	}
	return "right"
}

// Letter is the single-letter form used in command strings ("L" or "R").
func (s StickSide) Letter() string {
	if s == StickLeft {
		return "L"
	}
	return "R"
}

// Vector is a raw stick position. Both axes are in [-1, 1].
type Vector struct {
	X, Y float64
}

// Snapshot is one polled reading of every button and both sticks.
// Timestamp is in milliseconds and must never decrease between snapshots
// fed to the same Engine.
type Snapshot struct {
	Buttons   [ButtonCount]bool
	Left      Vector
	Right     Vector
	Timestamp float64
}

// Stick returns the position of the given stick.
func (s Snapshot) Stick(side StickSide) Vector {
	if side == StickLeft {
		return s.Left
	}
	return s.Right
}

// Sampler produces one Snapshot per poll. ok is false when there is no
// reading this tick, in which case nothing should be fed to the Engine.
type Sampler interface {
	Sample() (snap Snapshot, ok bool)
}
