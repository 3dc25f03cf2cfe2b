package systems

import (
	"time"

	"github.com/automoto/padchat/gamepad"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonBindings maps each tracked button to its standard-layout button.
// The shoulder naming follows the chat command set: the top shoulders send
// LT/RT and the triggers send LB/RB.
var ButtonBindings = [gamepad.ButtonCount]ebiten.StandardGamepadButton{
	gamepad.ButtonA:     ebiten.StandardGamepadButtonRightBottom,
	gamepad.ButtonB:     ebiten.StandardGamepadButtonRightRight,
	gamepad.ButtonX:     ebiten.StandardGamepadButtonRightLeft,
	gamepad.ButtonY:     ebiten.StandardGamepadButtonRightTop,
	gamepad.ButtonUp:    ebiten.StandardGamepadButtonLeftTop,
	gamepad.ButtonDown:  ebiten.StandardGamepadButtonLeftBottom,
	gamepad.ButtonLeft:  ebiten.StandardGamepadButtonLeftLeft,
	gamepad.ButtonRight: ebiten.StandardGamepadButtonLeftRight,
	gamepad.ButtonLT:    ebiten.StandardGamepadButtonFrontTopLeft,
	gamepad.ButtonRT:    ebiten.StandardGamepadButtonFrontTopRight,
	gamepad.ButtonLB:    ebiten.StandardGamepadButtonFrontBottomLeft,
	gamepad.ButtonRB:    ebiten.StandardGamepadButtonFrontBottomRight,
	gamepad.ButtonStart: ebiten.StandardGamepadButtonCenterRight,
	gamepad.ButtonL3:    ebiten.StandardGamepadButtonLeftStick,
	gamepad.ButtonR3:    ebiten.StandardGamepadButtonRightStick,
}

// StickAxes maps each stick to its horizontal and vertical axes.
var StickAxes = [gamepad.StickCount][2]ebiten.StandardGamepadAxis{
	gamepad.StickLeft: {
		ebiten.StandardGamepadAxisLeftStickHorizontal,
		ebiten.StandardGamepadAxisLeftStickVertical,
	},
	gamepad.StickRight: {
		ebiten.StandardGamepadAxisRightStickHorizontal,
		ebiten.StandardGamepadAxisRightStickVertical,
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// EbitenSampler reads the nth connected standard-layout gamepad.
type EbitenSampler struct {
	Index   int
	InvertY bool

	start time.Time
	now   func() time.Time
}

// NewEbitenSampler creates a sampler whose timestamps count from now.
func NewEbitenSampler(index int, invertY bool) *EbitenSampler {
	return &EbitenSampler{
		Index:   index,
		InvertY: invertY,
		start:   time.Now(),
		now:     time.Now,
	}
}

// Sample returns false when no standard-layout gamepad sits at Index.
func (s *EbitenSampler) Sample() (gamepad.Snapshot, bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if s.Index >= len(gamepadIDs) {
		return gamepad.Snapshot{}, false
	}
	gpID := gamepadIDs[s.Index]
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return gamepad.Snapshot{}, false
	}

	snap := gamepad.Snapshot{
		Timestamp: float64(s.now().Sub(s.start)) / float64(time.Millisecond),
	}
	for id, btn := range ButtonBindings {
		snap.Buttons[id] = ebiten.IsStandardGamepadButtonPressed(gpID, btn)
	}
	snap.Left = s.axes(gpID, gamepad.StickLeft)
	snap.Right = s.axes(gpID, gamepad.StickRight)
	return snap, true
}

func (s *EbitenSampler) axes(gpID ebiten.GamepadID, side gamepad.StickSide) gamepad.Vector {
	v := gamepad.Vector{
		X: ebiten.StandardGamepadAxisValue(gpID, StickAxes[side][0]),
		Y: ebiten.StandardGamepadAxisValue(gpID, StickAxes[side][1]),
	}
	if s.InvertY {
		v.Y = -v.Y
	}
	return v
}
