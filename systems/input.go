package systems

import (
	"github.com/automoto/padchat/command"
	"github.com/automoto/padchat/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DigitKeys is the keyboard row that sends the digit commands 1 to 12.
var DigitKeys = [command.MaxDigit]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0, ebiten.KeyMinus, ebiten.KeyEqual,
}

// ReleasedDigits returns the digits whose key was released this tick.
// Overridden in tests.
var ReleasedDigits = func() []int {
	var digits []int
	for i, key := range DigitKeys {
		if inpututil.IsKeyJustReleased(key) {
			digits = append(digits, i+1)
		}
	}
	return digits
}

// UpdateController samples every controller and feeds its engine.
// Must run BEFORE UpdateDispatch in the system order.
func UpdateController(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(entry *donburi.Entry) {
		ctrl := components.Controller.Get(entry)
		if ctrl.Sampler == nil || ctrl.Engine == nil {
			return
		}
		snap, ok := ctrl.Sampler.Sample()
		if !ok {
			// Open holds are left as they are; they never flush.
			return
		}
		ctrl.Engine.ConsumeInput(snap)
		ctrl.Frames++
	})
}
