package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyraid/internal/core"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionFire:       {ebiten.KeySpace},
	core.ActionConfirm:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionCancel:     {ebiten.KeyEscape, ebiten.KeyP},
	core.ActionQuitToMenu: {ebiten.KeyQ},
}

// keyState reports whether a key is in some state this tick.
type keyState func(ebiten.Key) bool

// readInput builds the frame for one tick. Continuous actions follow the
// pressed state; the rest fire on the tick their key goes down.
func readInput(pressed, justPressed keyState) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if action.IsContinuous() && pressed(k) {
				in.Hold(action)
			}
			if !action.IsContinuous() && justPressed(k) {
				in.Set(action)
			}
		}
	}
	return in
}

// pollInput reads the live keyboard.
func pollInput() core.InputFrame {
	return readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}
