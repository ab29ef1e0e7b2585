package view

import (
	"github.com/hajimehoshi/ebiten/v2"

	"wrapfighter/game"
)

// Keyboard maps held keys to the simulation's input snapshot
type Keyboard struct {
	prevAltEnter bool
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Input implements game.InputProvider
func (k *Keyboard) Input() game.InputState {
	return game.InputState{
		Up:    anyPressed(ebiten.KeyUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyDown, ebiten.KeyS),
		Left:  anyPressed(ebiten.KeyLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyRight, ebiten.KeyD),
		Shoot: anyPressed(ebiten.KeyZ, ebiten.KeySpace),
		Laser: anyPressed(ebiten.KeyX),
		Boost: anyPressed(ebiten.KeyC, ebiten.KeyShift),
	}
}

// toggleFullscreen flips fullscreen on the Alt+Enter press edge
func (k *Keyboard) toggleFullscreen() {
	altEnter := anyPressed(ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight) && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnter && !k.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	k.prevAltEnter = altEnter
}

var _ game.InputProvider = (*Keyboard)(nil)
