package ui

import "github.com/hajimehoshi/ebiten/v2"

var isKeyPressed = ebiten.IsKeyPressed

// SetInputForTest replaces the key reader during tests and returns a function
// to restore the original.
func SetInputForTest(key func(ebiten.Key) bool) func() {
	old := isKeyPressed
	isKeyPressed = key
	return func() { isKeyPressed = old }
}
