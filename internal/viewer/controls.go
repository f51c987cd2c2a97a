package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vertex/internal/camera"
)

// Keys reports whether a key went down this frame, including key repeat.
type Keys interface {
	Pressed(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) Pressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

var bindings = []struct {
	key   int32
	apply func(*camera.Camera)
}{
	{rl.KeyUp, func(c *camera.Camera) { c.Rise(1) }},
	{rl.KeyDown, func(c *camera.Camera) { c.Rise(-1) }},
	{rl.KeyLeft, func(c *camera.Camera) { c.Strafe(1) }},
	{rl.KeyRight, func(c *camera.Camera) { c.Strafe(-1) }},
	{rl.KeyA, func(c *camera.Camera) { c.Turn(-1) }},
	{rl.KeyD, func(c *camera.Camera) { c.Turn(1) }},
	{rl.KeyW, func(c *camera.Camera) { c.Advance(1) }},
	{rl.KeyS, func(c *camera.Camera) { c.Advance(-1) }},
}

// Control moves cam for every bound key pressed and reports whether it
// moved.
func Control(cam *camera.Camera, keys Keys) bool {
	moved := false
	for _, b := range bindings {
		if keys.Pressed(b.key) {
			b.apply(cam)
			moved = true
		}
	}
	return moved
}
