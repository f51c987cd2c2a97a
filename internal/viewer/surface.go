package viewer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vertex/internal/color"
	"vertex/internal/graphics"
)

var _ graphics.Surface = (*Window)(nil)

type shape struct {
	points []rl.Vector2
	color  rl.Color
	fill   bool
}

// Window is a retained surface: a frame built between Clear calls is
// replayed by Present on every window refresh until the next frame is
// complete.
type Window struct {
	width, height float64
	background    rl.Color

	ox, oy  float64
	path    []rl.Vector2
	next    []shape
	current []shape
	pending bool
}

func NewWindow(width, height int) *Window {
	return &Window{width: float64(width), height: float64(height), background: rl.Black}
}

func (w *Window) Size() (float64, float64) { return w.width, w.height }

func (w *Window) Clear() {
	w.next = w.next[:0:0]
	w.ox, w.oy = 0, 0
	w.pending = true
}

func (w *Window) Translate(x, y float64) {
	w.ox += x
	w.oy += y
}

func (w *Window) BeginPath() { w.path = w.path[:0:0] }

func (w *Window) MoveTo(x, y float64) {
	w.path = append(w.path[:0:0], w.point(x, y))
}

func (w *Window) LineTo(x, y float64) { w.path = append(w.path, w.point(x, y)) }

func (w *Window) Stroke(c color.Color) { w.emit(c, false) }
func (w *Window) Fill(c color.Color) { w.emit(c, true) }

// Present draws the newest complete frame. Call it between
// rl.BeginDrawing and rl.EndDrawing.
func (w *Window) Present() {
	rl.ClearBackground(w.background)
	for _, s := range w.frame() {
		if s.fill {
			fillPolygon(s.points, s.color)
			continue
		}
		for i := 1; i < len(s.points); i++ {
			rl.DrawLineV(s.points[i-1], s.points[i], s.color)
		}
	}
}

// frame promotes a frame started since the last call.
func (w *Window) frame() []shape {
	if w.pending {
		w.current, w.pending = w.next, false
	}
	return w.current
}

func (w *Window) point(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x+w.ox), float32(y+w.oy))
}

func (w *Window) emit(c color.Color, fill bool) {
	if len(w.path) < 2 {
		return
	}
	w.next = append(w.next, shape{points: w.path, color: toRaylib(c), fill: fill})
	w.path = nil
}

// fillPolygon fans the path into triangles. raylib only draws triangles
// wound counter-clockwise on screen, so clockwise ones are flipped.
func fillPolygon(pts []rl.Vector2, c rl.Color) {
	for i := 2; i < len(pts); i++ {
		a, b, d := pts[0], pts[i-1], pts[i]
		if cross(a, b, d) > 0 {
			b, d = d, b
		}
		rl.DrawTriangle(a, b, d, c)
	}
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func toRaylib(c color.Color) rl.Color {
	if c.Space == color.HSV {
		s, v := math.Max(0, math.Min(1, c.Comps[1])), math.Max(0, math.Min(1, c.Comps[2]))
		return rl.ColorFromHSV(float32(c.Comps[0]), float32(s), float32(v))
	}
	return c.RGBA()
}
