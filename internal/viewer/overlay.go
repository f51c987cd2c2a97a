package viewer

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vertex/internal/camera"
	"vertex/internal/engine"
	"vertex/internal/graphics"
)

var (
	colorPanel = rl.NewColor(24, 24, 32, 200)
	colorText  = rl.NewColor(220, 220, 235, 255)
)

const (
	overlayX     = 10
	overlayY     = 10
	overlayWidth = 260
	lineHeight   = 18
)

// Overlay shows frame counters and a few live settings. F1 toggles it.
type Overlay struct {
	Visible bool
}

func initStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
}

func statsLines(s engine.FrameStats, fps int32) []string {
	return []string{
		fmt.Sprintf("frame %d  physics steps %d", s.Frame, s.PhysicsSteps),
		fmt.Sprintf("fps %d  elapsed %s", fps, s.Elapsed.Truncate(time.Second)),
		fmt.Sprintf("instances %d  triangles %d", s.Render.Instances, s.Render.Triangles),
		fmt.Sprintf("culled %d  degenerate %d", s.Render.Culled, s.Render.Degenerate),
		fmt.Sprintf("fragments %d", s.Render.Fragments),
		fmt.Sprintf("colliders %d  contacts %d", s.Physics.Checked, s.Physics.Contacts),
	}
}

func (o *Overlay) Draw(s engine.FrameStats, p *graphics.Pipeline, cam *camera.Camera) {
	if rl.IsKeyPressed(rl.KeyF1) {
		o.Visible = !o.Visible
	}
	if !o.Visible {
		return
	}

	lines := statsLines(s, rl.GetFPS())
	height := int32(len(lines)*lineHeight + 70)
	rl.DrawRectangle(overlayX, overlayY, overlayWidth, height, colorPanel)

	y := int32(overlayY + 8)
	for _, l := range lines {
		rl.DrawText(l, overlayX+8, y, 14, colorText)
		y += lineHeight
	}

	fill := gui.CheckBox(rl.NewRectangle(overlayX+8, float32(y+4), 16, 16), "Fill", p.Style() == graphics.StyleFill)
	if fill {
		p.SetStyle(graphics.StyleFill)
	} else {
		p.SetStyle(graphics.StyleStroke)
	}

	step := gui.Slider(rl.NewRectangle(overlayX+90, float32(y+30), 120, 16), "Step", fmt.Sprintf("%.2f", cam.Displacement), float32(cam.Displacement), 0.05, 5)
	cam.Displacement = float64(step)
}
