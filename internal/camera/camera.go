package camera

import (
	"vertex/internal/color"
	"vertex/internal/linalg"
)

var upVector = linalg.NewVector(0, 1, 0)

// baseColor is the surface color every face is shaded from.
var baseColor = color.NewRGB(128, 255, 255)

type Options struct {
	Position     *linalg.Vector
	Direction    *linalg.Vector
	Displacement float64
	Near         float64
	Far          float64
	// Width and Height are the viewport size in screen units.
	Width  float64
	Height float64
	// Light is the direction light travels in. Defaults to (0,0,-1).
	Light *linalg.Vector
}

func DefaultOptions() Options {
	return Options{
		Position:     linalg.NewVector(0, 0, 0),
		Direction:    linalg.NewVector(0, 0, -5),
		Displacement: 0.5,
		Near:         0.01,
		Far:          1000,
		Width:        800,
		Height:       600,
		Light:        linalg.NewVector(0, 0, -1),
	}
}

// Camera is moved by input between frames. The frustum is fixed at
// construction.
type Camera struct {
	Position     *linalg.Vector
	Direction    *linalg.Vector
	Displacement float64
	Light        *linalg.Vector

	frustum Frustum
}

func New(opts Options) *Camera {
	def := DefaultOptions()
	if opts.Position == nil {
		opts.Position = def.Position
	}
	if opts.Direction == nil {
		opts.Direction = def.Direction
	}
	if opts.Light == nil {
		opts.Light = def.Light
	}
	return &Camera{
		Position:     opts.Position.Copy(),
		Direction:    opts.Direction.Copy(),
		Displacement: opts.Displacement,
		Light:        opts.Light.Copy(),
		frustum:      NewFrustum(opts.Near, opts.Far, opts.Width, opts.Height),
	}
}

func (c *Camera) Frustum() Frustum { return c.frustum }

// ViewMatrix returns the camera's own transform and its inverse.
func (c *Camera) ViewMatrix() (cameraMatrix, viewMatrix *linalg.Matrix) {
	return linalg.ViewMatrix(c.Position, c.Direction)
}

// ShouldCull is the back-face test. normal is the unit face normal with
// w=0 and similarity the cosine between it and the ray from p1 to the
// camera.
func (c *Camera) ShouldCull(p1, p2, p3 *linalg.Vector, eps float64) (normal *linalg.Vector, similarity float64, cull bool) {
	normal = linalg.Subbed(p2, p1).Cross(linalg.Subbed(p3, p1)).Normalize().Extend(0)
	similarity = linalg.Extended(c.Position, 1).Sub(p1).Normalize().Dot(normal)
	return normal, similarity, similarity < eps
}

// Illuminate shades a face. The result is HSV with the value channel set
// to the cosine between the light and the normal.
func (c *Camera) Illuminate(normal *linalg.Vector) color.Color {
	light := linalg.Normalized(c.Light)
	hsv := baseColor.ToHSV()
	hsv.Comps[2] = light.Dot(normal)
	return hsv
}

// Rise moves the camera along world y by steps*Displacement.
func (c *Camera) Rise(steps float64) {
	c.Position.SetY(c.Position.Y() + steps*c.Displacement)
}

// Strafe moves the camera sideways. Positive steps go left.
func (c *Camera) Strafe(steps float64) {
	side := c.Direction.Cross(upVector).Normalize().Scale(steps * c.Displacement)
	c.Position.Add(side)
}

// Advance moves the camera along its direction vector.
func (c *Camera) Advance(steps float64) {
	c.Position.Add(linalg.Scaled(c.Direction, steps*c.Displacement))
}

// Turn swings the direction vector along x.
func (c *Camera) Turn(steps float64) {
	c.Direction.SetX(c.Direction.X() + steps*c.Displacement/10)
}

// State is the movable part of a camera as plain values.
type State struct {
	Position     []float64
	Direction    []float64
	Light        []float64
	Displacement float64
}

func (c *Camera) State() State {
	return State{
		Position:     append([]float64(nil), c.Position.Comps()...),
		Direction:    append([]float64(nil), c.Direction.Comps()...),
		Light:        append([]float64(nil), c.Light.Comps()...),
		Displacement: c.Displacement,
	}
}

// Restore overwrites the movable state. The frustum is kept.
func (c *Camera) Restore(s State) {
	c.Position = linalg.NewVector(s.Position...)
	c.Direction = linalg.NewVector(s.Direction...)
	if len(s.Light) > 0 {
		c.Light = linalg.NewVector(s.Light...)
	}
	c.Displacement = s.Displacement
}
