// Package surface provides headless render targets.
package surface

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/vector"

	"vertex/internal/color"
	"vertex/internal/graphics"
)

var _ graphics.Surface = (*Image)(nil)

// Image rasterizes paths into an in-memory RGBA image.
type Image struct {
	img        *image.RGBA
	background stdcolor.Color
	lineWidth  float64

	ox, oy float64
	path   [][2]float64
}

func NewImage(width, height int) *Image {
	return &Image{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: stdcolor.Black,
		lineWidth:  1,
	}
}

func (s *Image) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Image) Image() *image.RGBA { return s.img }

func (s *Image) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *Image) Translate(x, y float64) {
	s.ox += x
	s.oy += y
}

func (s *Image) BeginPath() { s.path = s.path[:0] }

func (s *Image) MoveTo(x, y float64) {
	s.path = append(s.path[:0], [2]float64{x + s.ox, y + s.oy})
}

func (s *Image) LineTo(x, y float64) {
	s.path = append(s.path, [2]float64{x + s.ox, y + s.oy})
}

func (s *Image) Fill(c color.Color) {
	if len(s.path) < 3 {
		return
	}
	r := s.rasterizer()
	r.MoveTo(s.clamp(s.path[0]))
	for _, p := range s.path[1:] {
		r.LineTo(s.clamp(p))
	}
	r.ClosePath()
	s.paint(r, c)
}

// Stroke draws every path segment as a quad lineWidth pixels wide.
func (s *Image) Stroke(c color.Color) {
	if len(s.path) < 2 {
		return
	}
	r := s.rasterizer()
	half := s.lineWidth / 2
	for i := 1; i < len(s.path); i++ {
		a, b := s.path[i-1], s.path[i]
		dx, dy := b[0]-a[0], b[1]-a[1]
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		r.MoveTo(s.clamp([2]float64{a[0] + nx, a[1] + ny}))
		r.LineTo(s.clamp([2]float64{b[0] + nx, b[1] + ny}))
		r.LineTo(s.clamp([2]float64{b[0] - nx, b[1] - ny}))
		r.LineTo(s.clamp([2]float64{a[0] - nx, a[1] - ny}))
		r.ClosePath()
	}
	s.paint(r, c)
}

// Save writes the image as PNG.
func (s *Image) Save(path string) error {
	if err := imgio.Save(path, s.img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (s *Image) rasterizer() *vector.Rasterizer {
	b := s.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return r
}

func (s *Image) paint(r *vector.Rasterizer, c color.Color) {
	r.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}

// clamp keeps points inside the rasterizer's bounds.
func (s *Image) clamp(p [2]float64) (float32, float32) {
	w, h := s.Size()
	return float32(math.Max(0, math.Min(w, p[0]))), float32(math.Max(0, math.Min(h, p[1])))
}
