// Package color converts between RGB and HSV for flat shading.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
)

type Space int

const (
	RGB Space = iota
	HSV
)

// Color holds three components. RGB components are 0..255; HSV is hue in
// degrees, saturation and value in 0..1.
type Color struct {
	Space Space
	Comps [3]float64
}

func NewRGB(r, g, b float64) Color { return Color{Space: RGB, Comps: [3]float64{r, g, b}} }

func NewHSV(h, s, v float64) Color { return Color{Space: HSV, Comps: [3]float64{h, s, v}} }

// ToHSV converts an RGB color. HSV colors are returned unchanged.
func (c Color) ToHSV() Color {
	if c.Space == HSV {
		return c
	}
	r, g, b := c.Comps[0]/255, c.Comps[1]/255, c.Comps[2]/255
	cMax := math.Max(r, math.Max(g, b))
	cMin := math.Min(r, math.Min(g, b))
	delta := cMax - cMin

	var hue float64
	if delta != 0 {
		switch cMax {
		case r:
			hue = 60 * math.Mod((g-b)/delta, 6)
		case g:
			hue = 60 * ((b-r)/delta + 2)
		default:
			hue = 60 * ((r-g)/delta + 4)
		}
	}
	if hue < 0 {
		hue += 360
	} else if hue > 360 {
		hue -= 360
	}

	var sat float64
	if cMax != 0 {
		sat = delta / cMax
	}
	return NewHSV(hue, sat, cMax)
}

// ToRGB converts an HSV color, clamping saturation and value into 0..1.
// RGB colors are returned unchanged.
func (c Color) ToRGB() Color {
	if c.Space == RGB {
		return c
	}
	hue := c.Comps[0]
	sat := clamp01(c.Comps[1])
	val := clamp01(c.Comps[2])

	chroma := val * sat
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := val - chroma

	var r, g, b float64
	switch {
	case hue >= 0 && hue < 60:
		r, g, b = chroma, x, 0
	case hue >= 60 && hue < 120:
		r, g, b = x, chroma, 0
	case hue >= 120 && hue < 180:
		r, g, b = 0, chroma, x
	case hue >= 180 && hue < 240:
		r, g, b = 0, x, chroma
	case hue >= 240 && hue < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return NewRGB(math.Round((r+m)*255), math.Round((g+m)*255), math.Round((b+m)*255))
}

// RGBA returns an opaque image/color value.
func (c Color) RGBA() stdcolor.RGBA {
	rgb := c.ToRGB()
	return stdcolor.RGBA{
		R: uint8(rgb.Comps[0]),
		G: uint8(rgb.Comps[1]),
		B: uint8(rgb.Comps[2]),
		A: 255,
	}
}

// Hex formats the color as six lowercase hex digits, no leading '#'.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
