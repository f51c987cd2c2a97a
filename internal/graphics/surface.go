package graphics

import (
	"fmt"
	"strings"

	"vertex/internal/color"
)

// Surface is a 2D raster target driven with path primitives.
type Surface interface {
	Size() (width, height float64)
	Clear()
	Translate(x, y float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c color.Color)
	Fill(c color.Color)
}

type Style int

const (
	StyleStroke Style = iota
	StyleFill
)

func (s Style) String() string {
	if s == StyleFill {
		return "fill"
	}
	return "stroke"
}

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "stroke":
		return StyleStroke, nil
	case "fill":
		return StyleFill, nil
	}
	return StyleStroke, fmt.Errorf("unknown draw style %q", s)
}
