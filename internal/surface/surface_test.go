package surface

import (
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertex/internal/color"
)

func TestImageFill(t *testing.T) {
	s := NewImage(40, 20)
	s.Clear()
	s.Translate(20, 10)
	s.BeginPath()
	s.MoveTo(-10, -5)
	s.LineTo(10, -5)
	s.LineTo(10, 5)
	s.LineTo(-10, 5)
	s.Fill(color.NewRGB(255, 0, 0))
	s.Translate(-20, -10)

	inside := s.Image().RGBAAt(20, 10)
	assert.Equal(t, uint8(255), inside.R)
	assert.Equal(t, uint8(0), inside.G)

	outside := s.Image().RGBAAt(2, 2)
	assert.Equal(t, uint8(0), outside.R)
}

func TestImageStrokeLeavesInteriorEmpty(t *testing.T) {
	s := NewImage(40, 40)
	s.Clear()
	s.BeginPath()
	s.MoveTo(5, 5)
	s.LineTo(35, 5)
	s.LineTo(35, 35)
	s.LineTo(5, 5)
	s.Stroke(color.NewRGB(0, 255, 0))

	assert.Greater(t, s.Image().RGBAAt(20, 5).G, uint8(0))
	assert.Equal(t, uint8(0), s.Image().RGBAAt(30, 15).G)
}

func TestImageClampsOutOfBoundsPaths(t *testing.T) {
	s := NewImage(10, 10)
	s.BeginPath()
	s.MoveTo(-100, -100)
	s.LineTo(100, -100)
	s.LineTo(100, 100)
	assert.NotPanics(t, func() { s.Fill(color.NewRGB(0, 0, 255)) })
}

func TestImageSave(t *testing.T) {
	s := NewImage(8, 8)
	s.Clear()
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.Save(path))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Clear()
	r.Translate(50, 25)
	r.BeginPath()
	r.MoveTo(1, 2)
	r.LineTo(3, 4)
	r.Stroke(color.NewRGB(255, 255, 255))

	assert.Equal(t, []string{"clear", "translate", "beginPath", "moveTo", "lineTo", "stroke"}, r.Names())
	assert.Equal(t, "translate(50,25)", r.Ops[1].String())
	assert.Equal(t, "stroke(#ffffff)", r.Ops[5].String())

	r.Reset()
	assert.Empty(t, r.Ops)
}
