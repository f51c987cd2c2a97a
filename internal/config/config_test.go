package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertex/internal/graphics"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	c, err := Decode(strings.NewReader(`
camera:
  near: 0.5
  position: [1, 2, 3]
pipeline:
  style: fill
  useParallelWorker: true
  workers: 4
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 0.5, c.Camera.Near)
	assert.Equal(t, 1000.0, c.Camera.Far)
	assert.Equal(t, 60, c.Pipeline.PhysicsRate)

	opts := c.GraphicsOptions()
	assert.Equal(t, graphics.StyleFill, opts.Style)
	assert.True(t, opts.UseParallelWorker)
	assert.Equal(t, 4, opts.Workers)
	assert.Equal(t, []float64{1, 2, 3}, opts.Camera.Position.Comps())
	assert.Equal(t, 800.0, opts.Camera.Width)
}

func TestDecodeEmptyYieldsDefaults(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"near":      "camera: {near: 0}",
		"far":       "camera: {near: 5, far: 5}",
		"fov":       "camera: {fieldOfView: 180}",
		"vector":    "camera: {light: [0, 1]}",
		"rate":      "pipeline: {physicsRate: 0}",
		"fps":       "pipeline: {targetFps: -1}",
		"style":     "pipeline: {style: dotted}",
		"level":     "log: {level: loud}",
		"dimension": "pipeline: {width: 0}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(strings.NewReader("camera: [oops"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vertex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: {scale: 100}\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfgs, errs, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("pipeline: {scale: 250}\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-cfgs:
			// a write may arrive as several events; wait for the full file
			if c.Pipeline.Scale == 250 {
				cancel()
				return
			}
		case err := <-errs:
			// a partially written file can fail to validate
			t.Logf("reload error: %v", err)
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestValidateReportsVectorsInOrder(t *testing.T) {
	cfg := Default()
	cfg.Camera.Position = []float64{1}
	cfg.Camera.Direction = []float64{0, 1}
	cfg.Camera.Light = []float64{1, 2, 3, 4}

	first := cfg.Validate()
	require.ErrorIs(t, first, ErrInvalid)
	msg := first.Error()
	pos := strings.Index(msg, "camera.position needs 3 components, got 1")
	dir := strings.Index(msg, "camera.direction needs 3 components, got 2")
	light := strings.Index(msg, "camera.light needs 3 components, got 4")
	require.True(t, pos >= 0 && dir >= 0 && light >= 0, msg)
	assert.Less(t, pos, dir)
	assert.Less(t, dir, light)

	for i := 0; i < 20; i++ {
		assert.Equal(t, msg, cfg.Validate().Error())
	}
}
