package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertex/internal/color"
	"vertex/internal/linalg"
)

func testCamera() *Camera {
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 100
	opts.Near, opts.Far = 1, 50
	return New(opts)
}

func TestFrustumDepthPlanes(t *testing.T) {
	f := testCamera().Frustum()

	assert.Less(t, f.Near.PointDistance(linalg.NewVector(0, 0, 0.5)), 0.0)
	assert.GreaterOrEqual(t, f.Near.PointDistance(linalg.NewVector(0, 0, 2)), 0.0)
	assert.GreaterOrEqual(t, f.Far.PointDistance(linalg.NewVector(0, 0, 49)), 0.0)
	assert.Less(t, f.Far.PointDistance(linalg.NewVector(0, 0, 51)), 0.0)

	assert.True(t, f.ContainsDepth(linalg.NewVector(0, 0, 0), 1.5))
	assert.False(t, f.ContainsDepth(linalg.NewVector(0, 0, -5), 1))
	assert.False(t, f.ContainsDepth(linalg.NewVector(0, 0, 60), 1))
}

func TestFrustumScreenBounds(t *testing.T) {
	f := testCamera().Frustum()

	assert.True(t, f.ContainsPoint(linalg.NewVector(0, 0, 0)))
	assert.True(t, f.ContainsPoint(linalg.NewVector(101, 51, 0)))
	assert.True(t, f.ContainsPoint(linalg.NewVector(-101, -51, 0)))
	assert.False(t, f.ContainsPoint(linalg.NewVector(102, 0, 0)))
	assert.False(t, f.ContainsPoint(linalg.NewVector(-102, 0, 0)))
	assert.False(t, f.ContainsPoint(linalg.NewVector(0, 52, 0)))
	assert.False(t, f.ContainsPoint(linalg.NewVector(0, -52, 0)))

	b := f.Bounds()
	assert.Equal(t, f.Top, b[0])
	assert.Equal(t, f.Right, b[3])
}

func TestShouldCull(t *testing.T) {
	c := testCamera()

	// counter-clockwise seen from the camera at the origin
	facing := [3]*linalg.Vector{
		linalg.NewVector(0, 0, -5, 1),
		linalg.NewVector(1, 0, -5, 1),
		linalg.NewVector(0, 1, -5, 1),
	}
	normal, sim, cull := c.ShouldCull(facing[0], facing[1], facing[2], 0)
	assert.False(t, cull)
	assert.Greater(t, sim, 0.0)
	assert.Equal(t, 4, normal.Dim())
	assert.Equal(t, 0.0, normal.W())
	assert.InDelta(t, 1, normal.Mag(), 1e-12)

	_, _, cull = c.ShouldCull(facing[0], facing[2], facing[1], 0)
	assert.True(t, cull)
}

func TestIlluminate(t *testing.T) {
	c := testCamera()

	lit := c.Illuminate(linalg.NewVector(0, 0, -1, 0))
	assert.Equal(t, color.HSV, lit.Space)
	assert.InDelta(t, 180, lit.Comps[0], 1e-9)
	assert.InDelta(t, 1, lit.Comps[2], 1e-12)

	dark := c.Illuminate(linalg.NewVector(0, 0, 1, 0))
	assert.InDelta(t, -1, dark.Comps[2], 1e-12)
	assert.Equal(t, "000000", dark.Hex())
}

func TestControls(t *testing.T) {
	c := testCamera()

	c.Rise(2)
	assert.InDelta(t, 1, c.Position.Y(), 1e-12)

	c.Advance(1)
	assert.InDelta(t, -2.5, c.Position.Z(), 1e-12)

	c.Strafe(1)
	assert.InDelta(t, 0.5, c.Position.X(), 1e-12)

	c.Turn(-1)
	assert.InDelta(t, -0.05, c.Direction.X(), 1e-12)
}

func TestStateRoundTrip(t *testing.T) {
	c := testCamera()
	c.Advance(3)

	s := c.State()
	other := testCamera()
	other.Restore(s)

	require.Equal(t, c.Position.Comps(), other.Position.Comps())
	assert.Equal(t, c.Direction.Comps(), other.Direction.Comps())

	s.Position[0] = 99
	assert.NotEqual(t, 99.0, c.Position.X(), "state holds copies")
}
