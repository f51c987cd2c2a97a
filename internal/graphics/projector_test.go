package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vertex/internal/linalg"
)

func TestProjectorUsesHalfNearDepth(t *testing.T) {
	opts := DefaultOptions()
	opts.Camera.Near, opts.Camera.Far = 0.2, 50
	opts.Camera.Width, opts.Camera.Height = 800, 600

	p := NewProjector(opts, nil)

	assert.InDelta(t, 50/(50-0.1), p.projection.At(2, 2), 1e-12)
	assert.InDelta(t, 50*0.1/(50-0.1), p.zOffset.Z(), 1e-12)
	assert.InDelta(t, 0.75*opts.Scale, p.screenScale, 1e-12)

	// a point on the near plane still divides by a positive depth
	z := 0.2
	assert.Greater(t, z*p.projection.At(2, 2)-p.zOffset.Z(), 0.0)

	// built for the real near distance the same point would be culled
	full, offset := linalg.ProjectionMatrix(0.2, 50, opts.FieldOfView)
	assert.InDelta(t, 0, z*full.At(2, 2)-offset, 1e-12)
}
