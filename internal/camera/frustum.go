package camera

import (
	"vertex/internal/linalg"
)

// Frustum holds the six clipping planes. Near and Far work on view-space
// depth; the four bounds work on screen coordinates centered on the
// viewport.
type Frustum struct {
	Near, Far                linalg.Plane
	Top, Bottom, Left, Right linalg.Plane
}

// NewFrustum builds the planes for a viewport of width x height. The
// screen bounds sit one unit outside the viewport edge.
func NewFrustum(near, far, width, height float64) Frustum {
	v := linalg.NewVector
	return Frustum{
		Near:   linalg.NewPlane(v(0, 0, -near), v(0, 0, 1)),
		Far:    linalg.NewPlane(v(0, 0, -far), v(0, 0, -1)),
		Left:   linalg.NewPlane(v(width/2+1, 0, 0), v(1, 0, 0)),
		Right:  linalg.NewPlane(v(-(width/2)-1, 0, 0), v(-1, 0, 0)),
		Top:    linalg.NewPlane(v(0, -(height/2)-1, 0), v(0, -1, 0)),
		Bottom: linalg.NewPlane(v(0, height/2+1, 0), v(0, 1, 0)),
	}
}

// Bounds returns the screen planes in clipping order.
func (f Frustum) Bounds() [4]linalg.Plane {
	return [4]linalg.Plane{f.Top, f.Bottom, f.Left, f.Right}
}

// ContainsDepth reports whether a view-space sphere reaches between the
// near and far planes.
func (f Frustum) ContainsDepth(center *linalg.Vector, radius float64) bool {
	for _, pl := range [2]linalg.Plane{f.Near, f.Far} {
		if pl.PointDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests a screen-space point against the four bounds.
func (f Frustum) ContainsPoint(p *linalg.Vector) bool {
	for _, pl := range f.Bounds() {
		if pl.PointDistance(p) < 0 {
			return false
		}
	}
	return true
}
