package graphics

import (
	"vertex/internal/color"
	"vertex/internal/linalg"
	"vertex/internal/mesh"
)

// Instance places a mesh in the world for one frame.
type Instance struct {
	ID string
	// MeshID names the mesh resource. Instances sharing a MeshID share
	// the Mesh.
	MeshID   string
	Mesh     *mesh.Mesh
	Rotation *linalg.Vector
	Position *linalg.Vector
}

// Fragment is one projected, clipped triangle.
type Fragment struct {
	Points    [3]*linalg.Vector
	ZMidpoint float64
	// Normal is the world-space face normal (w=0).
	Normal *linalg.Vector
	Color  color.Color
}

// Stats counts what happened to the triangles of one Geometry call.
type Stats struct {
	Instances  int
	Triangles  int
	Culled     int
	Degenerate int
	Fragments  int
}

func (s *Stats) add(o Stats) {
	s.Instances += o.Instances
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Degenerate += o.Degenerate
	s.Fragments += o.Fragments
}
