// Package mesh holds immutable triangle meshes and the loaders that build
// them.
package mesh

import (
	"math"

	"vertex/internal/linalg"
)

// Mesh is created once and never modified. Vertices are homogeneous (w=1)
// and triangles reference them.
type Mesh struct {
	name      string
	vertices  []*linalg.Vector
	triangles [][3]*linalg.Vector
	bounds    linalg.Sphere
}

func New(name string, vertices []*linalg.Vector, triangles [][3]*linalg.Vector) *Mesh {
	return &Mesh{
		name:      name,
		vertices:  vertices,
		triangles: triangles,
		bounds:    boundingSphere(vertices),
	}
}

func (m *Mesh) Name() string { return m.name }
func (m *Mesh) Vertices() []*linalg.Vector { return m.vertices }
func (m *Mesh) Triangles() [][3]*linalg.Vector { return m.triangles }
func (m *Mesh) Bounds() linalg.Sphere { return m.bounds }

// boundingSphere centers on the box midpoint with half the box diagonal as
// radius.
func boundingSphere(vertices []*linalg.Vector) linalg.Sphere {
	if len(vertices) == 0 {
		return linalg.Sphere{Position: linalg.Zeroes(3)}
	}
	inf := math.Inf(1)
	lo := linalg.NewVector(inf, inf, inf)
	hi := linalg.NewVector(-inf, -inf, -inf)
	for _, v := range vertices {
		lo.Min(v)
		hi.Max(v)
	}
	return linalg.Sphere{
		Position: linalg.Added(lo, hi).Scale(0.5),
		Radius:   linalg.Subbed(hi, lo).Mag() / 2,
	}
}
