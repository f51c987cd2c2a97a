package scenario

import (
	"fmt"

	"vertex/internal/linalg"
	"vertex/internal/mesh"
)

const (
	sphereRings    = 12
	sphereSegments = 24
)

// sphere returns a cached sphere mesh of the given radius and its
// resource id.
func sphere(opts Options, radius float64) (string, *mesh.Mesh, error) {
	id := fmt.Sprintf("sphere@%g", radius)
	if m, ok := opts.Meshes.Get(id); ok {
		return id, m, nil
	}
	if opts.SpherePath != "" {
		m, err := opts.Meshes.LoadFile(id, opts.SpherePath, linalg.Uniform(radius, 3))
		return id, m, err
	}
	m := mesh.UVSphere(id, radius, sphereRings, sphereSegments)
	opts.Meshes.Put(id, m)
	return id, m, nil
}
