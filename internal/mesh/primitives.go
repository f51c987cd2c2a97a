package mesh

import (
	"math"

	"vertex/internal/linalg"
)

// Cube returns an axis-aligned cube of the given edge length centered on
// the origin. Faces wind counter-clockwise seen from outside.
func Cube(name string, size float64) *Mesh {
	h := size / 2
	quads := [6][4][3]float64{
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // +z
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, // -z
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},     // +x
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // -x
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},     // +y
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // -y
	}

	vertices := make([]*linalg.Vector, 0, 24)
	triangles := make([][3]*linalg.Vector, 0, 12)
	for _, q := range quads {
		var corners [4]*linalg.Vector
		for i, c := range q {
			corners[i] = linalg.NewVector(c[0], c[1], c[2], 1)
			vertices = append(vertices, corners[i])
		}
		triangles = append(triangles,
			[3]*linalg.Vector{corners[0], corners[1], corners[2]},
			[3]*linalg.Vector{corners[0], corners[2], corners[3]},
		)
	}
	return New(name, vertices, triangles)
}

// UVSphere returns a latitude/longitude sphere. rings must be at least 2
// and segments at least 3; smaller values are raised to those minimums.
func UVSphere(name string, radius float64, rings, segments int) *Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	grid := make([][]*linalg.Vector, rings+1)
	var vertices []*linalg.Vector
	for i := 0; i <= rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		grid[i] = make([]*linalg.Vector, segments+1)
		for j := 0; j <= segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			v := linalg.NewVector(
				radius*math.Sin(theta)*math.Cos(phi),
				radius*math.Cos(theta),
				radius*math.Sin(theta)*math.Sin(phi),
				1,
			)
			grid[i][j] = v
			vertices = append(vertices, v)
		}
	}

	var triangles [][3]*linalg.Vector
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a, b := grid[i][j], grid[i+1][j]
			c, d := grid[i+1][j+1], grid[i][j+1]
			// the pole rows collapse one triangle of each quad
			if i != 0 {
				triangles = append(triangles, [3]*linalg.Vector{a, d, c})
			}
			if i != rings-1 {
				triangles = append(triangles, [3]*linalg.Vector{a, c, b})
			}
		}
	}
	return New(name, vertices, triangles)
}
