package mesh

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertex/internal/linalg"
)

const tetra = `# tetrahedron
o tetra
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1/1 2/2 4/3
f 1//1 4//1 3//1
f 2 3 4
`

func TestDecodeOBJ(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader(tetra), "tetra.obj", nil)
	require.NoError(t, err)

	assert.Equal(t, "tetra", m.Name())
	assert.Len(t, m.Vertices(), 4)
	assert.Len(t, m.Triangles(), 4)
	assert.Equal(t, 4, m.Vertices()[0].Dim(), "vertices are homogeneous")
	assert.Equal(t, 1.0, m.Vertices()[0].W())
	assert.Same(t, m.Vertices()[1], m.Triangles()[1][1])
}

func TestDecodeOBJScalesAndBounds(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader(tetra), "tetra.obj", linalg.NewVector(2, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.Vertices()[1].X())
	b := m.Bounds()
	assert.True(t, b.Position.Equal(linalg.NewVector(1, 1, 1), 1e-12), "got %s", b.Position)
	assert.InDelta(t, 1.7320508075688772, b.Radius, 1e-12)
}

func TestDecodeOBJFanTriangulates(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	m, err := DecodeOBJ(strings.NewReader(src), "quad.obj", nil)
	require.NoError(t, err)
	assert.Len(t, m.Triangles(), 2)
}

func TestDecodeOBJMalformedFace(t *testing.T) {
	cases := map[string]string{
		"too few corners": "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"bad index":       "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 x 3\n",
		"out of range":    "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeOBJ(strings.NewReader(src), "broken.obj", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedFace)

			var faceErr *FaceError
			require.True(t, errors.As(err, &faceErr))
			assert.Equal(t, "broken.obj", faceErr.Source)
			assert.Equal(t, strings.Count(src, "\n"), faceErr.Line)
		})
	}
}

func TestCubeNormalsPointOutward(t *testing.T) {
	m := Cube("cube", 2)
	require.Len(t, m.Triangles(), 12)

	for _, tri := range m.Triangles() {
		n := linalg.Subbed(tri[1], tri[0]).Cross(linalg.Subbed(tri[2], tri[0]))
		center := linalg.Added(tri[0], tri[1]).Add(tri[2]).Div(3)
		assert.Greater(t, n.Dot(center), 0.0)
	}
}

func TestUVSphereNormalsPointOutward(t *testing.T) {
	m := UVSphere("ball", 1, 8, 12)
	assert.InDelta(t, math.Sqrt(3), m.Bounds().Radius, 1e-9, "half the box diagonal")

	for _, tri := range m.Triangles() {
		n := linalg.Subbed(tri[1], tri[0]).Cross(linalg.Subbed(tri[2], tri[0]))
		center := linalg.Added(tri[0], tri[1]).Add(tri[2]).Div(3)
		assert.Greater(t, n.Dot(center), 0.0)
	}
}

func TestCacheSharesIdenticalContent(t *testing.T) {
	c := NewCache()

	a, err := c.Load("a", "a.obj", []byte(tetra), nil)
	require.NoError(t, err)
	b, err := c.Load("b", "b.obj", []byte(tetra), nil)
	require.NoError(t, err)
	scaled, err := c.Load("c", "c.obj", []byte(tetra), linalg.NewVector(2, 2, 2))
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, scaled)

	got, ok := c.Get("b")
	assert.True(t, ok)
	assert.Same(t, a, got)
}
