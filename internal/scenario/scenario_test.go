package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertex/internal/engine"
	"vertex/internal/linalg"
	"vertex/internal/physics"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"balls", "twoBody"}, Names())
	assert.Panics(t, func() { Register("balls", Balls) })

	err := Build("nope", engine.NewScene("x", nil), Options{})
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestTwoBodyAttracts(t *testing.T) {
	scene := engine.NewScene("twoBody", nil)
	require.NoError(t, Build("twoBody", scene, Options{}))
	require.Equal(t, 2, scene.Len())

	earth, _ := scene.Get("earth")
	mars, _ := scene.Get("mars")
	assert.Equal(t, "sphere@0.25", mars.MeshID)
	assert.Equal(t, 1, earth.Colliders.Len())

	_, err := scene.Step(1)
	require.NoError(t, err)

	// earth sits at +x of mars, so they accelerate towards each other
	assert.Less(t, earth.Body.Force("velocity").X(), 0.0)
	assert.Greater(t, mars.Body.Force("velocity").X(), 0.0)
	assert.Greater(t, earth.Body.Force("velocity").Z(), 0.1)
	assert.Equal(t, []float64{30, 1, 0}, earth.Body.Rotation.Comps())
}

func TestTwoBodyCollisionReverses(t *testing.T) {
	scene := engine.NewScene("twoBody", nil)
	require.NoError(t, Build("twoBody", scene, Options{}))
	earth, _ := scene.Get("earth")
	mars, _ := scene.Get("mars")

	earth.Body.Position = linalg.NewVector(0, 0, 0)
	mars.Body.Position = linalg.NewVector(0.1, 0, 0)
	earth.Body.Transforms.Remove("move")
	earth.Body.Transforms.Remove("applyGravity")
	mars.Body.Transforms = physics.TransformList{}
	mars.Body.Force("velocity").SetZ(1)

	_, err := scene.Step(1)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, earth.Body.Force("velocity").Z(), 1e-9)
	assert.InDelta(t, -1, mars.Body.Force("velocity").Z(), 1e-9)
}

func TestBallsShareMeshAndBounce(t *testing.T) {
	scene := engine.NewScene("balls", nil)
	require.NoError(t, Build("balls", scene, Options{}))

	earth, _ := scene.Get("earth")
	mars, _ := scene.Get("mars")
	assert.Same(t, earth.Mesh, mars.Mesh)

	_, err := scene.Step(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, earth.Body.Position.Z(), 1e-9)
	assert.InDelta(t, 0.2, earth.Body.Force("velocity").Z(), 1e-9)

	earth.Body.Position.SetZ(50)
	_, err = scene.Step(1)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, earth.Body.Force("acceleration").Z(), 1e-9)
}

func TestSphereFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.obj")
	obj := "o ball\nv -1 -1 -1\nv 1 1 1\nv 1 -1 1\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(obj), 0o644))

	scene := engine.NewScene("twoBody", nil)
	require.NoError(t, Build("twoBody", scene, Options{SpherePath: path}))

	mars, _ := scene.Get("mars")
	assert.InDelta(t, 0.25*1.7320508075688772, mars.Mesh.Bounds().Radius, 1e-9)
	assert.InDelta(t, mars.Mesh.Bounds().Radius, mars.Body.BoundingSphere.Radius, 1e-12)
}
