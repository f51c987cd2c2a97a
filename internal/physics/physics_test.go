package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertex/internal/linalg"
)

func TestTransformsRunInRegistrationOrder(t *testing.T) {
	var calls []string
	record := func(name string) Transform {
		return func(float64, *RigidBody, Bodies) { calls = append(calls, name) }
	}

	b := NewRigidBody(BodyOptions{Transforms: []Named[Transform]{
		{Name: "a", Value: record("a")},
		{Name: "b", Value: record("b")},
		{Name: "c", Value: record("c")},
	}})
	b.Update(1, nil)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	// replacing keeps the slot
	calls = nil
	b.Transforms.Set("a", record("a2"))
	b.Transforms.Set("d", record("d"))
	b.Update(1, nil)
	assert.Equal(t, []string{"a2", "b", "c", "d"}, calls)

	calls = nil
	assert.True(t, b.Transforms.Remove("b"))
	assert.False(t, b.Transforms.Remove("b"))
	b.Update(1, nil)
	assert.Equal(t, []string{"a2", "c", "d"}, calls)
}

func TestTransformReceivesArguments(t *testing.T) {
	other := NewRigidBody(BodyOptions{})
	var got struct {
		dt     float64
		self   *RigidBody
		bodies Bodies
	}
	b := NewRigidBody(BodyOptions{})
	b.Transforms.Set("probe", func(dt float64, self *RigidBody, bodies Bodies) {
		got.dt, got.self, got.bodies = dt, self, bodies
	})

	bodies := Bodies{"self": b, "other": other}
	b.Update(0.25, bodies)
	assert.Equal(t, 0.25, got.dt)
	assert.Same(t, b, got.self)
	assert.Same(t, other, got.bodies["other"])
}

func TestNewRigidBodyDefaults(t *testing.T) {
	b := NewRigidBody(BodyOptions{SphereRadius: 3})
	assert.Equal(t, 1.0, b.Mass)
	assert.Equal(t, []float64{0, 0, 0}, b.Position.Comps())
	assert.Equal(t, 3.0, b.BoundingSphere.Radius)
	assert.Nil(t, b.Force("velocity"))
}

func TestHelperTransforms(t *testing.T) {
	b := NewRigidBody(BodyOptions{
		Position: linalg.NewVector(0, 0, 0),
		Forces: []Named[*linalg.Vector]{
			{Name: "velocity", Value: linalg.NewVector(1, 0, 0)},
			{Name: "rotation", Value: linalg.NewVector(0, 4, 0)},
		},
		Transforms: []Named[Transform]{
			{Name: "rotate", Value: Spin("rotation")},
			{Name: "move", Value: Integrate("velocity")},
		},
	})
	b.Update(0.016, nil)
	b.Update(0.016, nil)

	assert.Equal(t, []float64{2, 0, 0}, b.Position.Comps())
	assert.Equal(t, []float64{0, 8, 0}, b.Rotation.Comps())
}

func TestGravitatePullsTogether(t *testing.T) {
	earth := NewRigidBody(BodyOptions{
		Position: linalg.NewVector(0, 0, 0),
		Mass:     10,
		Forces:   []Named[*linalg.Vector]{{Name: "velocity", Value: linalg.NewVector(0, 0, 0)}},
	})
	moon := NewRigidBody(BodyOptions{
		Position: linalg.NewVector(5, 0, 0),
		Forces:   []Named[*linalg.Vector]{{Name: "velocity", Value: linalg.NewVector(0, 0, 0)}},
	})
	earth.Transforms.Set("gravity", Gravitate(0.025, "velocity", "moon"))
	moon.Transforms.Set("gravity", Gravitate(0.025, "velocity", "earth"))

	bodies := Bodies{"earth": earth, "moon": moon}
	earth.Update(1, bodies)
	moon.Update(1, bodies)

	// F = 0.025*10*1/25 = 0.01
	assert.InDelta(t, 0.001, earth.Force("velocity").X(), 1e-12)
	assert.InDelta(t, -0.01, moon.Force("velocity").X(), 1e-12)

	same := Attraction(1, earth, earth)
	assert.Equal(t, 0.0, same.Mag())
}

func TestSphereColliderHalvesRadius(t *testing.T) {
	a := NewRigidBody(BodyOptions{Position: linalg.NewVector(0, 0, 0), SphereRadius: 2})
	b := NewRigidBody(BodyOptions{Position: linalg.NewVector(1.5, 0, 0), SphereRadius: 2})

	// stored radii sum to 4 but only half of each counts
	c := NewSphereCollider(a, b, nil)
	contact, err := c.TryResolveContact()
	require.NoError(t, err)
	assert.True(t, contact)

	b.Position.SetX(2)
	contact, err = c.TryResolveContact()
	require.NoError(t, err)
	assert.False(t, contact, "touching is not contact")
}

func TestSphereColliderUsesOffset(t *testing.T) {
	a := NewRigidBody(BodyOptions{SphereRadius: 2})
	b := NewRigidBody(BodyOptions{Position: linalg.NewVector(5, 0, 0), SphereRadius: 2})
	a.BoundingSphere.Position = linalg.NewVector(4, 0, 0)

	contact, err := NewSphereCollider(a, b, nil).TryResolveContact()
	require.NoError(t, err)
	assert.True(t, contact)
}

func TestSphereColliderFiresOnContactStart(t *testing.T) {
	a := NewRigidBody(BodyOptions{SphereRadius: 2})
	b := NewRigidBody(BodyOptions{Position: linalg.NewVector(1, 0, 0), SphereRadius: 2})
	fired := 0
	c := NewSphereCollider(a, b, func() { fired++ })

	for range 3 {
		_, err := c.TryResolveContact()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, fired)
	assert.True(t, c.IsColliding)

	b.Position.SetX(10)
	_, _ = c.TryResolveContact()
	assert.False(t, c.IsColliding)

	b.Position.SetX(1)
	_, _ = c.TryResolveContact()
	assert.Equal(t, 2, fired)
}

func TestSphereColliderMissingBody(t *testing.T) {
	_, err := NewSphereCollider(NewRigidBody(BodyOptions{}), nil, nil).TryResolveContact()
	assert.ErrorIs(t, err, ErrMissingBody)
}

type stubCollider struct {
	active bool
	err    error
	calls  *[]string
	name   string
}

func (s stubCollider) Active() bool { return s.active }

func (s stubCollider) TryResolveContact() (bool, error) {
	*s.calls = append(*s.calls, s.name)
	return true, s.err
}

func TestWorldStepOrder(t *testing.T) {
	var calls []string
	w := NewWorld(nil)

	for _, id := range []string{"one", "two"} {
		b := NewRigidBody(BodyOptions{})
		b.Transforms.Set("update", func(float64, *RigidBody, Bodies) { calls = append(calls, id+".body") })
		require.NoError(t, w.Add(id, b, nil))
		require.NoError(t, w.AddCollider(id, "x", stubCollider{active: true, calls: &calls, name: id + ".x"}))
		require.NoError(t, w.AddCollider(id, "off", stubCollider{calls: &calls, name: id + ".off"}))
		require.NoError(t, w.AddCollider(id, "y", stubCollider{active: true, calls: &calls, name: id + ".y"}))
	}

	stats, err := w.Step(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.body", "one.x", "one.y", "two.body", "two.x", "two.y"}, calls)
	assert.Equal(t, StepStats{Bodies: 2, Checked: 4, Contacts: 4}, stats)
}

func TestWorldStepStopsOnColliderError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	w := NewWorld(nil)
	require.NoError(t, w.Add("a", nil, nil))
	require.NoError(t, w.AddCollider("a", "bad", stubCollider{active: true, err: boom, calls: &calls, name: "bad"}))
	require.NoError(t, w.Add("b", nil, nil))
	require.NoError(t, w.AddCollider("b", "late", stubCollider{active: true, calls: &calls, name: "late"}))

	_, err := w.Step(1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"bad"}, calls)
}

func TestWorldRegistry(t *testing.T) {
	w := NewWorld(nil)
	b := NewRigidBody(BodyOptions{})
	require.NoError(t, w.Add("a", b, nil))
	assert.ErrorIs(t, w.Add("a", b, nil), ErrDuplicateBody)
	assert.ErrorIs(t, w.AddCollider("zzz", "c", nil), ErrUnknownBody)

	shared := &ColliderSet{}
	require.NoError(t, w.Add("c", nil, shared))
	require.NoError(t, w.AddCollider("c", "late", NewSphereCollider(b, b, nil)))
	assert.Equal(t, 1, shared.Len())
	assert.True(t, w.Remove("c"))

	got, ok := w.Body("a")
	assert.True(t, ok)
	assert.Same(t, b, got)
	assert.Len(t, w.Bodies(), 1)

	assert.True(t, w.Remove("a"))
	assert.False(t, w.Remove("a"))
	assert.Zero(t, w.Len())
}
