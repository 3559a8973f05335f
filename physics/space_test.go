package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/vmath"
)

func TestStepIntegratesWithDamping(t *testing.T) {
	s := NewSpace()
	s.AddBody(1, BodyDesc{Radius: 1})

	s.ApplyImpulse(1, mgl64.Vec3{10, 0, 0})
	s.Step(0.5)

	tr, ok := s.Transform(1)
	require.True(t, ok)
	assert.InDelta(t, 5, tr.Translation[0], 1e-9)

	s.SetLinearDamping(1, 1)
	s.Step(1)
	v, _ := s.Velocity(1)
	assert.InDelta(t, 5, v[0], 1e-9, "v *= 1/(1+dt*d)")

	d, ok := s.LinearDamping(1)
	require.True(t, ok)
	assert.Equal(t, 1.0, d)
}

func TestStaticBodyIgnoresImpulse(t *testing.T) {
	s := NewSpace()
	s.AddBody(1, BodyDesc{Position: mgl64.Vec3{1, 2, 3}, Static: true, Radius: 1})
	s.ApplyImpulse(1, mgl64.Vec3{100, 0, 0})
	s.ApplyTorqueImpulse(1, mgl64.Vec3{0, 100, 0})
	s.Step(1)

	tr, _ := s.Transform(1)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, tr.Translation)
}

func TestYawOnlyRotation(t *testing.T) {
	s := NewSpace()
	s.AddBody(1, BodyDesc{Radius: 1, YawOnly: true})

	// Negative torque about up turns the nose right, towards +X
	s.ApplyTorqueImpulse(1, mgl64.Vec3{3, -math.Pi / 2, 5})
	s.Step(1)

	tr, _ := s.Transform(1)
	fwd := vmath.ForwardOf(tr.Rotation)
	assert.InDelta(t, 1, fwd[0], 1e-9)
	assert.InDelta(t, 0, fwd[1], 1e-9)
	assert.InDelta(t, 1, vmath.UpOf(tr.Rotation)[1], 1e-9)

	w, _ := s.AngularVelocity(1)
	assert.Equal(t, 0.0, w[0])
	assert.Equal(t, 0.0, w[2])
}

func TestCastRay(t *testing.T) {
	s := NewSpace()
	s.AddBody(3, BodyDesc{Position: mgl64.Vec3{0, 0, -20}, Radius: 2, Static: true})
	s.AddBody(2, BodyDesc{Position: mgl64.Vec3{0, 0, -10}, Radius: 2, Static: true})
	s.AddBody(1, BodyDesc{Radius: 1})

	hit, ok := s.CastRay(mgl64.Vec3{}, vmath.Forward, 100, 1)
	require.True(t, ok)
	assert.Equal(t, uint64(2), uint64(hit.Entity))
	assert.InDelta(t, 8, hit.Distance, 1e-9)

	_, ok = s.CastRay(mgl64.Vec3{}, vmath.Forward, 5, 1)
	assert.False(t, ok, "beyond max distance")

	_, ok = s.CastRay(mgl64.Vec3{}, vmath.Up, 100, 1)
	assert.False(t, ok, "miss")

	_, ok = s.CastRay(mgl64.Vec3{}, mgl64.Vec3{}, 100, 1)
	assert.False(t, ok, "degenerate direction")

	s.RemoveBody(2)
	hit, ok = s.CastRay(mgl64.Vec3{}, vmath.Forward, 100, 1)
	require.True(t, ok)
	assert.Equal(t, uint64(3), uint64(hit.Entity))
}

func TestMissingBodyIsNoop(t *testing.T) {
	s := NewSpace()
	s.ApplyImpulse(9, mgl64.Vec3{1, 0, 0})
	s.SetLinearDamping(9, 3)
	_, ok := s.Transform(9)
	assert.False(t, ok)
	_, ok = s.Velocity(9)
	assert.False(t, ok)
	_, ok = s.LinearDamping(9)
	assert.False(t, ok)
}
