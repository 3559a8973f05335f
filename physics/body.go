package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyport/vmath"
)

// Body is a sphere with unit mass and inertia
type Body struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	LinVel   mgl64.Vec3
	AngVel   mgl64.Vec3

	LinearDamping  float64
	AngularDamping float64
	Radius         float64

	// Static bodies never integrate and ignore impulses
	Static bool

	// YawOnly discards pitch and roll angular velocity
	YawOnly bool
}

// BodyDesc configures a body on insertion
type BodyDesc struct {
	Position       mgl64.Vec3
	Yaw            float64
	Radius         float64
	LinearDamping  float64
	AngularDamping float64
	Static         bool
	YawOnly        bool
}

func newBody(d BodyDesc) *Body {
	return &Body{
		Position:       d.Position,
		Rotation:       vmath.YawRotation(d.Yaw),
		LinearDamping:  d.LinearDamping,
		AngularDamping: d.AngularDamping,
		Radius:         d.Radius,
		Static:         d.Static,
		YawOnly:        d.YawOnly,
	}
}

// integrate applies damping then advances pose: v *= 1/(1+dt*d); p += v*dt
func integrate(b *Body, dt float64) {
	if b.Static {
		return
	}

	b.LinVel = b.LinVel.Mul(1 / (1 + dt*b.LinearDamping))
	b.AngVel = b.AngVel.Mul(1 / (1 + dt*b.AngularDamping))
	if b.YawOnly {
		b.AngVel = mgl64.Vec3{0, b.AngVel[1], 0}
	}

	b.Position = b.Position.Add(b.LinVel.Mul(dt))

	if angle := b.AngVel.Len() * dt; angle > vmath.Epsilon {
		spin := mgl64.QuatRotate(angle, b.AngVel.Normalize())
		b.Rotation = spin.Mul(b.Rotation).Normalize()
	}
}

// raySphere returns the distance along a unit ray to the sphere surface
// An origin inside the sphere reports the exit point
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
