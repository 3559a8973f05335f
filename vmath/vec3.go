package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes, right-handed with Y up and -Z as the craft's nose direction
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, -1}
)

// Epsilon below which a vector is treated as zero length
const Epsilon = 1e-9

// RejectY returns v with its vertical component removed
func RejectY(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// NormalizeSafe returns the unit vector of v, or zero when v has no length
func NormalizeSafe(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Signum returns -1, 0 or 1; zero maps to 0 unlike math.Copysign
func Signum(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// DistanceSq is the squared euclidean distance between a and b
func DistanceSq(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// ForwardOf rotates the local nose axis by q
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf rotates the local right axis by q
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}

// UpOf rotates the local up axis by q
func UpOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Up)
}

// Bearing is the signed angle in radians between the horizontal direction
// to a target and the craft's forward axis
// Positive when the target lies to the right of the nose
func Bearing(toTargetXZ, forward mgl64.Vec3) float64 {
	dir := NormalizeSafe(toTargetXZ)
	if dir.Len() < Epsilon {
		return 0
	}
	dot := mgl64.Clamp(dir.Dot(NormalizeSafe(forward)), -1, 1)
	angle := math.Acos(dot)
	side := Signum(dir.Cross(forward)[1])
	if side == 0 {
		// Dead ahead or dead astern
		return angle
	}
	return angle * side
}

// YawRotation builds a rotation of angle radians about the world up axis
func YawRotation(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, Up)
}
