package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyport/core"
)

// Transform is the pose of a body in world space
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// RayHit is the closest body intersected by a ray
type RayHit struct {
	Entity   core.Entity
	Distance float64
	Point    mgl64.Vec3
}

// Service is the rigid-body collaborator the simulation drives
// Absent entities are reported through the bool return and mutations on them are ignored
type Service interface {
	Transform(e core.Entity) (Transform, bool)
	Velocity(e core.Entity) (mgl64.Vec3, bool)

	// ApplyImpulse adds a linear impulse in world space
	ApplyImpulse(e core.Entity, impulse mgl64.Vec3)

	// ApplyTorqueImpulse adds an angular impulse in world space
	ApplyTorqueImpulse(e core.Entity, torque mgl64.Vec3)

	SetLinearDamping(e core.Entity, damping float64)
	LinearDamping(e core.Entity) (float64, bool)

	// CastRay returns the nearest body hit within maxDist, skipping exclude
	CastRay(origin, direction mgl64.Vec3, maxDist float64, exclude core.Entity) (RayHit, bool)

	// Step advances the simulation by dt seconds
	Step(dt float64)
}
