package physics

import (
	"math"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/vmath"
)

// Space is a minimal rigid-body world of spheres with unit mass and inertia
// It implements Service for the simulation and its tests
type Space struct {
	mu     sync.RWMutex
	bodies map[core.Entity]*Body
	order  []core.Entity // Sorted ids for deterministic ray casts
}

// NewSpace creates an empty space
func NewSpace() *Space {
	return &Space{
		bodies: make(map[core.Entity]*Body),
	}
}

// AddBody inserts or replaces the body of e
func (s *Space) AddBody(e core.Entity, desc BodyDesc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bodies[e]; !exists {
		s.order = append(s.order, e)
		sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })
	}
	s.bodies[e] = newBody(desc)
}

// RemoveBody deletes the body of e
func (s *Space) RemoveBody(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bodies[e]; !exists {
		return
	}
	delete(s.bodies, e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetTranslation teleports a body
func (s *Space) SetTranslation(e core.Entity, p mgl64.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok {
		b.Position = p
	}
}

// SetVelocity overrides the linear velocity of a body
func (s *Space) SetVelocity(e core.Entity, v mgl64.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok {
		b.LinVel = v
	}
}

// AngularVelocity returns the angular velocity of a body
func (s *Space) AngularVelocity(e core.Entity) (mgl64.Vec3, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bodies[e]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.AngVel, true
}

func (s *Space) Transform(e core.Entity) (Transform, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bodies[e]
	if !ok {
		return Transform{}, false
	}
	return Transform{Translation: b.Position, Rotation: b.Rotation}, true
}

func (s *Space) Velocity(e core.Entity) (mgl64.Vec3, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bodies[e]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.LinVel, true
}

func (s *Space) ApplyImpulse(e core.Entity, impulse mgl64.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok && !b.Static {
		b.LinVel = b.LinVel.Add(impulse)
	}
}

func (s *Space) ApplyTorqueImpulse(e core.Entity, torque mgl64.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok && !b.Static {
		b.AngVel = b.AngVel.Add(torque)
	}
}

func (s *Space) SetLinearDamping(e core.Entity, damping float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bodies[e]; ok {
		b.LinearDamping = damping
	}
}

func (s *Space) LinearDamping(e core.Entity) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bodies[e]
	if !ok {
		return 0, false
	}
	return b.LinearDamping, true
}

func (s *Space) CastRay(origin, direction mgl64.Vec3, maxDist float64, exclude core.Entity) (RayHit, bool) {
	dir := vmath.NormalizeSafe(direction)
	if dir.Len() < vmath.Epsilon || maxDist <= 0 {
		return RayHit{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for _, e := range s.order {
		if e == exclude {
			continue
		}
		b := s.bodies[e]
		t, ok := raySphere(origin, dir, b.Position, b.Radius)
		if !ok || t > maxDist {
			continue
		}
		// Strict comparison keeps the lowest id on equal distance
		if t < best.Distance {
			best = RayHit{Entity: e, Distance: t, Point: origin.Add(dir.Mul(t))}
			found = true
		}
	}
	return best, found
}

func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.order {
		integrate(s.bodies[e], dt)
	}
}

// Count returns the number of bodies
func (s *Space) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bodies)
}
