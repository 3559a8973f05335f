package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/physics"
)

// harness wires the full pipeline over a reference physics space
type harness struct {
	t     *testing.T
	world *engine.World
	space *physics.Space
	sched *engine.Scheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	world := engine.NewWorld()
	space := physics.NewSpace()
	world.Resource.Physics.Service = space
	sched := engine.NewScheduler(world, parameter.TickInterval)

	systems := []engine.System{
		NewInputSystem(world),
		NewAutopilotSystem(world),
		NewMovementSystem(world),
		NewPhysicsSystem(world),
		NewFuelSystem(world),
		NewDockingSystem(world),
		NewIndicatorSystem(world),
	}
	for _, sys := range systems {
		world.AddSystem(sys)
		if h, ok := sys.(engine.EventHandler); ok {
			sched.RegisterEventHandler(h)
		}
	}
	for _, h := range []engine.EventHandler{
		NewServiceSystem(world),
		NewTargetingSystem(world),
		NewAudioSystem(world),
		NewNoticeSystem(world),
	} {
		sched.RegisterEventHandler(h)
	}

	return &harness{t: t, world: world, space: space, sched: sched}
}

// addCraft spawns a yaw-only craft facing -Z with the given fuel
func (h *harness) addCraft(pos mgl64.Vec3, fuel float64) core.Entity {
	e := h.world.CreateEntity()
	h.space.AddBody(e, physics.BodyDesc{
		Position:       pos,
		Radius:         parameter.CraftRadius,
		LinearDamping:  parameter.LinearDampingBaseline,
		AngularDamping: parameter.AngularDamping,
		YawOnly:        true,
	})
	h.world.Components.Craft.Set(e, component.CraftComponent{})
	h.world.Components.Fuel.Set(e, component.FuelComponent{Current: fuel, Capacity: parameter.FuelCapacity})
	h.world.Components.Multiplier.Set(e, component.DefaultMultiplier())
	return e
}

func (h *harness) addPilot(pos mgl64.Vec3, fuel float64) core.Entity {
	e := h.addCraft(pos, fuel)
	h.world.Resource.Pilot.Entity = e
	return e
}

func (h *harness) addDock(pos mgl64.Vec3) core.Entity {
	e := h.world.CreateEntity()
	h.space.AddBody(e, physics.BodyDesc{Position: pos, Radius: parameter.DockRadius, Static: true})
	h.world.Components.Dock.Set(e, component.DockComponent{})
	return e
}

func (h *harness) addBeacon(pos mgl64.Vec3) core.Entity {
	e := h.world.CreateEntity()
	h.space.AddBody(e, physics.BodyDesc{Position: pos, Radius: parameter.DockRadius, Static: true})
	h.world.Components.Beacon.Set(e, component.BeaconComponent{Name: "beacon"})
	return e
}

func (h *harness) setService(e core.Entity, state component.ServiceState) {
	cc, _ := h.world.Components.Craft.Get(e)
	cc.Service = state
	h.world.Components.Craft.Set(e, cc)
}

func (h *harness) setMode(e core.Entity, mode component.ControlMode) {
	cc, _ := h.world.Components.Craft.Get(e)
	cc.Mode = mode
	h.world.Components.Craft.Set(e, cc)
}

func (h *harness) craft(e core.Entity) component.CraftComponent {
	cc, ok := h.world.Components.Craft.Get(e)
	require.True(h.t, ok, "craft %d missing", e)
	return cc
}

func (h *harness) fuel(e core.Entity) float64 {
	f, ok := h.world.Components.Fuel.Get(e)
	require.True(h.t, ok, "fuel %d missing", e)
	return f.Current
}

func (h *harness) client(dock core.Entity) core.Entity {
	dc, ok := h.world.Components.Dock.Get(dock)
	require.True(h.t, ok, "dock %d missing", dock)
	return dc.Client
}

func (h *harness) damping(e core.Entity) float64 {
	d, ok := h.space.LinearDamping(e)
	require.True(h.t, ok)
	return d
}

func (h *harness) velocity(e core.Entity) mgl64.Vec3 {
	v, ok := h.space.Velocity(e)
	require.True(h.t, ok)
	return v
}

func (h *harness) run(n int) {
	for i := 0; i < n; i++ {
		h.sched.Tick()
	}
}

// runUntil ticks until cond holds and returns the number of ticks taken
func (h *harness) runUntil(cond func() bool, limit int) int {
	h.t.Helper()
	for i := 1; i <= limit; i++ {
		h.sched.Tick()
		if cond() {
			return i
		}
	}
	h.t.Fatalf("condition not reached within %d ticks", limit)
	return 0
}

// step primes the clock for direct Update calls outside the scheduler
func (h *harness) step(dt time.Duration) {
	h.world.Resource.Time.Update(dt, h.world.Resource.Time.Tick+1)
}
