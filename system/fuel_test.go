package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
)

func TestLowFuelRetargetsNearestDock(t *testing.T) {
	h := newHarness(t)
	craft := h.addPilot(mgl64.Vec3{}, 250)
	far := h.addDock(mgl64.Vec3{0, 0, 50})  // distance² 2500
	near := h.addDock(mgl64.Vec3{30, 0, 0}) // distance² 900
	home := h.addBeacon(mgl64.Vec3{0, 0, -500})
	h.world.Resource.Target.Set(home)
	require.Less(t, far, near, "far dock has the lower id")

	h.run(2)
	assert.Equal(t, component.ServiceNormal, h.craft(craft).Service, "25% is not low")
	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, home, got)

	fuel, _ := h.world.Components.Fuel.Get(craft)
	fuel.Loss(60)
	h.world.Components.Fuel.Set(craft, fuel)

	h.run(1)
	assert.Equal(t, component.ServiceNeeded, h.craft(craft).Service)

	// Retarget is dispatched one tick later
	h.run(1)
	got, _ = h.world.Resource.Target.Get()
	assert.Equal(t, near, got)
}

func TestLowFuelNonPilotKeepsTarget(t *testing.T) {
	h := newHarness(t)
	h.addPilot(mgl64.Vec3{}, 1000)
	other := h.addCraft(mgl64.Vec3{100, 0, 0}, 10)
	h.addDock(mgl64.Vec3{100, 0, 20})
	home := h.addBeacon(mgl64.Vec3{})
	h.world.Resource.Target.Set(home)

	h.run(3)
	assert.Equal(t, component.ServiceNeeded, h.craft(other).Service)
	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, home, got, "only the piloted craft retargets")
}

func TestNeedsServiceFlaggedOnce(t *testing.T) {
	h := newHarness(t)
	craft := h.addPilot(mgl64.Vec3{}, 100)
	fs := NewFuelSystem(h.world)
	h.step(parameter.TickInterval)

	fs.Update()
	fs.Update()

	events := h.world.Resource.Event.Queue.Consume()
	require.Len(t, events, 1, "transition fires once")
	assert.Equal(t, event.EventTargetNearestDockRequest, events[0].Type)
	assert.Equal(t, craft, events[0].Payload.(*event.TargetNearestDockPayload).Craft)
}

func TestServicedCraftNotReflagged(t *testing.T) {
	h := newHarness(t)
	craft := h.addPilot(mgl64.Vec3{}, 0)
	h.setService(craft, component.ServiceActive)
	fs := NewFuelSystem(h.world)
	h.step(parameter.TickInterval)

	fs.Update()
	assert.True(t, h.craft(craft).UnderService())
	assert.Zero(t, h.world.Resource.Event.Queue.Len())
}

func TestSupplyFuelEndsServiceWhenFull(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 998.5)
	h.setService(craft, component.ServiceActive)
	fs := NewFuelSystem(h.world).(*FuelSystem)

	supply := event.GameEvent{Type: event.EventSupplyFuel, Payload: &event.SupplyFuelPayload{Craft: craft, Amount: 1}}
	fs.HandleEvent(supply)
	assert.Equal(t, 999.5, h.fuel(craft))
	assert.True(t, h.craft(craft).UnderService())
	assert.Nil(t, h.world.Resource.Service.DrainReleased())

	fs.HandleEvent(supply)
	assert.Equal(t, 1000.0, h.fuel(craft), "gain clamps at capacity")
	assert.Equal(t, component.ServiceNormal, h.craft(craft).Service)
	assert.Equal(t, []core.Entity{craft}, h.world.Resource.Service.DrainReleased())

	events := h.world.Resource.Event.Queue.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventServiceComplete, events[0].Type)
}

func TestSupplyFuelUnknownCraftIgnored(t *testing.T) {
	h := newHarness(t)
	fs := NewFuelSystem(h.world).(*FuelSystem)
	fs.HandleEvent(event.GameEvent{Type: event.EventSupplyFuel, Payload: &event.SupplyFuelPayload{Craft: 42, Amount: 1}})
	assert.Nil(t, h.world.Resource.Service.DrainReleased())
}

func TestTunedLowThresholdDrivesFlagAndIndicator(t *testing.T) {
	h := newHarness(t)
	h.world.Resource.Tuning.FuelLowThreshold = 0.5
	craft := h.addPilot(mgl64.Vec3{}, 400)
	fs := NewFuelSystem(h.world)
	ind := NewIndicatorSystem(h.world)
	h.step(parameter.TickInterval)

	fs.Update()
	ind.Update()
	assert.True(t, h.craft(craft).NeedsService(), "40%% is low under a 50%% threshold")
	assert.True(t, h.world.Resource.Indicator.Snapshot().FuelLow)
}
