package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/registry"
)

func TestAssembleOrdersPipeline(t *testing.T) {
	RegisterSystems()
	world := engine.NewWorld()
	sched := engine.NewScheduler(world, parameter.TickInterval)
	require.NoError(t, Assemble(world, sched))

	var names []string
	for _, s := range world.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"input", "autopilot", "movement", "physics", "fuel", "docking", "indicator"}, names)

	r := sched.Router()
	assert.Equal(t, 1, r.HandlerCount(event.EventService))
	assert.Equal(t, 1, r.HandlerCount(event.EventSupplyFuel))
	assert.Equal(t, 1, r.HandlerCount(event.EventAutopilotToggle))
	assert.Equal(t, 1, r.HandlerCount(event.EventThrusterPulse))
	assert.Equal(t, 2, r.HandlerCount(event.EventTargetPickRequest)+r.HandlerCount(event.EventTargetNearestDockRequest))
	assert.Equal(t, 1, r.HandlerCount(event.EventTargetChanged))
	assert.Equal(t, 1, r.HandlerCount(event.EventServiceComplete))
	// Every toggleable system listens for enable events
	assert.Equal(t, 6, r.HandlerCount(event.EventSystemEnable))
}

func TestRegistryNamesCoverManifest(t *testing.T) {
	RegisterSystems()
	assert.Subset(t, registry.SystemNames(), ActiveSystems)
	assert.Subset(t, registry.HandlerNames(), ActiveHandlers)
}

func TestAssembleUnknownSystem(t *testing.T) {
	RegisterSystems()
	saved := ActiveSystems
	ActiveSystems = append([]string{"warp"}, saved...)
	defer func() { ActiveSystems = saved }()

	err := Assemble(engine.NewWorld(), engine.NewScheduler(engine.NewWorld(), parameter.TickInterval))
	assert.ErrorContains(t, err, `"warp"`)
}
