package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/physics"
	"github.com/lixenwraith/skyport/vmath"
)

// MovementSystem drains the control queue and actuates craft through the physics service
//
// Per craft batch rules:
//   - Thrust is dropped for a craft with no fuel or one under service, other craft are unaffected
//   - Brake sets linear damping and is honoured regardless of fuel or service
//   - A batch with accepted thrust and no brake restores baseline damping
type MovementSystem struct {
	world *engine.World

	enabled bool

	statApplied *atomic.Int64
	statDropped *atomic.Int64
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	s := &MovementSystem{
		world:       world,
		statApplied: reg.Counter("movement.applied"),
		statDropped: reg.Counter("movement.dropped"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *MovementSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// EventTypes returns the event types MovementSystem handles
func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemEnable,
	}
}

// HandleEvent processes enable toggles
func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	applyEnable(ev, s.Name(), &s.enabled)
}

// Update applies every command queued this tick
// The queue is always drained so stale commands never leak into the next tick
func (s *MovementSystem) Update() {
	commands := s.world.Resource.Control.Queue.Drain()
	if !s.enabled || len(commands) == 0 {
		return
	}
	phys := s.world.Resource.Physics.Service
	if phys == nil {
		return
	}

	for _, batch := range groupByCraft(commands) {
		s.applyBatch(phys, batch)
	}
}

// craftBatch is the commands of one craft in queue order
type craftBatch struct {
	craft    core.Entity
	commands []event.ControlCommand
}

// groupByCraft splits commands per craft, crafts ordered by first appearance
func groupByCraft(commands []event.ControlCommand) []craftBatch {
	var batches []craftBatch
	index := make(map[core.Entity]int)
	for _, cmd := range commands {
		i, ok := index[cmd.Craft]
		if !ok {
			i = len(batches)
			index[cmd.Craft] = i
			batches = append(batches, craftBatch{craft: cmd.Craft})
		}
		batches[i].commands = append(batches[i].commands, cmd)
	}
	return batches
}

func (s *MovementSystem) applyBatch(phys physics.Service, batch craftBatch) {
	craft := batch.craft
	cc, ok := s.world.Components.Craft.Get(craft)
	if !ok {
		return
	}
	tr, ok := phys.Transform(craft)
	if !ok {
		return
	}

	fuel, hasFuel := s.world.Components.Fuel.Get(craft)
	mult, hasMult := s.world.Components.Multiplier.Get(craft)
	if !hasMult {
		mult.Linear, mult.Angular = parameter.ControlLinear, parameter.ControlAngular
	}

	res := s.world.Resource
	dt := res.Time.Seconds()
	braked, thrusted := false, false

	for _, cmd := range batch.commands {
		if cmd.Axis == event.AxisBrake {
			phys.SetLinearDamping(craft, cmd.Magnitude)
			braked = true
			s.applied(cmd)
			continue
		}

		if cc.UnderService() {
			s.dropped(cmd, "service")
			continue
		}
		if !hasFuel || fuel.Empty() {
			s.dropped(cmd, "fuel")
			continue
		}

		switch cmd.Axis {
		case event.AxisForward:
			phys.ApplyImpulse(craft, vmath.ForwardOf(tr.Rotation).Mul(mult.Linear*cmd.Magnitude*dt))
			fuel.Loss(res.Tuning.FuelCostLinear * math.Abs(cmd.Magnitude))
		case event.AxisVertical:
			phys.ApplyImpulse(craft, vmath.UpOf(tr.Rotation).Mul(mult.Linear*cmd.Magnitude*dt))
			fuel.Loss(res.Tuning.FuelCostLinear * math.Abs(cmd.Magnitude))
		case event.AxisYaw:
			phys.ApplyTorqueImpulse(craft, vmath.UpOf(tr.Rotation).Mul(-cmd.Magnitude*dt*mult.Angular))
			fuel.Loss(res.Tuning.FuelCostYaw * math.Abs(cmd.Magnitude))
		default:
			continue
		}

		thrusted = true
		s.applied(cmd)
		res.Event.Queue.Emit(event.EventThrusterPulse, &event.ThrusterPulsePayload{
			Craft: craft,
			Axis:  cmd.Axis,
			Sign:  vmath.Signum(cmd.Magnitude),
		}, res.Time.Tick)
	}

	if thrusted && !braked {
		phys.SetLinearDamping(craft, res.Tuning.LinearDampingBaseline)
	}
	if hasFuel {
		s.world.Components.Fuel.Set(craft, fuel)
	}
}

func (s *MovementSystem) applied(cmd event.ControlCommand) {
	s.statApplied.Add(1)
	s.world.Resource.Telemetry.CommandApplied(cmd.Axis.String())
}

func (s *MovementSystem) dropped(cmd event.ControlCommand, reason string) {
	s.statDropped.Add(1)
	s.world.Resource.Telemetry.CommandDropped(cmd.Axis.String(), reason)
}
