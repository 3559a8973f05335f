package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/vmath"
)

// AutopilotSystem steers autopiloted craft towards the current target
// It produces control commands only; the movement system applies them in the same tick
type AutopilotSystem struct {
	world *engine.World

	enabled bool
}

// NewAutopilotSystem creates a new autopilot system
func NewAutopilotSystem(world *engine.World) engine.System {
	s := &AutopilotSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AutopilotSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AutopilotSystem) Name() string {
	return "autopilot"
}

// Priority returns the system's priority
func (s *AutopilotSystem) Priority() int {
	return parameter.PriorityAutopilot
}

// EventTypes returns the event types AutopilotSystem handles
func (s *AutopilotSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAutopilotToggle,
		event.EventSystemEnable,
	}
}

// HandleEvent processes autopilot toggles
func (s *AutopilotSystem) HandleEvent(ev event.GameEvent) {
	if applyEnable(ev, s.Name(), &s.enabled) {
		return
	}
	if ev.Type != event.EventAutopilotToggle {
		return
	}

	var craft core.Entity
	if payload, ok := ev.Payload.(*event.AutopilotTogglePayload); ok {
		craft = payload.Craft
	}
	if craft == 0 {
		craft = s.world.Resource.Pilot.Entity
	}

	cc, ok := s.world.Components.Craft.Get(craft)
	if !ok {
		return
	}
	mode := cc.ToggleAutopilot()
	s.world.Components.Craft.Set(craft, cc)

	s.world.Resource.Log.Info("autopilot toggled",
		zap.Uint64("craft", uint64(craft)),
		zap.Stringer("mode", mode),
	)
}

// Update issues steering commands for every engaged craft
func (s *AutopilotSystem) Update() {
	if !s.enabled {
		return
	}

	res := s.world.Resource
	phys := res.Physics.Service
	if phys == nil {
		return
	}
	target, ok := res.Target.Get()
	if !ok {
		return
	}
	targetTr, ok := phys.Transform(target)
	if !ok {
		return
	}

	// Start offset rotates with the tick so thrust overflow never starves the same craft
	dt := res.Time.Seconds()
	crafts := s.world.Components.Craft.Sorted()
	offset := 0
	if len(crafts) > 0 {
		offset = int(res.Time.Tick % int64(len(crafts)))
	}
	for i := range crafts {
		craft := crafts[(offset+i)%len(crafts)]
		cc, _ := s.world.Components.Craft.Get(craft)
		if !cc.Autopiloted() || cc.UnderService() || craft == target {
			continue
		}

		tr, ok := phys.Transform(craft)
		if !ok {
			continue
		}
		vel, _ := phys.Velocity(craft)

		s.steer(craft, targetTr.Translation.Sub(tr.Translation), vmath.RightOf(tr.Rotation), vel, dt)
	}
}

// steer evaluates the four independent steering rules for one craft
func (s *AutopilotSystem) steer(craft core.Entity, toTarget, right, vel mgl64.Vec3, dt float64) {
	t := s.world.Resource.Tuning
	queue := s.world.Resource.Control.Queue

	toTargetXZ := vmath.RejectY(toTarget)

	// Heading: yaw towards the side the target lies on
	dot := vmath.NormalizeSafe(toTargetXZ).Dot(right)
	if math.Abs(dot) > t.AutopilotYawDeadband {
		queue.Push(event.ControlCommand{Craft: craft, Axis: event.AxisYaw, Magnitude: dot * dt * t.AutopilotYawGain})
	}

	// Altitude: correct when slow or climbing away from the target height
	dy, vy := toTarget[1], vel[1]
	slowOrWrongWay := math.Abs(vy) < t.AutopilotVerticalSpeedMin || vmath.Signum(vy) != vmath.Signum(dy)
	if slowOrWrongWay && math.Abs(dy) > t.AutopilotVerticalDeadband {
		queue.Push(event.ControlCommand{Craft: craft, Axis: event.AxisVertical, Magnitude: dy * dt})
	}

	// Speed limit
	if vel.Dot(vel) > t.AutopilotBrakeSpeedSq {
		queue.Push(event.ControlCommand{Craft: craft, Axis: event.AxisBrake, Magnitude: t.AutopilotBrakeMagnitude})
	}

	// Cruise: push forward while far and slow horizontally
	velXZ := vmath.RejectY(vel)
	if toTargetXZ.Dot(toTargetXZ) > t.AutopilotCruiseDistanceSq && velXZ.Dot(velXZ) < t.AutopilotCruiseSpeedSq {
		queue.Push(event.ControlCommand{Craft: craft, Axis: event.AxisForward, Magnitude: t.AutopilotForwardGain * dt})
	}
}
