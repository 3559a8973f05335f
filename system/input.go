package system

import (
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/input"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/vmath"
)

// InputSystem turns buffered key actions into control commands for the piloted craft
type InputSystem struct {
	world *engine.World

	enabled bool
}

// NewInputSystem creates a new input system
func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *InputSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *InputSystem) Name() string {
	return "input"
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// EventTypes returns the event types InputSystem handles
func (s *InputSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemEnable,
	}
}

// HandleEvent processes enable toggles
func (s *InputSystem) HandleEvent(ev event.GameEvent) {
	applyEnable(ev, s.Name(), &s.enabled)
}

// Update drains the action buffer
// Without a piloted craft actions are discarded
func (s *InputSystem) Update() {
	src := s.world.Resource.Input.Source
	if src == nil {
		return
	}
	actions := src.Drain()
	if !s.enabled || len(actions) == 0 {
		return
	}

	pilot := s.world.Resource.Pilot.Entity
	if pilot == 0 {
		return
	}

	res := s.world.Resource
	for _, a := range actions {
		switch a {
		case input.ActionAutopilotToggle:
			res.Event.Queue.Emit(event.EventAutopilotToggle, &event.AutopilotTogglePayload{Craft: pilot}, res.Time.Tick)

		case input.ActionTargetPick:
			s.emitNosePick()

		default:
			b := input.Bind(a)
			if !b.Control {
				continue
			}
			res.Control.Queue.Push(event.ControlCommand{
				Craft:     pilot,
				Axis:      b.Axis,
				Magnitude: b.Magnitude,
			})
		}
	}
}

// emitNosePick requests a pick along the craft's forward axis
func (s *InputSystem) emitNosePick() {
	res := s.world.Resource
	if res.Physics.Service == nil {
		return
	}
	tr, ok := res.Physics.Service.Transform(res.Pilot.Entity)
	if !ok {
		return
	}
	res.Event.Queue.Emit(event.EventTargetPickRequest, &event.TargetPickPayload{
		Origin:    tr.Translation,
		Direction: vmath.ForwardOf(tr.Rotation),
		MaxDist:   parameter.InputPickRange,
		Exclude:   res.Pilot.Entity,
	}, res.Time.Tick)
}
