package event

import (
	"sync"

	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/parameter"
)

// Axis is the actuator a control command drives
type Axis uint8

const (
	AxisForward Axis = iota
	AxisVertical
	AxisYaw
	AxisBrake
)

func (a Axis) String() string {
	switch a {
	case AxisForward:
		return "forward"
	case AxisVertical:
		return "vertical"
	case AxisYaw:
		return "yaw"
	case AxisBrake:
		return "brake"
	default:
		return "unknown"
	}
}

// ControlCommand is a single actuator request for one craft, valid for one tick
type ControlCommand struct {
	Craft     core.Entity
	Axis      Axis
	Magnitude float64
}

// ControlQueue carries commands from producers to the movement actuator within one tick
// Unlike EventQueue it is drained in the same tick it is filled
type ControlQueue struct {
	mu       sync.Mutex
	commands []ControlCommand
	thrust   int
	dropped  uint64
}

// NewControlQueue creates an empty queue with fixed capacity
func NewControlQueue() *ControlQueue {
	return &ControlQueue{
		commands: make([]ControlCommand, 0, parameter.ControlQueueSize),
	}
}

// Push appends a command, false when the per-tick thrust capacity is exhausted
// Brake commands bypass the cap; producers issue at most one per craft per tick
func (q *ControlQueue) Push(cmd ControlCommand) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if cmd.Axis != AxisBrake && q.thrust >= parameter.ControlQueueSize {
		q.dropped++
		return false
	}
	if cmd.Axis != AxisBrake {
		q.thrust++
	}
	q.commands = append(q.commands, cmd)
	return true
}

// Drain returns all queued commands in push order and empties the queue
func (q *ControlQueue) Drain() []ControlCommand {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.commands) == 0 {
		return nil
	}
	out := make([]ControlCommand, len(q.commands))
	copy(out, q.commands)
	q.commands = q.commands[:0]
	q.thrust = 0
	return out
}

// Len returns the number of queued commands
func (q *ControlQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}

// Dropped returns the number of commands rejected for capacity
func (q *ControlQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
