package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput     = 10
	PriorityAutopilot = 20 // After input, both feed the control queue
	PriorityMovement  = 30 // Drains the control queue of this tick
	PriorityPhysics   = 40 // Integrates impulses applied by movement
	PriorityFuel      = 50 // Observes fuel after movement drained it
	PriorityDocking   = 60 // Scan, service, release in that order
	PriorityIndicator = 900 // After all simulation, presentation snapshot
)
