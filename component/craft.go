package component

// ControlMode selects who produces control commands for a craft
type ControlMode uint8

const (
	ModeManual ControlMode = iota
	ModeAutopilot
)

func (m ControlMode) String() string {
	if m == ModeAutopilot {
		return "autopilot"
	}
	return "manual"
}

// ServiceState is the docking lifecycle of a craft
// Normal -> NeedsService -> UnderService -> Normal
type ServiceState uint8

const (
	ServiceNormal ServiceState = iota
	ServiceNeeded
	ServiceActive
)

func (s ServiceState) String() string {
	switch s {
	case ServiceNeeded:
		return "needs-service"
	case ServiceActive:
		return "under-service"
	default:
		return "normal"
	}
}

// CraftComponent marks a controllable flying entity and holds its behavioural state
// Transform and velocity live in the physics service
type CraftComponent struct {
	Mode    ControlMode
	Service ServiceState
}

// ToggleAutopilot flips between manual and autopilot, returning the new mode
func (c *CraftComponent) ToggleAutopilot() ControlMode {
	if c.Mode == ModeAutopilot {
		c.Mode = ModeManual
	} else {
		c.Mode = ModeAutopilot
	}
	return c.Mode
}

// RequestService moves Normal to NeedsService, false for any other state
func (c *CraftComponent) RequestService() bool {
	if c.Service != ServiceNormal {
		return false
	}
	c.Service = ServiceNeeded
	return true
}

// BeginService moves NeedsService to UnderService, false for any other state
func (c *CraftComponent) BeginService() bool {
	if c.Service != ServiceNeeded {
		return false
	}
	c.Service = ServiceActive
	return true
}

// EndService moves UnderService back to Normal, false for any other state
func (c *CraftComponent) EndService() bool {
	if c.Service != ServiceActive {
		return false
	}
	c.Service = ServiceNormal
	return true
}

// Autopiloted reports whether the autopilot drives this craft
func (c CraftComponent) Autopiloted() bool {
	return c.Mode == ModeAutopilot
}

// UnderService reports whether the craft is currently being refuelled at a dock
func (c CraftComponent) UnderService() bool {
	return c.Service == ServiceActive
}

// NeedsService reports whether the craft is waiting for a dock
func (c CraftComponent) NeedsService() bool {
	return c.Service == ServiceNeeded
}
