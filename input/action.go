package input

import (
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
)

// Action is a discrete pilot request produced by the key source
type Action uint8

const (
	ActionNone Action = iota
	ActionForwardPlus
	ActionForwardMinus
	ActionVerticalPlus
	ActionVerticalMinus
	ActionYawMinus
	ActionYawPlus
	ActionYawFineMinus
	ActionYawFinePlus
	ActionBrake
	ActionAutopilotToggle
	ActionTargetPick
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:            "none",
	ActionForwardPlus:     "forward+",
	ActionForwardMinus:    "forward-",
	ActionVerticalPlus:    "vertical+",
	ActionVerticalMinus:   "vertical-",
	ActionYawMinus:        "yaw-",
	ActionYawPlus:         "yaw+",
	ActionYawFineMinus:    "yaw-fine-",
	ActionYawFinePlus:     "yaw-fine+",
	ActionBrake:           "brake",
	ActionAutopilotToggle: "autopilot",
	ActionTargetPick:      "pick",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Binding is the control command an action maps to
// Control is false for actions that are not actuator commands (toggle, pick, quit)
type Binding struct {
	Axis      event.Axis
	Magnitude float64
	Control   bool
}

// Bind returns the actuator binding of an action
func Bind(a Action) Binding {
	switch a {
	case ActionForwardPlus:
		return Binding{event.AxisForward, parameter.InputForward, true}
	case ActionForwardMinus:
		return Binding{event.AxisForward, -parameter.InputForward, true}
	case ActionVerticalPlus:
		return Binding{event.AxisVertical, parameter.InputVertical, true}
	case ActionVerticalMinus:
		return Binding{event.AxisVertical, -parameter.InputVertical, true}
	case ActionYawMinus:
		return Binding{event.AxisYaw, -parameter.InputYawCoarse, true}
	case ActionYawPlus:
		return Binding{event.AxisYaw, parameter.InputYawCoarse, true}
	case ActionYawFineMinus:
		return Binding{event.AxisYaw, -parameter.InputYawFine, true}
	case ActionYawFinePlus:
		return Binding{event.AxisYaw, parameter.InputYawFine, true}
	case ActionBrake:
		return Binding{event.AxisBrake, parameter.InputBrake, true}
	default:
		return Binding{}
	}
}
