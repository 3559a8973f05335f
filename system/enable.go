package system

import "github.com/lixenwraith/skyport/event"

// applyEnable updates enabled when ev is a toggle addressed to name
func applyEnable(ev event.GameEvent, name string, enabled *bool) bool {
	if ev.Type != event.EventSystemEnable {
		return false
	}
	if payload, ok := ev.Payload.(*event.SystemEnablePayload); ok && payload.SystemName == name {
		*enabled = payload.Enabled
	}
	return true
}
