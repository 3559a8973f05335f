package parameter

import "time"

// Simulation Loop Timing
const (
	// TickInterval is the fixed simulation step (60 Hz)
	TickInterval = time.Second / 60

	// HUDRefreshInterval is the terminal redraw cadence
	HUDRefreshInterval = 50 * time.Millisecond

	// NoticeTicks is how long a pilot notice stays on the HUD (3s)
	NoticeTicks = 180

	// InputPollInterval bounds how long the key poller waits between reads
	InputPollInterval = 10 * time.Millisecond
)

// Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	// Sized so one tick of per-craft protocol events at MaxCraft fits
	EventQueueSize = 4096

	// EventBufferMask is the bitmask for fast modulo operations (4096 - 1)
	EventBufferMask = 4095

	// ControlQueueSize caps thrust commands accepted per tick
	// Overflow drops the newest thrust command, brakes are always accepted
	ControlQueueSize = 64

	// MaxCraft caps craft per scenario
	MaxCraft = 512

	// MaxDocks caps docks per scenario, ring included
	MaxDocks = 1024
)
