package parameter

import "time"

// Docking
const (
	// DockScanInterval is the cadence of the dock proximity scan
	DockScanInterval = time.Second

	// DockRange is the exclusive distance within which a craft may dock
	DockRange = 50.0

	// DockSupplyRate is the fuel granted per tick while under service
	DockSupplyRate = 1.0

	// DockServiceBrake is the damping applied when service begins
	DockServiceBrake = 10.0
)

// Reference Layout
const (
	DockCount      = 16
	DockRingRadius = 600.0
	DockRingHeight = 100.0
	DockRadius     = 5.0
	CraftRadius    = 2.0
)
