package parameter

// Manual control magnitudes
const (
	InputForward   = 1.0
	InputVertical  = 1.0
	InputYawCoarse = 10.0
	InputYawFine   = 2.0
	InputBrake     = 10.0

	// InputPickRange is the reach of the nose ray used for manual target pick
	InputPickRange = 2000.0
)
