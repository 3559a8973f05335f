package parameter

// Autopilot steering thresholds
const (
	// AutopilotYawDeadband is the |dot(dir, right)| below which no yaw is issued
	AutopilotYawDeadband = 0.01

	// AutopilotYawGain scales the yaw correction
	AutopilotYawGain = 100.0

	// AutopilotVerticalSpeedMin is the climb rate under which vertical correction applies
	AutopilotVerticalSpeedMin = 5.0

	// AutopilotVerticalDeadband is the height error under which no vertical command is issued
	AutopilotVerticalDeadband = 5.0

	// AutopilotBrakeSpeedSq triggers a brake above this squared speed
	AutopilotBrakeSpeedSq = 1000.0

	// AutopilotBrakeMagnitude is the damping applied by the autopilot brake
	AutopilotBrakeMagnitude = 1.0

	// AutopilotCruiseDistanceSq is the squared horizontal distance beyond which forward thrust applies
	AutopilotCruiseDistanceSq = 2000.0

	// AutopilotCruiseSpeedSq caps horizontal squared speed for forward thrust
	AutopilotCruiseSpeedSq = 500.0

	// AutopilotForwardGain scales forward thrust per second
	AutopilotForwardGain = 10.0
)
