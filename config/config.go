package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. SKYPORT_LOG_LEVEL
const EnvPrefix = "SKYPORT"

// Config is the complete runtime configuration
type Config struct {
	TickRate time.Duration `mapstructure:"tickRate"`
	Scenario string        `mapstructure:"scenario"`

	// Disabled names systems switched off from the first tick
	Disabled []string `mapstructure:"disabled"`

	Log       LogConfig       `mapstructure:"log"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Fuel      FuelConfig      `mapstructure:"fuel"`
	Movement  MovementConfig  `mapstructure:"movement"`
	Autopilot AutopilotConfig `mapstructure:"autopilot"`
	Docking   DockingConfig   `mapstructure:"docking"`
}

// LogConfig selects the log sink; the terminal belongs to the HUD so logs go to a file
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// AudioConfig controls thruster tones
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type FuelConfig struct {
	Capacity     float64 `mapstructure:"capacity"`
	LowThreshold float64 `mapstructure:"lowThreshold"`
	CostLinear   float64 `mapstructure:"costLinear"`
	CostYaw      float64 `mapstructure:"costYaw"`
}

type MovementConfig struct {
	DampingBaseline float64 `mapstructure:"dampingBaseline"`
}

type AutopilotConfig struct {
	YawDeadband      float64 `mapstructure:"yawDeadband"`
	YawGain          float64 `mapstructure:"yawGain"`
	VerticalSpeedMin float64 `mapstructure:"verticalSpeedMin"`
	VerticalDeadband float64 `mapstructure:"verticalDeadband"`
	BrakeSpeedSq     float64 `mapstructure:"brakeSpeedSq"`
	BrakeMagnitude   float64 `mapstructure:"brakeMagnitude"`
	CruiseDistanceSq float64 `mapstructure:"cruiseDistanceSq"`
	CruiseSpeedSq    float64 `mapstructure:"cruiseSpeedSq"`
	ForwardGain      float64 `mapstructure:"forwardGain"`
}

type DockingConfig struct {
	ScanInterval time.Duration `mapstructure:"scanInterval"`
	Range        float64       `mapstructure:"range"`
	SupplyRate   float64       `mapstructure:"supplyRate"`
	ServiceBrake float64       `mapstructure:"serviceBrake"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tickRate", parameter.TickInterval)
	v.SetDefault("scenario", "")
	v.SetDefault("disabled", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/skyport.log")

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("fuel.capacity", parameter.FuelCapacity)
	v.SetDefault("fuel.lowThreshold", parameter.FuelLowThreshold)
	v.SetDefault("fuel.costLinear", parameter.FuelCostLinear)
	v.SetDefault("fuel.costYaw", parameter.FuelCostYaw)

	v.SetDefault("movement.dampingBaseline", parameter.LinearDampingBaseline)

	v.SetDefault("autopilot.yawDeadband", parameter.AutopilotYawDeadband)
	v.SetDefault("autopilot.yawGain", parameter.AutopilotYawGain)
	v.SetDefault("autopilot.verticalSpeedMin", parameter.AutopilotVerticalSpeedMin)
	v.SetDefault("autopilot.verticalDeadband", parameter.AutopilotVerticalDeadband)
	v.SetDefault("autopilot.brakeSpeedSq", parameter.AutopilotBrakeSpeedSq)
	v.SetDefault("autopilot.brakeMagnitude", parameter.AutopilotBrakeMagnitude)
	v.SetDefault("autopilot.cruiseDistanceSq", parameter.AutopilotCruiseDistanceSq)
	v.SetDefault("autopilot.cruiseSpeedSq", parameter.AutopilotCruiseSpeedSq)
	v.SetDefault("autopilot.forwardGain", parameter.AutopilotForwardGain)

	v.SetDefault("docking.scanInterval", parameter.DockScanInterval)
	v.SetDefault("docking.range", parameter.DockRange)
	v.SetDefault("docking.supplyRate", parameter.DockSupplyRate)
	v.SetDefault("docking.serviceBrake", parameter.DockServiceBrake)
}

// Load reads defaults, an optional YAML file and SKYPORT_* environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("tickRate must be positive, got %s", c.TickRate)
	case c.Fuel.Capacity <= 0:
		return fmt.Errorf("fuel.capacity must be positive, got %g", c.Fuel.Capacity)
	case c.Fuel.LowThreshold < 0 || c.Fuel.LowThreshold > 1:
		return fmt.Errorf("fuel.lowThreshold must be within [0,1], got %g", c.Fuel.LowThreshold)
	case c.Docking.ScanInterval <= 0:
		return fmt.Errorf("docking.scanInterval must be positive, got %s", c.Docking.ScanInterval)
	case c.Docking.Range <= 0:
		return fmt.Errorf("docking.range must be positive, got %g", c.Docking.Range)
	}
	return nil
}

// Tuning converts the simulation sections into engine tunables
func (c *Config) Tuning() *engine.Tuning {
	return &engine.Tuning{
		FuelCapacity:     c.Fuel.Capacity,
		FuelLowThreshold: c.Fuel.LowThreshold,
		FuelCostLinear:   c.Fuel.CostLinear,
		FuelCostYaw:      c.Fuel.CostYaw,

		LinearDampingBaseline: c.Movement.DampingBaseline,

		AutopilotYawDeadband:      c.Autopilot.YawDeadband,
		AutopilotYawGain:          c.Autopilot.YawGain,
		AutopilotVerticalSpeedMin: c.Autopilot.VerticalSpeedMin,
		AutopilotVerticalDeadband: c.Autopilot.VerticalDeadband,
		AutopilotBrakeSpeedSq:     c.Autopilot.BrakeSpeedSq,
		AutopilotBrakeMagnitude:   c.Autopilot.BrakeMagnitude,
		AutopilotCruiseDistanceSq: c.Autopilot.CruiseDistanceSq,
		AutopilotCruiseSpeedSq:    c.Autopilot.CruiseSpeedSq,
		AutopilotForwardGain:      c.Autopilot.ForwardGain,

		DockScanInterval: c.Docking.ScanInterval,
		DockRange:        c.Docking.Range,
		DockSupplyRate:   c.Docking.SupplyRate,
		DockServiceBrake: c.Docking.ServiceBrake,
	}
}
