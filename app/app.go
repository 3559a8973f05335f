package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/config"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/manifest"
	"github.com/lixenwraith/skyport/physics"
	"github.com/lixenwraith/skyport/scenario"
	"github.com/lixenwraith/skyport/telemetry"
)

// ErrNotToggleable rejects a disabled entry that names no switchable system
var ErrNotToggleable = errors.New("system cannot be disabled")

// App is an assembled simulation ready to tick
type App struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Space     *physics.Space
	Spawned   *scenario.Spawned
}

// New assembles the world, pipeline and scenario
func New(cfg *config.Config, sc *scenario.Scenario, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	world := engine.NewWorld()
	world.Resource.Tuning = cfg.Tuning()
	world.Resource.Log = logger

	counters, err := telemetry.New()
	if err != nil {
		return nil, fmt.Errorf("creating telemetry: %w", err)
	}
	world.Resource.Telemetry = counters

	sched := engine.NewScheduler(world, cfg.TickRate)
	manifest.RegisterSystems()
	if err := manifest.Assemble(world, sched); err != nil {
		return nil, fmt.Errorf("assembling pipeline: %w", err)
	}

	if err := disableSystems(world, cfg.Disabled); err != nil {
		return nil, err
	}

	space := physics.NewSpace()
	spawned, err := sc.Spawn(world, space)
	if err != nil {
		return nil, fmt.Errorf("spawning scenario: %w", err)
	}

	logger.Info("simulation assembled",
		zap.String("scenario", sc.Name),
		zap.Int("craft", len(spawned.Craft)),
		zap.Int("docks", len(spawned.Docks)),
		zap.Duration("tick", cfg.TickRate),
		zap.Strings("disabled", cfg.Disabled),
	)

	return &App{
		World:     world,
		Scheduler: sched,
		Space:     space,
		Spawned:   spawned,
	}, nil
}

// disableSystems queues a disable event for each named system, applied before the first update
// Only systems that listen for enable events can be named
func disableSystems(world *engine.World, names []string) error {
	toggleable := make(map[string]bool)
	for _, sys := range world.Systems() {
		h, ok := sys.(engine.EventHandler)
		if !ok {
			continue
		}
		if slices.Contains(h.EventTypes(), event.EventSystemEnable) {
			toggleable[sys.Name()] = true
		}
	}

	res := world.Resource
	for _, name := range names {
		if !toggleable[name] {
			return fmt.Errorf("%w: %q", ErrNotToggleable, name)
		}
		res.Event.Queue.Emit(event.EventSystemEnable, &event.SystemEnablePayload{SystemName: name, Enabled: false}, res.Time.Tick)
		res.Log.Info("system disabled by config", zap.String("system", name))
	}
	return nil
}

// ToggleAutopilot requests a mode flip of the piloted craft, applied next tick
func (a *App) ToggleAutopilot() {
	res := a.World.Resource
	res.Event.Queue.Emit(event.EventAutopilotToggle, &event.AutopilotTogglePayload{Craft: res.Pilot.Entity}, res.Time.Tick)
}

// RunHeadless ticks n times as fast as possible, reporting indicators every reportEvery ticks
func (a *App) RunHeadless(ctx context.Context, n, reportEvery int, report func(engine.Indicators)) error {
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Scheduler.Tick()
		if report != nil && reportEvery > 0 && i%reportEvery == 0 {
			report(a.World.Resource.Indicator.Snapshot())
		}
	}
	return nil
}
