package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/skyport/app"
	"github.com/lixenwraith/skyport/audio"
	"github.com/lixenwraith/skyport/config"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/hud"
	"github.com/lixenwraith/skyport/input"
	"github.com/lixenwraith/skyport/logging"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/scenario"
)

var (
	configFlag   = flag.String("config", "", "Path to YAML config file")
	scenarioFlag = flag.String("scenario", "", "Path to YAML scenario file, overrides config")
	headlessFlag = flag.Bool("headless", false, "Run without terminal, autopilot engaged")
	ticksFlag    = flag.Int("ticks", 3600, "Ticks to run in headless mode")
	audioFlag    = flag.Bool("audio", false, "Enable thruster tones, overrides config")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyport: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sc := scenario.Default()
	path := cfg.Scenario
	if *scenarioFlag != "" {
		path = *scenarioFlag
	}
	if path != "" {
		if sc, err = scenario.LoadFile(path); err != nil {
			return err
		}
	}

	a, err := app.New(cfg, sc, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headlessFlag {
		return runHeadless(ctx, a, logger)
	}
	return runInteractive(ctx, a, cfg, logger)
}

func runHeadless(ctx context.Context, a *app.App, logger *zap.Logger) error {
	a.ToggleAutopilot()
	stats := a.World.Resource.Status
	err := a.RunHeadless(ctx, *ticksFlag, 60, func(s engine.Indicators) {
		fields := []zap.Field{
			zap.Int64("tick", s.Tick),
			zap.Float64("fuel", s.Fuel),
			zap.Float64("distance", s.HorizontalDistance),
			zap.Float64("vertical", s.VerticalOffset),
			zap.Float64("speed", s.Speed),
			zap.Stringer("service", s.Service),
		}
		logger.Info("progress", append(fields, logging.StatusFields(stats.Snapshot())...)...)
	})
	s := a.World.Resource.Indicator.Snapshot()
	fmt.Printf("tick %d  fuel %.1f (%.0f%%)  %s  target distance %.1f\n",
		s.Tick, s.Fuel, s.FuelPercent*100, s.Service, s.HorizontalDistance)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runInteractive(ctx context.Context, a *app.App, cfg *config.Config, logger *zap.Logger) error {
	screen, err := hud.NewScreen()
	if err != nil {
		return err
	}
	core.OnCrash(screen.Fini)
	defer screen.Fini()

	if cfg.Audio.Enabled || *audioFlag {
		thruster := audio.NewThruster(cfg.Audio.Volume)
		if err := thruster.Start(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer thruster.Close()
			a.World.Resource.Audio.Sink = thruster
		}
	}

	actions := input.NewState()
	a.World.Resource.Input.Source = actions
	h := hud.New(screen, input.DefaultKeyTable(), actions, a.World.Resource.Indicator, a.World.Resource.Status)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer core.Recover()
		return a.Scheduler.Run(ctx)
	})
	g.Go(func() error {
		defer core.Recover()
		return h.RenderLoop(ctx, parameter.HUDRefreshInterval)
	})
	g.Go(func() error {
		defer core.Recover()
		<-ctx.Done()
		screen.Fini()
		return nil
	})

	// PollEvent blocks, run it outside the group and unblock it via Fini
	core.Go(func() {
		if h.PollInput() {
			logger.Info("pilot quit")
		}
		cancel()
	})

	return g.Wait()
}
