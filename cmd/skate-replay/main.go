// Command skate-replay runs a scripted input sequence headlessly and reports the trick events
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-skate/config"
	"github.com/lixenwraith/vi-skate/engine"
	"github.com/lixenwraith/vi-skate/status"
	"github.com/lixenwraith/vi-skate/trick"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default: ./skate.toml if present)")
	scriptFlag = flag.String("script", "", "Path to replay script (required)")
	debugFlag  = flag.Bool("debug", false, "Include engine debug logs")
)

// replay steps the script to completion, writing one JSON line per event and a final summary
func replay(cfg *config.Config, s *Script, out io.Writer, level zerolog.Level) (map[string]any, error) {
	cmds, steps, err := s.schedule(cfg.Engine.FixedTimestep, max(cfg.Engine.CommandQueueSize, 1))
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(out).Level(level)
	reg := status.NewRegistry()
	world := engine.NewWorld(cfg.Engine, cfg.Locomotion, cfg.Trick, reg, logger)
	if _, err := world.SpawnBoard(s.Board, mgl64.Vec3{}); err != nil {
		return nil, err
	}

	stepSec := cfg.Engine.StepSeconds()
	world.Subscribe(func(e engine.BoardEvent) {
		ev := logger.Info().
			Str("board", e.Board).
			Int64("step", e.Step).
			Float64("t", float64(e.Step)*stepSec).
			Stringer("event", e.Event.Type)
		switch e.Event.Type {
		case trick.EventPop:
			ev = ev.Float64("pop_force", e.Event.PopForce)
		case trick.EventCatch, trick.EventBail, trick.EventGroundReset:
			ev = ev.Str("trick", e.Event.Result.Name()).Bool("landed", e.Event.Result.Landed)
		}
		ev.Msg("event")
	})

	next := 0
	for i := 0; i < steps; i++ {
		for next < len(cmds) && cmds[next].step == i {
			if !world.Send(s.Board, cmds[next].cmd) {
				return nil, fmt.Errorf("%w: step %d %s dropped", ErrBadEntry, i, cmds[next].cmd)
			}
			next++
		}
		world.Step()
	}

	summary := reg.Snapshot()
	logger.Info().Int("steps", steps).Fields(summary).Msg("summary")
	return summary, nil
}

func main() {
	flag.Parse()
	if *scriptFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: skate-replay -script run.toml [-config skate.toml] [-debug]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	s, err := LoadScript(*scriptFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load script: %v\n", err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *debugFlag {
		level = zerolog.DebugLevel
	}
	if _, err := replay(cfg, s, os.Stdout, level); err != nil {
		fmt.Fprintf(os.Stderr, "Replay failed: %v\n", err)
		os.Exit(1)
	}
}
