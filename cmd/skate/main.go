package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-skate/audio"
	"github.com/lixenwraith/vi-skate/camera"
	"github.com/lixenwraith/vi-skate/config"
	"github.com/lixenwraith/vi-skate/engine"
	"github.com/lixenwraith/vi-skate/engine/services"
	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/render"
	"github.com/lixenwraith/vi-skate/status"
)

const playerBoard = "player"

var (
	configFlag = flag.String("config", "", "Path to config file (default: ./skate.toml if present)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/skate.log or log.file")
)

// app owns everything the main goroutine touches; the world is only stepped from the frame loop
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	screen   tcell.Screen
	world    *engine.World
	board    engine.BoardData
	clock    *engine.PausableClock
	sched    *engine.Scheduler
	keys     *input.KeyTable
	binder   *input.Binder
	camera   *camera.Follow
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	hub      *services.Hub
	muted    bool
}

func newApp(cfg *config.Config, screen tcell.Screen, sound *audio.SoundManager, logger zerolog.Logger) (*app, error) {
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	world := engine.NewWorld(cfg.Engine, cfg.Locomotion, cfg.Trick, status.NewRegistry(), logger)
	board, err := world.SpawnBoard(playerBoard, mgl64.Vec3{})
	if err != nil {
		return nil, err
	}

	clock := engine.NewPausableClock(nil)
	a := &app{
		cfg:      cfg,
		log:      logger,
		screen:   screen,
		world:    world,
		board:    board,
		clock:    clock,
		sched:    engine.NewScheduler(world, clock, cfg.Engine.FixedTimestep, cfg.Engine.MaxStepsPerAdvance),
		keys:     keys,
		binder:   input.NewBinder(engine.NewMonotonicTimeProvider(), cfg.Input.ReleaseTimeout),
		camera:   camera.NewFollow(board.Body, cfg.Camera),
		renderer: render.NewTerminalRenderer(screen, cfg.View.CellsPerUnitX, cfg.View.CellsPerUnitZ),
		sound:    sound,
		hub:      services.NewHub(),
	}

	if err := a.hub.Register(services.NewStatusService(logger)); err != nil {
		return nil, err
	}
	if sound != nil {
		if err := a.hub.Register(services.NewAudioService(sound, logger)); err != nil {
			return nil, err
		}
	}
	if err := a.hub.InitAll(world); err != nil {
		return nil, err
	}
	return a, nil
}

// handleEvent processes one terminal event, returning false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()

	case *tcell.EventKey:
		action := a.keys.Lookup(ev)
		switch action {
		case input.ActionNone:
		case input.ActionQuit:
			return false
		case input.ActionPause:
			paused := a.clock.Toggle()
			// Keys held across a pause would otherwise release on the first resumed frame
			a.send(a.binder.ReleaseAll())
			a.log.Debug().Bool("paused", paused).Msg("pause toggled")
		case input.ActionToggleMute:
			if a.sound != nil {
				a.muted = a.sound.ToggleMute()
			}
		default:
			if a.clock.IsPaused() {
				return true
			}
			a.send(a.binder.Key(action))
		}
	}
	return true
}

// frame polls key releases, advances the simulation and draws
func (a *app) frame(dt time.Duration) {
	a.send(a.binder.Poll())

	if a.sched.Advance() > 0 {
		a.camera.Update(dt.Seconds())
	}

	camPos := a.camera.Position()
	a.renderer.RenderFrame(render.Frame{
		Focus:  a.board.Body.Position(),
		Camera: &camPos,
		Boards: a.world.Boards(),
		Paused: a.clock.IsPaused(),
		Muted:  a.muted,
	})
}

func (a *app) send(cmds []input.Command) {
	for _, cmd := range cmds {
		a.world.Send(playerBoard, cmd)
	}
}

// run drives the frame loop until quit or ctx is done
func (a *app) run(ctx context.Context, events <-chan tcell.Event) {
	interval := a.cfg.Engine.FrameUpdateInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.sched.Resync()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame(interval)
		}
	}
}

func main() {
	var screen tcell.Screen

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SKATE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := setupLogging(*debugFlag || cfg.Log.File != "", cfg.Log.File, cfg.LogLevel())
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().Str("config", cfg.Source).Msg("starting")

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sound := audio.NewSoundManager(cfg.AudioConfig())
	a, err := newApp(cfg, screen, sound, logger)
	if err == nil {
		err = a.hub.StartAll()
	}
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.hub.StopAll(); err != nil {
			logger.Error().Err(err).Msg("service shutdown")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 256)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.run(ctx, events)
	logger.Info().
		Int64("steps", a.sched.Steps()).
		Int64("dropped", a.sched.Dropped()).
		Int64("sounds", sound.Played()).
		Msg("shutdown")
}
