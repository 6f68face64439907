package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/enemy-drift/config"
	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/engine"
	"github.com/lixenwraith/enemy-drift/registry"
	"github.com/lixenwraith/enemy-drift/render"
	"github.com/lixenwraith/enemy-drift/render/window"
)

const windowTitle = "enemy-drift"

// app carries everything a backend needs to run the simulation
type app struct {
	cfg   *config.Config
	world *engine.World
	log   *zap.Logger
	out   io.Writer // Summary output for headless runs
}

// backendFunc runs the world on one display until ctx is cancelled or the display closes
type backendFunc func(ctx context.Context, a *app) error

var backends = registry.New[backendFunc]()

func init() {
	backends.Register(config.BackendTerminal, runTerminal)
	backends.Register(config.BackendWindow, runWindow)
	backends.Register(config.BackendHeadless, runHeadless)
}

func (a *app) loopOptions() []engine.LoopOption {
	return []engine.LoopOption{
		engine.WithDebugOutline(a.cfg.World.DebugOutline),
		engine.WithLogger(a.log, a.cfg.Loop.StatsEvery),
	}
}

// runTerminal renders into the terminal; Esc, q or Ctrl-C quits
func runTerminal(ctx context.Context, a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)

	screen.HideCursor()
	screen.Clear()

	canvas := a.world.Canvas()
	surface := render.NewTerminalSurface(screen, canvas.Width, canvas.Height)
	scheduler := engine.NewClockScheduler(a.cfg.Loop.FrameInterval)
	loop := engine.NewLoop(a.world, surface, scheduler, a.loopOptions()...)

	loop.Start()
	scheduler.Start()
	defer func() {
		scheduler.Stop()
		a.log.Info("terminal loop stopped", zap.Uint64("frames", a.world.Frame()))
	}()

	// Wake the poller when the host asks us to stop
	core.Go(func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			surface.Resize()
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

// runWindow opens a desktop window paced by the display refresh
func runWindow(ctx context.Context, a *app) error {
	canvas := a.world.Canvas()
	game := window.NewGame(ctx, int(canvas.Width), int(canvas.Height))
	loop := engine.NewLoop(a.world, game.Surface(), game, a.loopOptions()...)
	loop.Start()

	err := game.Run(windowTitle)
	a.log.Info("window loop stopped", zap.Uint64("frames", a.world.Frame()))
	if err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// runHeadless steps the loop a fixed number of ticks and prints final entity state
func runHeadless(ctx context.Context, a *app) error {
	surface := render.NewRecordingSurface()
	scheduler := engine.NewManualScheduler()
	loop := engine.NewLoop(a.world, surface, scheduler, a.loopOptions()...)
	loop.Start()

	ticks := 0
	for ticks < a.cfg.Loop.HeadlessTicks {
		if ctx.Err() != nil {
			break
		}
		if !scheduler.Step() {
			break
		}
		ticks++
	}

	a.log.Info("headless run complete",
		zap.Int("ticks", ticks),
		zap.Uint64("sprites_drawn", surface.SpriteCount()),
	)

	fmt.Fprintf(a.out, "frame %d, %d entities\n", a.world.Frame(), a.world.Len())
	for i, e := range a.world.Entities() {
		fmt.Fprintf(a.out, "%3d %-10s x=%9.2f y=%9.2f frame=%d\n", i, e.Kind, e.Body.X, e.Body.Y, e.Anim.Frame)
	}
	return ctx.Err()
}
