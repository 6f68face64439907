package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/lixenwraith/enemy-drift/config"
	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/engine"
	"github.com/lixenwraith/enemy-drift/sprite"
	"github.com/lixenwraith/enemy-drift/vmath"
)

const defaultConfigPath = "enemy-drift.toml"

func main() {
	// Panic Recovery: restore the display even if setup crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// options holds command-line overrides; zero values mean "not set"
type options struct {
	configPath string
	backend    string
	seed       uint64
	debug      bool
	ticks      int
	assets     string
	profile    string
	set        map[string]bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("enemy-drift", flag.ContinueOnError)
	o := &options{set: make(map[string]bool)}

	fs.StringVar(&o.configPath, "config", "", "Config file (default $ENEMY_DRIFT_CONFIG or "+defaultConfigPath+")")
	fs.StringVar(&o.backend, "backend", "", "Display backend: terminal, window, headless")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	fs.BoolVar(&o.debug, "debug", false, "Draw entity bounding boxes")
	fs.IntVar(&o.ticks, "ticks", 0, "Tick budget for the headless backend")
	fs.StringVar(&o.assets, "assets", "", "Sprite sheet directory")
	fs.StringVar(&o.profile, "profile", "", "Write a profile: cpu, mem")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if o.configPath == "" {
		o.configPath = defaultConfigPath
		if p := os.Getenv("ENEMY_DRIFT_CONFIG"); p != "" {
			o.configPath = p
		}
	}
	return o, nil
}

// apply overrides config values with explicitly set flags
func (o *options) apply(cfg *config.Config) error {
	if o.set["backend"] {
		cfg.Loop.Backend = o.backend
	}
	if o.set["seed"] {
		cfg.World.Seed = o.seed
	}
	if o.set["debug"] {
		cfg.World.DebugOutline = o.debug
	}
	if o.set["ticks"] {
		cfg.Loop.HeadlessTicks = o.ticks
	}
	if o.set["assets"] {
		cfg.Assets.Dir = o.assets
	}
	return cfg.Validate()
}

func run(args []string, out io.Writer) error {
	// 1. Flags and config
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := opts.apply(cfg); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}

	// 2. Logger
	log, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
		if logFile != nil {
			logFile.Close()
		}
	}()

	// 3. Sprites
	catalog, err := loadCatalog(cfg.Assets.Catalog)
	if err != nil {
		return err
	}
	library, results, err := sprite.LoadLibrary(catalog, cfg.Assets.Dir)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	for _, r := range results {
		log.Info("sprite sheet",
			zap.Stringer("kind", r.Kind),
			zap.Stringer("source", r.Source),
			zap.String("path", r.Path),
		)
	}

	// 4. World
	seed := cfg.World.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	canvas := canvasRect(cfg.Canvas)
	world, err := engine.NewWorld(canvas, catalog, library, cfg.World.Counts.ByKind(), vmath.NewFastRand(seed))
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	log.Info("world ready",
		zap.Uint64("seed", seed),
		zap.Int("entities", world.Len()),
		zap.Float64("canvas_width", canvas.Width),
		zap.Float64("canvas_height", canvas.Height),
		zap.String("backend", cfg.Loop.Backend),
	)

	// 5. Display
	backend, ok := backends.Get(cfg.Loop.Backend)
	if !ok {
		return fmt.Errorf("%w: %q (available %v)", config.ErrUnknownBackend, cfg.Loop.Backend, backends.Names())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return backend(ctx, &app{cfg: cfg, world: world, log: log, out: out})
}

func canvasRect(c config.CanvasConfig) core.Rect {
	return core.NewRect(0, 0, float64(c.Width), float64(c.Height))
}

func loadCatalog(path string) (*sprite.Catalog, error) {
	if path == "" {
		c, err := sprite.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("parse built-in catalog: %w", err)
		}
		return c, nil
	}
	return sprite.LoadCatalog(path)
}
