package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/enemy-drift/render"
)

// Loop drives one world tick per scheduled frame and re-arms itself
type Loop struct {
	world     *World
	surface   render.Surface
	scheduler FrameScheduler
	debug     bool

	log        *zap.Logger
	statsEvery uint64
	lastStats  time.Time
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithDebugOutline draws entity bounds before each sprite
func WithDebugOutline(enabled bool) LoopOption {
	return func(l *Loop) { l.debug = enabled }
}

// WithLogger logs frame rate statistics every n frames at debug level
func WithLogger(log *zap.Logger, every uint64) LoopOption {
	return func(l *Loop) {
		l.log = log
		l.statsEvery = every
	}
}

// NewLoop wires a world to a surface and scheduler
func NewLoop(world *World, surface render.Surface, scheduler FrameScheduler, opts ...LoopOption) *Loop {
	l := &Loop{
		world:     world,
		surface:   surface,
		scheduler: scheduler,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start registers the first frame
func (l *Loop) Start() {
	l.lastStats = time.Now()
	l.scheduler.RequestFrame(l.Animate)
}

// Animate runs one tick, presents the surface, and schedules the next tick
func (l *Loop) Animate() {
	l.world.Tick(l.surface, l.debug)

	if p, ok := l.surface.(render.Presenter); ok {
		p.Present()
	}

	l.reportStats()
	l.scheduler.RequestFrame(l.Animate)
}

func (l *Loop) reportStats() {
	if l.statsEvery == 0 {
		return
	}
	frame := l.world.Frame()
	if frame%l.statsEvery != 0 {
		return
	}
	now := time.Now()
	elapsed := now.Sub(l.lastStats)
	l.lastStats = now

	fps := 0.0
	if elapsed > 0 {
		fps = float64(l.statsEvery) / elapsed.Seconds()
	}
	l.log.Debug("frame stats",
		zap.Uint64("frame", frame),
		zap.Int("entities", l.world.Len()),
		zap.Float64("fps", fps),
	)
}
