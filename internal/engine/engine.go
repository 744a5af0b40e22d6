package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/san-kum/glitchrain/internal/glyph"
	"github.com/san-kum/glitchrain/internal/palette"
	"github.com/san-kum/glitchrain/internal/stream"
)

const (
	// TickInterval is the render cadence.
	TickInterval = 50 * time.Millisecond
	// SpawnChance is the per-tick probability of a new stream appearing.
	SpawnChance = 0.20
	// MaxStreams caps the population; the oldest stream is evicted first.
	MaxStreams = 20
)

// ErrNoSize is returned by a SizeFunc that cannot report terminal
// dimensions yet. The engine skips that tick's rendering and tries again on
// the next one.
var ErrNoSize = errors.New("terminal size unavailable")

// SizeFunc reports the current terminal dimensions. It is consulted every
// tick, never cached, so resizes take effect on the following frame.
type SizeFunc func() (width, height int, err error)

// FixedSize returns a SizeFunc for a synthetic terminal, used by the bench
// command and tests.
func FixedSize(width, height int) SizeFunc {
	return func() (int, int, error) { return width, height, nil }
}

// Options configures an Engine. Zero values fall back to the production
// cadence and a time-derived seed.
type Options struct {
	Size     SizeFunc
	Seed     int64
	Interval time.Duration
}

// Engine owns the stream population, the glyph grid, and the printer loop.
// Everything except the two control flags is touched only by the goroutine
// running Run (or, for headless use, the caller driving Tick).
type Engine struct {
	running atomic.Bool
	paused  atomic.Bool

	size     SizeFunc
	interval time.Duration
	rng      *rand.Rand

	streams []*stream.Stream
	grid    *Grid

	frames chan string
	done   chan struct{}
	err    error

	spawned int
	evicted int
}

func New(opts Options) *Engine {
	if opts.Size == nil {
		opts.Size = func() (int, int, error) { return 0, 0, ErrNoSize }
	}
	if opts.Interval <= 0 {
		opts.Interval = TickInterval
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	e := &Engine{
		size:     opts.Size,
		interval: opts.Interval,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		grid:     NewGrid(0, 0),
		frames:   make(chan string, 1),
		done:     make(chan struct{}),
	}
	e.running.Store(true)
	return e
}

// Frames delivers rendered frames to the display. A frame the display has
// not picked up yet is replaced by the next one.
func (e *Engine) Frames() <-chan string { return e.frames }

// Done closes once the printer loop has fully stopped.
func (e *Engine) Done() <-chan struct{} { return e.done }

// Err reports an abnormal printer termination. Only meaningful after Done
// has closed.
func (e *Engine) Err() error { return e.err }

// Stop asks the printer loop to exit. The loop observes the flag within one
// tick interval; wait on Done before restoring the terminal.
func (e *Engine) Stop() { e.running.Store(false) }

// Running reports whether the printer loop is still meant to run.
func (e *Engine) Running() bool { return e.running.Load() }

// TogglePause flips the pause flag and reports the new state. While paused
// the loop keeps ticking but mutates and draws nothing.
func (e *Engine) TogglePause() bool {
	paused := !e.paused.Load()
	e.paused.Store(paused)
	return paused
}

// Paused reports the current pause flag.
func (e *Engine) Paused() bool { return e.paused.Load() }

// Population returns the live stream count. Safe only from the goroutine
// driving the engine.
func (e *Engine) Population() int { return len(e.streams) }

// Spawned and Evicted report lifetime counters for the bench command.
func (e *Engine) Spawned() int { return e.spawned }
func (e *Engine) Evicted() int { return e.evicted }

// Run is the printer loop. It ticks at the fixed interval until Stop is
// observed, skipping render work while paused. A panic inside the loop is
// captured into Err so the driver can restore the terminal before
// reporting it.
func (e *Engine) Run() {
	defer close(e.done)
	defer func() {
		if r := recover(); r != nil {
			e.err = fmt.Errorf("printer loop failed: %v", r)
		}
	}()

	for e.running.Load() {
		if !e.paused.Load() {
			if e.advance() {
				e.publish(e.grid.Render())
			}
		}
		// the cap is enforced every tick, paused or not
		e.evict()
		time.Sleep(e.interval)
	}
}

// Tick advances the engine one synchronous step: spawn, update, draw,
// evict. Used headless by the bench command and by tests; Run performs the
// same work per unpaused tick.
func (e *Engine) Tick() {
	e.advance()
	e.evict()
}

// advance runs one tick's simulation and drawing. It reports false when the
// terminal size is unavailable, in which case the tick renders nothing.
func (e *Engine) advance() bool {
	w, h, err := e.size()
	if err != nil || w < 3 || h < 1 {
		return false
	}
	e.grid.Fit(w, h)

	if e.rng.Float64() < SpawnChance {
		e.streams = append(e.streams, stream.New(w, h, e.rng))
		e.spawned++
	}

	for _, s := range e.streams {
		s.Update(w, e.rng)
		e.grid.Place(s.X, s.Y, palette.Random(e.rng).Style, glyph.RandomRun(e.rng)...)
	}
	return true
}

func (e *Engine) evict() {
	if len(e.streams) > MaxStreams {
		e.streams = e.streams[1:]
		e.evicted++
	}
}

// publish hands a frame to the display without ever blocking the loop.
func (e *Engine) publish(frame string) {
	select {
	case e.frames <- frame:
	default:
		select {
		case <-e.frames:
		default:
		}
		select {
		case e.frames <- frame:
		default:
		}
	}
}
