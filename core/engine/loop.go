package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

// Phase orders the work done in one loop iteration.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseClock
	PhaseRender
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseClock:
		return "clock"
	case PhaseRender:
		return "render"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrReentrant is returned when a phase tries to run the loop again.
var ErrReentrant = errors.New("engine: loop step is already running")

// DefaultTickInterval is the period Run uses when none is given.
const DefaultTickInterval = 16 * time.Millisecond

type handler struct {
	name string
	fn   func() error
}

// Loop runs registered handlers in phase order on a single goroutine.
// Handlers must not block.
type Loop struct {
	phases  [numPhases][]handler
	running bool
	frame   atomic.Uint64
	logger  *game_log.Logger
}

func NewLoop(logger *game_log.Logger) *Loop {
	return &Loop{logger: logger}
}

// Register appends fn to phase p. Handlers within a phase run in
// registration order.
func (l *Loop) Register(p Phase, name string, fn func() error) {
	if p < 0 || p >= numPhases {
		panic(fmt.Sprintf("engine: invalid phase %d", int(p)))
	}
	l.phases[p] = append(l.phases[p], handler{name: name, fn: fn})
	l.logger.Debugf("[LOOP] Registered %s handler %q", p, name)
}

// Step runs every phase once.
func (l *Loop) Step() error {
	if err := l.RunPhases(PhaseInput, PhaseRender); err != nil {
		return err
	}
	l.frame.Add(1)
	return nil
}

// RunPhases runs the phases from..to inclusive. The ebiten front end uses it
// to split an iteration across Update and Draw.
func (l *Loop) RunPhases(from, to Phase) error {
	if l.running {
		return ErrReentrant
	}
	l.running = true
	defer func() { l.running = false }()
	for p := from; p <= to && p < numPhases; p++ {
		for _, h := range l.phases[p] {
			if err := h.fn(); err != nil {
				return fmt.Errorf("%s handler %q: %w", p, h.name, err)
			}
		}
	}
	return nil
}

// Frame is the number of completed Step calls. It may be read from any
// goroutine.
func (l *Loop) Frame() uint64 { return l.frame.Load() }

// Run calls Step every interval until ctx is done or a handler fails.
func (l *Loop) Run(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		every = DefaultTickInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	l.logger.Infof("[LOOP] Running every %s", every)
	for {
		select {
		case <-ticker.C:
			if err := l.Step(); err != nil {
				l.logger.Errorf("[LOOP] %v", err)
				return err
			}
		case <-ctx.Done():
			l.logger.Infof("[LOOP] Stopped after %d frames", l.Frame())
			return nil
		}
	}
}
