package engine

import (
	"github.com/ingyamilmolinar/processp/core/beat"
	"github.com/ingyamilmolinar/processp/core/model"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

// Trigger plays the sample identified by id at absolute audio time when,
// starting offset seconds into it and lasting at most duration seconds.
type Trigger interface {
	Trigger(id string, when, duration, offset, gain float64)
}

// Engine owns the pattern, the transport state and the clock. It is not safe
// for concurrent use; every method runs on the event loop.
type Engine struct {
	grid      *model.Grid
	transport model.Transport
	sched     *beat.Scheduler
	out       Trigger
	logger    *game_log.Logger
}

// New creates a stopped engine at the default tempo. now is the audio clock
// in seconds and out receives every voice trigger.
func New(out Trigger, now func() float64, logger *game_log.Logger) *Engine {
	e := &Engine{
		grid:      model.NewGrid(logger),
		transport: model.NewTransport(),
		out:       out,
		logger:    logger,
	}
	e.sched = beat.NewScheduler(now, e, logger)
	e.sched.SetBPM(e.transport.BPM)
	return e
}

// OnStep is the sequencer callback. CurrentStep is written for display only.
func (e *Engine) OnStep(when float64, step int) {
	e.transport.CurrentStep = step
	col := e.grid.Column(step)
	dur := 60 / float64(e.transport.BPM) / 2
	for t, v := range col {
		if v <= 0 {
			continue
		}
		if e.out != nil {
			e.out.Trigger(model.TrackIDs[t], when, dur, 0, v)
		}
	}
}

// Tick advances the clock. Call it once per loop iteration.
func (e *Engine) Tick() { e.sched.Tick() }

func (e *Engine) Play() {
	e.sched.Start()
	e.transport.Playing = true
	e.logger.Infof("[ENGINE] Play bpm=%d from step %d", e.transport.BPM, e.sched.Position())
}

func (e *Engine) Stop() {
	e.sched.Stop()
	e.transport.Playing = false
	e.logger.Infof("[ENGINE] Stop")
}

// TogglePlay flips between playing and stopped and reports the new state.
func (e *Engine) TogglePlay() bool {
	if e.transport.Playing {
		e.Stop()
	} else {
		e.Play()
	}
	return e.transport.Playing
}

// SetBPM clamps b and applies it to the clock. It returns the applied tempo.
func (e *Engine) SetBPM(b int) int {
	applied := e.sched.SetBPM(b)
	if applied != e.transport.BPM {
		e.logger.Debugf("[ENGINE] BPM %d -> %d", e.transport.BPM, applied)
	}
	e.transport.BPM = applied
	return applied
}

func (e *Engine) BPM() int { return e.transport.BPM }

// ToggleCell flips a grid cell. See model.Grid.Toggle.
func (e *Engine) ToggleCell(step, track int, v float64) float64 {
	nv := e.grid.Toggle(step, track, v)
	e.logger.Debugf("[ENGINE] %d active cells", e.grid.Active())
	return nv
}

func (e *Engine) Grid() *model.Grid { return e.grid }

// Transport returns a snapshot of the transport state.
func (e *Engine) Transport() model.Transport { return e.transport }

// UpdateScale is bound to the scale control. It has no behaviour yet.
func (e *Engine) UpdateScale() {
	e.logger.Debugf("[ENGINE] UpdateScale requested")
}
