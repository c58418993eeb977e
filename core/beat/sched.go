package beat

import (
	"math"

	"github.com/ingyamilmolinar/processp/core/model"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

const (
	// StepsPerBeat fixes the subdivision at sixteenth notes.
	StepsPerBeat = 4
	// Lookahead is how far ahead of the audio clock steps are scheduled, in
	// seconds. It must cover the gap between two loop iterations.
	Lookahead = 0.1
)

// Callback receives one call per clock tick while the scheduler runs.
// when is the absolute audio time the step should sound at.
type Callback interface {
	OnStep(when float64, step int)
}

// CallbackFunc adapts a plain function to Callback.
type CallbackFunc func(when float64, step int)

func (f CallbackFunc) OnStep(when float64, step int) { f(when, step) }

// Scheduler is the transport clock. It is driven by calling Tick from the
// event loop and never blocks.
type Scheduler struct {
	BeatLength int

	bpm     int
	running bool
	step    int     // next step to emit
	next    float64 // audio time of the next step
	now     func() float64
	cb      Callback
	logger  *game_log.Logger
}

// NewScheduler creates a stopped clock at the default tempo. now must return
// the audio clock in seconds.
func NewScheduler(now func() float64, cb Callback, logger *game_log.Logger) *Scheduler {
	return &Scheduler{
		BeatLength: model.Steps,
		bpm:        model.DefaultBPM,
		now:        now,
		cb:         cb,
		logger:     logger,
	}
}

// Interval is the duration of one step at the current tempo, in seconds.
func (s *Scheduler) Interval() float64 {
	return 60 / float64(s.bpm) / StepsPerBeat
}

// Start resumes emission from the current position. Steps already handed
// out inside the lookahead still play, so the first resumed step never lands
// before them. Calling it while running does nothing.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.next = math.Max(s.now(), s.next)
	s.logger.Debugf("[SCHED] Start at %.3fs from step %d", s.next, s.step)
}

// Stop halts emission. Position and tempo are kept.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.logger.Debugf("[SCHED] Stop before step %d", s.step)
}

// SetBPM clamps and applies a new tempo. The step already scheduled keeps its
// time; the one after it uses the new interval.
func (s *Scheduler) SetBPM(b int) int {
	s.bpm = model.ClampBPM(b)
	return s.bpm
}

func (s *Scheduler) BPM() int      { return s.bpm }
func (s *Scheduler) Running() bool { return s.running }

// Position is the next step the clock will emit.
func (s *Scheduler) Position() int { return s.step }

// Tick emits every step whose time falls before now+Lookahead. Steps that
// were missed because the loop stalled for more than one interval are
// skipped, not replayed late.
func (s *Scheduler) Tick() {
	if !s.running || s.cb == nil || s.BeatLength <= 0 {
		return
	}
	now := s.now()
	interval := s.Interval()
	if late := now - s.next; late > interval {
		missed := int(late / interval)
		s.step = (s.step + missed) % s.BeatLength
		s.next += float64(missed) * interval
		s.logger.Warnf("[SCHED] Skipped %d late steps", missed)
	}
	horizon := now + Lookahead
	for s.running && s.next <= horizon {
		when, step := s.next, s.step
		s.step = (s.step + 1) % s.BeatLength
		s.next += s.Interval()
		s.cb.OnStep(when, step)
	}
}
