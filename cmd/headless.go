package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/ingyamilmolinar/processp/core/engine"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
	"golang.org/x/sync/errgroup"
)

// demoPattern is a plain backbeat: step, track and velocity per hit.
var demoPattern = []struct {
	step, track int
	v           float64
}{
	{0, 0, 1}, {4, 0, 1}, {8, 0, 1}, {10, 0, 0.6}, {12, 0, 1},
	{4, 1, 0.9}, {12, 1, 0.9},
	{12, 2, 0.5},
	{0, 3, 0.6}, {2, 3, 0.4}, {4, 3, 0.6}, {6, 3, 0.4},
	{8, 3, 0.6}, {10, 3, 0.4}, {12, 3, 0.6}, {14, 3, 0.4},
	{7, 4, 0.7},
	{15, 7, 0.8},
}

// loadDemo replaces the pattern with demoPattern.
func loadDemo(eng *engine.Engine) {
	eng.Grid().Clear()
	for _, c := range demoPattern {
		eng.ToggleCell(c.step, c.track, c.v)
	}
}

// runHeadless plays the demo pattern from a ticker-driven loop until d
// elapses or the process is interrupted.
func runHeadless(ctx context.Context, eng *engine.Engine, logger *game_log.Logger, d time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	loadDemo(eng)

	loop := engine.NewLoop(logger)
	loop.Register(engine.PhaseClock, "sequencer", func() error {
		eng.Tick()
		return nil
	})
	eng.Play()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx, engine.DefaultTickInterval)
	})
	g.Go(func() error {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				logger.Debugf("[HEADLESS] %d frames", loop.Frame())
			case <-gctx.Done():
				return nil
			}
		}
	})
	err := g.Wait()
	eng.Stop()
	logger.Infof("[HEADLESS] Done")
	return err
}
