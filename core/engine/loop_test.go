package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestLoopRunsPhasesInOrder(t *testing.T) {
	l := NewLoop(testLogger)
	var got []string
	rec := func(name string) func() error {
		return func() error { got = append(got, name); return nil }
	}
	l.Register(PhaseRender, "draw", rec("draw"))
	l.Register(PhaseClock, "clock", rec("clock"))
	l.Register(PhaseInput, "pointer", rec("pointer"))
	l.Register(PhaseInput, "keys", rec("keys"))

	if err := l.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := []string{"pointer", "keys", "clock", "draw"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("phase order mismatch (-want +got):\n%s", diff)
	}
	if l.Frame() != 1 {
		t.Fatalf("Frame()=%d want 1", l.Frame())
	}
}

func TestRunPhasesSubset(t *testing.T) {
	l := NewLoop(testLogger)
	var got []string
	l.Register(PhaseInput, "in", func() error { got = append(got, "in"); return nil })
	l.Register(PhaseClock, "clk", func() error { got = append(got, "clk"); return nil })
	l.Register(PhaseRender, "draw", func() error { got = append(got, "draw"); return nil })
	if err := l.RunPhases(PhaseInput, PhaseClock); err != nil {
		t.Fatalf("RunPhases: %v", err)
	}
	if err := l.RunPhases(PhaseRender, PhaseRender); err != nil {
		t.Fatalf("RunPhases: %v", err)
	}
	if diff := cmp.Diff([]string{"in", "clk", "draw"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopRejectsReentrantStep(t *testing.T) {
	l := NewLoop(testLogger)
	var inner error
	l.Register(PhaseClock, "nested", func() error {
		inner = l.Step()
		return nil
	})
	if err := l.Step(); err != nil {
		t.Fatalf("outer Step: %v", err)
	}
	if !errors.Is(inner, ErrReentrant) {
		t.Fatalf("expected ErrReentrant, got %v", inner)
	}
	if err := l.Step(); err != nil {
		t.Fatalf("loop should be usable after a rejected nested step: %v", err)
	}
}

func TestLoopStopsOnHandlerError(t *testing.T) {
	l := NewLoop(testLogger)
	boom := errors.New("boom")
	rendered := false
	l.Register(PhaseClock, "fail", func() error { return boom })
	l.Register(PhaseRender, "draw", func() error { rendered = true; return nil })
	err := l.Step()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped handler error, got %v", err)
	}
	if rendered {
		t.Fatalf("render ran after a failing clock phase")
	}
	if l.Frame() != 0 {
		t.Fatalf("failed step counted as a frame")
	}
}

func TestRunDrivesEngineUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &recordingTrigger{}
	start := time.Now()
	now := func() float64 { return time.Since(start).Seconds() }
	e := New(rec, now, testLogger)
	e.SetBPM(240)
	e.ToggleCell(0, 0, 1)
	e.Play()

	l := NewLoop(testLogger)
	l.Register(PhaseClock, "engine", func() error { e.Tick(); return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, time.Millisecond) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancellation")
	}
	if l.Frame() == 0 {
		t.Fatalf("loop never stepped")
	}
	if len(rec.calls) == 0 || rec.calls[0].ID != "kick" {
		t.Fatalf("expected the kick on step 0 to trigger, got %+v", rec.calls)
	}
}
