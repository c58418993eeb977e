package audio

import (
	"math"
	"testing"
)

func newTestCompressor() *compressor {
	return newCompressor(-30, 12, 30, 0.02, 0.3)
}

func TestCompressorCurve(t *testing.T) {
	c := newTestCompressor()
	if got := c.curve(-60); got != 0 {
		t.Fatalf("below the knee gain change = %f want 0", got)
	}
	slope := 1/12.0 - 1
	if got := c.curve(0); math.Abs(got-slope*30) > 1e-9 {
		t.Fatalf("above the knee gain change = %f want %f", got, slope*30)
	}
	// the knee joins both straight segments
	if got := c.curve(-45); math.Abs(got) > 1e-9 {
		t.Fatalf("lower knee edge = %f want 0", got)
	}
	if got := c.curve(-15); math.Abs(got-slope*15) > 1e-9 {
		t.Fatalf("upper knee edge = %f want %f", got, slope*15)
	}
	prev := 0.0
	for level := -80.0; level <= 0; level++ {
		g := c.curve(level)
		if g > prev+1e-12 {
			t.Fatalf("gain change not monotonic at %f dB", level)
		}
		prev = g
	}
}

func TestCompressorLeavesQuietSignal(t *testing.T) {
	c := newTestCompressor()
	var out float64
	for i := 0; i < SampleRate; i++ {
		out = c.process(0.001)
	}
	if math.Abs(out-0.001) > 1e-6 {
		t.Fatalf("quiet signal changed: %f", out)
	}
}

func TestCompressorReducesLoudSignal(t *testing.T) {
	c := newTestCompressor()
	first := c.process(0.5)
	var out float64
	for i := 0; i < SampleRate; i++ {
		out = c.process(0.5)
	}
	if out >= 0.1 || out <= 0 {
		t.Fatalf("expected heavy gain reduction, got %f", out)
	}
	if first <= out {
		t.Fatalf("attack should be gradual: first=%f settled=%f", first, out)
	}
}

func TestFreeverbPassesDrySignal(t *testing.T) {
	f := newFreeverb(0.3, 3000, 0.15)
	l, r := f.process(1)
	if math.Abs(l-0.85) > 1e-9 || math.Abs(r-0.85) > 1e-9 {
		t.Fatalf("first sample = %f/%f want dry 0.85", l, r)
	}
}

func TestFreeverbTail(t *testing.T) {
	f := newFreeverb(0.3, 3000, 0.15)
	f.process(1)
	var energy, diff float64
	for i := 1; i < SampleRate/4; i++ {
		l, r := f.process(0)
		energy += l*l + r*r
		diff += math.Abs(l - r)
	}
	if energy == 0 {
		t.Fatalf("impulse produced no tail")
	}
	if diff == 0 {
		t.Fatalf("left and right tails are identical")
	}
}

func TestFreeverbDecays(t *testing.T) {
	f := newFreeverb(0.3, 3000, 0.15)
	f.process(1)
	var early, late float64
	for i := 1; i < SampleRate; i++ {
		l, _ := f.process(0)
		if i < SampleRate/4 {
			early += math.Abs(l)
		} else if i >= 3*SampleRate/4 {
			late += math.Abs(l)
		}
	}
	if late >= early {
		t.Fatalf("tail does not decay: early=%g late=%g", early, late)
	}
}
