package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

// readFrames pulls n frames from m and returns the left and right channels.
func readFrames(m *Mixer, n int) ([]float64, []float64) {
	p := make([]byte, n*bytesPerFrame)
	m.Read(p)
	l := make([]float64, n)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		l[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerFrame:])))
		r[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerFrame+4:])))
	}
	return l, r
}

func constant(n int, v float32) Buffer {
	b := make(Buffer, n)
	for i := range b {
		b[i] = v
	}
	return b
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

var unity = dbToGain(outputDB)

func TestScheduleStartsAtFrame(t *testing.T) {
	m := &Mixer{}
	m.Schedule(constant(1000, 1), 100, 0, 1, 1)
	l, r := readFrames(m, 300)
	if l[99] != 0 {
		t.Fatalf("voice sounded early: frame 99 = %f", l[99])
	}
	if !near(l[100], unity) || !near(r[100], unity) {
		t.Fatalf("frame 100 = %f/%f want %f", l[100], r[100], unity)
	}
}

func TestOutputIsAttenuatedTenDecibels(t *testing.T) {
	if !near(unity, 0.316227766) {
		t.Fatalf("-10 dB gain = %f", unity)
	}
}

func TestGainScalesVoice(t *testing.T) {
	m := &Mixer{}
	m.Schedule(constant(100, 1), 0, 0, 1, 0.5)
	l, _ := readFrames(m, 10)
	if !near(l[0], unity*0.5) {
		t.Fatalf("gain 0.5 produced %f want %f", l[0], unity*0.5)
	}
}

func TestZeroGainIsNotScheduled(t *testing.T) {
	m := &Mixer{}
	m.Schedule(constant(100, 1), 0, 0, 1, 0)
	if m.Active() != 0 {
		t.Fatalf("silent voice was scheduled")
	}
}

func TestFadeOutAfterDuration(t *testing.T) {
	m := &Mixer{}
	m.Schedule(constant(SampleRate, 1), 0, 0, 0.1, 1)
	hold := int(0.1 * SampleRate)
	fade := int(fadeOut * SampleRate)
	l, _ := readFrames(m, hold+fade+100)
	if !near(l[hold-1], unity) {
		t.Fatalf("voice attenuated before its duration ended: %f", l[hold-1])
	}
	if !near(l[hold+fade/2], unity*0.5) {
		t.Fatalf("mid-fade level %f want %f", l[hold+fade/2], unity*0.5)
	}
	if l[hold+fade] != 0 {
		t.Fatalf("voice still sounding after fade: %f", l[hold+fade])
	}
	if m.Active() != 0 {
		t.Fatalf("finished voice not released")
	}
}

func TestVoiceEndsWithSample(t *testing.T) {
	m := &Mixer{}
	m.Schedule(constant(10, 1), 0, 0, 5, 1)
	l, _ := readFrames(m, 20)
	if l[9] == 0 || l[10] != 0 {
		t.Fatalf("expected the voice to stop at the end of the buffer, got %f %f", l[9], l[10])
	}
}

func TestPastTriggerStartsImmediately(t *testing.T) {
	m := &Mixer{}
	readFrames(m, 500)
	m.Schedule(constant(100, 1), 10, 0, 1, 1)
	l, _ := readFrames(m, 2)
	if !near(l[0], unity) {
		t.Fatalf("late voice did not start on the next frame: %f", l[0])
	}
}

func TestOffsetSkipsIntoSample(t *testing.T) {
	buf := make(Buffer, 1000)
	for i := range buf {
		buf[i] = float32(i) / 1000
	}
	m := &Mixer{}
	m.Schedule(buf, 0, 0.01, 1, 1)
	l, _ := readFrames(m, 1)
	want := float64(buf[441]) * unity
	if !near(l[0], want) {
		t.Fatalf("offset voice started at %f want %f", l[0], want)
	}
}

func TestOffsetPastEndIsIgnored(t *testing.T) {
	m := &Mixer{}
	m.Schedule(constant(10, 1), 0, 1, 1, 1)
	if m.Active() != 0 {
		t.Fatalf("voice with offset past the sample was scheduled")
	}
}

func TestRetriggersOverlap(t *testing.T) {
	m := &Mixer{}
	b := constant(100, 0.5)
	m.Schedule(b, 0, 0, 1, 1)
	m.Schedule(b, 0, 0, 1, 1)
	l, _ := readFrames(m, 1)
	if !near(l[0], unity) {
		t.Fatalf("two voices summed to %f want %f", l[0], unity)
	}
}

func TestOutputIsClipped(t *testing.T) {
	m := &Mixer{}
	b := constant(100, 1)
	for i := 0; i < 10; i++ {
		m.Schedule(b, 0, 0, 1, 1)
	}
	l, r := readFrames(m, 1)
	if l[0] != 1 || r[0] != 1 {
		t.Fatalf("expected clipping at 1, got %f/%f", l[0], r[0])
	}
}

func TestPositionCountsFrames(t *testing.T) {
	m := &Mixer{}
	readFrames(m, 1024)
	readFrames(m, 76)
	if m.Position() != 1100 {
		t.Fatalf("Position()=%d want 1100", m.Position())
	}
}

func TestNewMixerAddsReverbTail(t *testing.T) {
	m := NewMixer()
	m.Schedule(constant(100, 1), 0, 0, 1, 1)
	l, r := readFrames(m, SampleRate/4)
	var tail, diff float64
	for i := 2000; i < len(l); i++ {
		tail += math.Abs(l[i])
		diff += math.Abs(l[i] - r[i])
	}
	if tail == 0 {
		t.Fatalf("no reverb tail after the voice ended")
	}
	if diff == 0 {
		t.Fatalf("reverb tail is not stereo")
	}
}
