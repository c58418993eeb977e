package audio

import (
	"encoding/binary"
	"math"
	"sync"
)

// voice is a playback cursor over a shared Buffer.
type voice struct {
	buf   Buffer
	start int64 // absolute frame of the first sample
	pos   int   // next index into buf
	hold  int   // samples played at full gain
	fade  int   // samples of linear fade after hold
	gain  float64
	n     int // samples played so far
}

// next returns the voice's next sample and whether it is finished.
func (v *voice) next() (float64, bool) {
	if v.pos >= len(v.buf) || v.n >= v.hold+v.fade {
		return 0, true
	}
	g := v.gain
	if v.n >= v.hold {
		g *= 1 - float64(v.n-v.hold)/float64(v.fade)
	}
	s := float64(v.buf[v.pos]) * g
	v.pos++
	v.n++
	return s, false
}

// Mixer sums scheduled voices into interleaved float32 stereo. It is read
// by oto's audio goroutine and scheduled from the event loop.
type Mixer struct {
	mu     sync.Mutex
	voices []*voice
	pos    int64 // frames rendered
	fx     effect
}

// NewMixer returns a mixer with the compressor and reverb chain.
func NewMixer() *Mixer {
	return &Mixer{fx: newChain()}
}

// Schedule plays buf from frame at. offset and duration are in seconds; the
// voice fades out over fadeOut after duration. Frames already rendered
// start immediately.
func (m *Mixer) Schedule(buf Buffer, at int64, offset, duration, gain float64) {
	if len(buf) == 0 || gain <= 0 {
		return
	}
	start := int(offset * SampleRate)
	if start < 0 {
		start = 0
	}
	if start >= len(buf) {
		return
	}
	hold := int(duration * SampleRate)
	if hold < 0 {
		hold = 0
	}
	v := &voice{
		buf:  buf,
		pos:  start,
		hold: hold,
		fade: int(fadeOut * SampleRate),
		gain: dbToGain(outputDB) * gain,
	}
	m.mu.Lock()
	if at < m.pos {
		at = m.pos
	}
	v.start = at
	m.voices = append(m.voices, v)
	m.mu.Unlock()
}

// Position is the number of frames rendered so far.
func (m *Mixer) Position() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// Active is the number of voices scheduled or sounding.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Read implements io.Reader for oto.Player.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < frames; i++ {
		var sum float64
		for idx := 0; idx < len(m.voices); idx++ {
			v := m.voices[idx]
			if m.pos < v.start {
				continue
			}
			s, done := v.next()
			sum += s
			if done {
				m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
				idx--
			}
		}
		l, r := sum, sum
		if m.fx != nil {
			l, r = m.fx.process(sum)
		}
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(clip(l)))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(clip(r)))
		m.pos++
	}
	return frames * bytesPerFrame, nil
}

func clip(x float64) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return float32(x)
}
