package audio

import (
	"math"
	"math/rand"
)

// Tom renders a pitched drum tone with a slight noise attack. Pitch is the
// starting frequency in Hz.
type Tom struct {
	Pitch float64
}

func (tm Tom) Render(sampleRate int) Buffer {
	n := int(0.4 * float64(sampleRate))
	buf := make(Buffer, n)
	rng := rand.New(rand.NewSource(int64(tm.Pitch)))
	sr := float64(sampleRate)
	var phase float64
	for i := range buf {
		t := float64(i) / sr
		freq := tm.Pitch * (1 - 0.3*float64(i)/float64(n))
		phase += 2 * math.Pi * freq / sr
		tone := math.Sin(phase) * math.Exp(-8*t)
		click := (rng.Float64()*2 - 1) * math.Exp(-200*t) * 0.3
		buf[i] = float32(0.7*tone + click)
	}
	return buf
}
