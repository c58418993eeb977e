package audio

import (
	"math"
	"math/rand"
)

// Snare mixes a short body tone with white noise.
type Snare struct{}

func (Snare) Render(sampleRate int) Buffer {
	n := int(0.25 * float64(sampleRate))
	buf := make(Buffer, n)
	rng := rand.New(rand.NewSource(2))
	sr := float64(sampleRate)
	for i := range buf {
		t := float64(i) / sr
		noise := (rng.Float64()*2 - 1) * math.Exp(-18*t)
		body := math.Sin(2*math.Pi*185*t) * math.Exp(-30*t)
		buf[i] = float32(0.6*noise + 0.4*body)
	}
	return buf
}
