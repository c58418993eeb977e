package audio

import (
	"math"
	"math/rand"
)

// HiHat renders a short, bright noise burst.
// It aims to mimic a closed hi-hat.
type HiHat struct{}

func (HiHat) Render(sampleRate int) Buffer {
	n := int(0.08 * float64(sampleRate))
	buf := make(Buffer, n)
	rng := rand.New(rand.NewSource(4))
	sr := float64(sampleRate)
	var prev float64
	for i := range buf {
		t := float64(i) / sr
		x := rng.Float64()*2 - 1
		// first difference keeps the top of the spectrum
		hp := x - prev
		prev = x
		buf[i] = float32(0.4 * hp * math.Exp(-60*t))
	}
	return buf
}
