package audio

import (
	"math"
	"math/rand"
)

// Clap renders multiple short noise bursts for a hand clap.
type Clap struct{}

// clapBursts are the onsets of the individual claps in seconds.
var clapBursts = [...]float64{0, 0.011, 0.023}

func (Clap) Render(sampleRate int) Buffer {
	n := int(0.25 * float64(sampleRate))
	buf := make(Buffer, n)
	rng := rand.New(rand.NewSource(3))
	sr := float64(sampleRate)
	last := clapBursts[len(clapBursts)-1]
	for i := range buf {
		t := float64(i) / sr
		var env float64
		for _, on := range clapBursts {
			if t >= on && on < last {
				env = math.Max(env, math.Exp(-180*(t-on)))
			}
		}
		if t >= last {
			env = math.Max(env, math.Exp(-22*(t-last)))
		}
		buf[i] = float32((rng.Float64()*2 - 1) * env * 0.8)
	}
	return buf
}
