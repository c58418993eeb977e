package audio

import "math"

// Kick is a sine-based bass drum.
type Kick struct{}

// Render returns a decaying sine with a downward pitch bend.
func (Kick) Render(sampleRate int) Buffer {
	n := int(0.5 * float64(sampleRate))
	buf := make(Buffer, n)
	sr := float64(sampleRate)
	var phase float64
	for i := range buf {
		t := float64(i) / float64(n)
		freq := 150 - 100*t
		phase += 2 * math.Pi * freq / sr
		env := math.Exp(-5 * t)
		buf[i] = float32(math.Sin(phase) * env)
	}
	return buf
}
