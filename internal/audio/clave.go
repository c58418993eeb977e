package audio

import "math"

// Clave is a short high-pitched wooden click.
type Clave struct{}

func (Clave) Render(sampleRate int) Buffer {
	n := int(0.06 * float64(sampleRate))
	buf := make(Buffer, n)
	sr := float64(sampleRate)
	for i := range buf {
		t := float64(i) / sr
		buf[i] = float32(math.Sin(2*math.Pi*2500*t) * math.Exp(-70*t) * 0.8)
	}
	return buf
}
