// Package audio renders drum voices into a single oto stream. Voices are
// scheduled at absolute audio times measured in frames the mixer has
// produced, then summed through a compressor and a reverb.
package audio

import (
	"errors"
	"math"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = ChannelCount * 4 // float32 LE

	// fadeOut is the linear release applied once a voice's duration ends.
	fadeOut = 0.1

	// outputDB attenuates every voice before gain is applied.
	outputDB = -10.0
)

// ErrNoContext is returned when the audio output device cannot be opened.
var ErrNoContext = errors.New("audio: no output context")

// Buffer is mono PCM at SampleRate in the range [-1,1].
type Buffer []float32

// Kit maps a track identifier to its decoded sample.
type Kit map[string]Buffer

func dbToGain(db float64) float64 { return math.Pow(10, db/20) }

func gainToDB(g float64) float64 {
	if g < 1e-9 {
		return -180
	}
	return 20 * math.Log10(g)
}
