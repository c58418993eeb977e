package audio

import "math"

// effect turns one mono sample into a stereo pair.
type effect interface {
	process(x float64) (l, r float64)
}

// chain runs a compressor into a reverb.
type chain struct {
	comp *compressor
	verb *freeverb
}

func newChain() *chain {
	return &chain{
		comp: newCompressor(-30, 12, 30, 0.02, 0.3),
		verb: newFreeverb(0.3, 3000, 0.15),
	}
}

func (c *chain) process(x float64) (float64, float64) {
	return c.verb.process(c.comp.process(x))
}

// compressor is a feed-forward soft-knee compressor. Levels are in dB.
type compressor struct {
	threshold float64
	ratio     float64
	knee      float64
	attack    float64 // smoothing coefficients per sample
	release   float64
	reduction float64 // current gain change in dB, <= 0
}

func newCompressor(threshold, ratio, knee, attack, release float64) *compressor {
	return &compressor{
		threshold: threshold,
		ratio:     ratio,
		knee:      knee,
		attack:    timeCoeff(attack),
		release:   timeCoeff(release),
	}
}

func timeCoeff(seconds float64) float64 {
	return math.Exp(-1 / (seconds * SampleRate))
}

// curve is the static gain change in dB for an input level in dB.
func (c *compressor) curve(level float64) float64 {
	over := level - c.threshold
	slope := 1/c.ratio - 1
	switch {
	case 2*over < -c.knee:
		return 0
	case 2*math.Abs(over) <= c.knee:
		d := over + c.knee/2
		return slope * d * d / (2 * c.knee)
	default:
		return slope * over
	}
}

func (c *compressor) process(x float64) float64 {
	target := c.curve(gainToDB(math.Abs(x)))
	coeff := c.release
	if target < c.reduction {
		coeff = c.attack
	}
	c.reduction = coeff*c.reduction + (1-coeff)*target
	return x * dbToGain(c.reduction)
}

// Freeverb tunings in samples at 44.1 kHz.
var (
	combTuning    = [...]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	allpassTuning = [...]int{556, 441, 341, 225}
)

const (
	stereoSpread    = 23
	allpassFeedback = 0.5
	// combInput scales the input so eight parallel combs sum near unity.
	combInput = 1.0 / float64(len(combTuning))
)

type comb struct {
	buf      []float64
	idx      int
	store    float64
	feedback float64
	damp     float64
}

func (c *comb) process(x float64) float64 {
	out := c.buf[c.idx]
	c.store = out*(1-c.damp) + c.store*c.damp
	c.buf[c.idx] = x + c.store*c.feedback
	c.idx = (c.idx + 1) % len(c.buf)
	return out
}

type allpass struct {
	buf []float64
	idx int
}

func (a *allpass) process(x float64) float64 {
	bufout := a.buf[a.idx]
	out := bufout - x
	a.buf[a.idx] = x + bufout*allpassFeedback
	a.idx = (a.idx + 1) % len(a.buf)
	return out
}

// freeverb is a Schroeder/Moorer reverb with one-pole lowpass damping in
// each comb's feedback path.
type freeverb struct {
	combs   [2][len(combTuning)]comb
	allpass [2][len(allpassTuning)]allpass
	wet     float64
}

func newFreeverb(roomSize, dampening, wet float64) *freeverb {
	damp := math.Exp(-2 * math.Pi * dampening / SampleRate)
	f := &freeverb{wet: wet}
	for ch := 0; ch < 2; ch++ {
		spread := ch * stereoSpread
		for i, n := range combTuning {
			f.combs[ch][i] = comb{buf: make([]float64, n+spread), feedback: roomSize, damp: damp}
		}
		for i, n := range allpassTuning {
			f.allpass[ch][i] = allpass{buf: make([]float64, n+spread)}
		}
	}
	return f
}

func (f *freeverb) process(x float64) (float64, float64) {
	var out [2]float64
	in := x * combInput
	for ch := 0; ch < 2; ch++ {
		var sum float64
		for i := range f.combs[ch] {
			sum += f.combs[ch][i].process(in)
		}
		for i := range f.allpass[ch] {
			sum = f.allpass[ch][i].process(sum)
		}
		out[ch] = x*(1-f.wet) + sum*f.wet
	}
	return out[0], out[1]
}
