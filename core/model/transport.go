package model

const (
	MinBPM     = 40
	MaxBPM     = 240
	DefaultBPM = 120
)

// Transport is the play/stop/tempo state shared by input, clock and
// renderer. CurrentStep is display-only and never drives audio timing.
type Transport struct {
	Playing     bool
	BPM         int
	CurrentStep int
}

func NewTransport() Transport {
	return Transport{BPM: DefaultBPM}
}

// ClampBPM limits b to [MinBPM, MaxBPM].
func ClampBPM(b int) int {
	if b < MinBPM {
		return MinBPM
	}
	if b > MaxBPM {
		return MaxBPM
	}
	return b
}
