package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

// bufferSize is how much audio oto pulls from the mixer at a time.
const bufferSize = SampleRate / 100 * bytesPerFrame // 10ms

var (
	ctxOnce sync.Once
	ctx     *oto.Context
	ctxErr  error
)

// sharedContext opens the output device once per process; oto does not
// allow a second context.
func sharedContext(logger *game_log.Logger) (*oto.Context, error) {
	ctxOnce.Do(func() {
		ctx, ctxErr = newContext(&oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatFloat32LE,
		}, logger)
	})
	return ctx, ctxErr
}

type resumer interface {
	Resume() error
}

// tryResume resumes r and logs a failure instead of returning it.
func tryResume(r resumer, logger *game_log.Logger) bool {
	if err := r.Resume(); err != nil {
		logger.Debugf("[AUDIO] Resume deferred: %v", err)
		return false
	}
	return true
}

// Engine plays kit samples through the mixer on the default output device.
type Engine struct {
	mixer  *Mixer
	player *oto.Player
	kit    Kit
	logger *game_log.Logger
}

// NewEngine opens the output device and starts streaming silence. The
// returned error wraps ErrNoContext when no device is available.
func NewEngine(kit Kit, logger *game_log.Logger) (*Engine, error) {
	c, err := sharedContext(logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoContext, err)
	}
	m := NewMixer()
	p := c.NewPlayer(m)
	p.SetBufferSize(bufferSize)
	p.Play()
	logger.Infof("[AUDIO] Output %d Hz, %d channels, %d voices loaded", SampleRate, ChannelCount, len(kit))
	return &Engine{mixer: m, player: p, kit: kit, logger: logger}, nil
}

// Now is the audio clock in seconds: frames handed to the device so far.
func (e *Engine) Now() float64 {
	return float64(e.mixer.Position()) / SampleRate
}

// Trigger schedules sample id at audio time when. Unknown ids are ignored.
func (e *Engine) Trigger(id string, when, duration, offset, gain float64) {
	buf, ok := e.kit[id]
	if !ok {
		e.logger.Debugf("[AUDIO] No sample for %q", id)
		return
	}
	e.mixer.Schedule(buf, int64(when*SampleRate), offset, duration, gain)
}

// Resume restarts output after the platform suspended it.
func (e *Engine) Resume() error {
	c, err := sharedContext(e.logger)
	if err != nil {
		return err
	}
	return c.Resume()
}

// Close stops the player. Scheduled voices are dropped.
func (e *Engine) Close() error {
	if err := e.player.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	e.logger.Debugf("[AUDIO] Closed")
	return nil
}
