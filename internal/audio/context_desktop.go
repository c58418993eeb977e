//go:build !js

package audio

import (
	"github.com/ebitengine/oto/v3"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

func newContext(opts *oto.NewContextOptions, logger *game_log.Logger) (*oto.Context, error) {
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready
	logger.Debugf("[AUDIO] Output device ready")
	return ctx, nil
}
