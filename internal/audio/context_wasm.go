//go:build js && wasm

package audio

import (
	"github.com/ebitengine/oto/v3"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

// newContext returns before the context is ready. Browsers unlock audio
// on the first user gesture, so an early resume is allowed to fail.
func newContext(opts *oto.NewContextOptions, logger *game_log.Logger) (*oto.Context, error) {
	ctx, _, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	tryResume(ctx, logger)
	return ctx, nil
}
