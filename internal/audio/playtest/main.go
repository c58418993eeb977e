// Command playtest plays every synthesized drum once, a quarter second
// apart, to check the output device by ear.
package main

import (
	"os"
	"sort"
	"time"

	"github.com/ingyamilmolinar/processp/internal/audio"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

func main() {
	logger := game_log.New(os.Stderr, game_log.LevelDebug)
	defer logger.Sync()

	kit := audio.SynthKit()
	eng, err := audio.NewEngine(kit, logger)
	if err != nil {
		logger.Errorf("[PLAYTEST] %v", err)
		os.Exit(1)
	}
	defer eng.Close()

	ids := make([]string, 0, len(kit))
	for id := range kit {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := eng.Now() + 0.1
	for i, id := range ids {
		when := start + float64(i)*0.25
		logger.Infof("[PLAYTEST] %s at %.2fs", id, when)
		eng.Trigger(id, when, 0.25, 0, 1)
	}
	time.Sleep(time.Duration(float64(len(ids))*0.25*float64(time.Second)) + time.Second)
}
