package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/processp/core/engine"
	"github.com/ingyamilmolinar/processp/internal/audio"
	"github.com/ingyamilmolinar/processp/internal/config"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
	"github.com/ingyamilmolinar/processp/internal/ui"
	"github.com/ingyamilmolinar/processp/internal/view"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	kitName    string
	sampleDir  string
	bpm        int
	headless   bool
	duration   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "processp",
	Short: "//process-p, a sixteen step drum computer",
	Long: `processp is an eight track, sixteen step drum sequencer.

Click a cell to switch it on; where you click inside the cell sets how loud
it plays. Drag up and down on the bpm readout to change the tempo.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringVar(&logLevel, "log-level", "", "debug, info, error or none")
	f.StringVar(&kitName, "kit", "", "drum kit: synth or samples")
	f.StringVar(&sampleDir, "samples", "", "directory holding the sample files")
	f.IntVar(&bpm, "bpm", 0, "initial tempo (40-240)")
	f.BoolVar(&headless, "headless", false, "play a demo pattern without opening a window")
	f.DurationVar(&duration, "duration", 0, "stop a headless run after this long (0 runs until interrupted)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file then applies any flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("kit") {
		cfg.Kit = kitName
	}
	if flags.Changed("samples") {
		cfg.SampleDir = sampleDir
	}
	if flags.Changed("bpm") {
		cfg.BPM = bpm
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadKit(cfg *config.Config, logger *game_log.Logger) (audio.Kit, error) {
	if cfg.Kit == config.KitSynth {
		logger.Infof("[MAIN] Using the synthesized kit")
		return audio.SynthKit(), nil
	}
	logger.Infof("[MAIN] Loading samples from %s", cfg.SampleDir)
	kit, err := audio.LoadKit(os.DirFS(cfg.SampleDir), cfg.SampleFiles())
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	return kit, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	kit, err := loadKit(cfg, logger)
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		return err
	}
	out, err := audio.NewEngine(kit, logger)
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		return err
	}
	defer out.Close()

	eng := engine.New(out, out.Now, logger)
	eng.SetBPM(cfg.BPM)

	if headless {
		return runHeadless(cmd.Context(), eng, logger, duration)
	}

	g, err := ui.New(eng, out, logger)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(int(view.Width*cfg.Window.Scale), int(view.Height*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("[MAIN] %v", err)
		return err
	}
	return nil
}
