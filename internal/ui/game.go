package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/processp/core/engine"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
	"github.com/ingyamilmolinar/processp/internal/view"
)

// Resumer restarts audio output. Browsers keep audio suspended until the
// first user gesture.
type Resumer interface {
	Resume() error
}

// Game drives the engine from ebiten's update and draw callbacks.
type Game struct {
	eng      *engine.Engine
	loop     *engine.Loop
	handler  *view.Handler
	renderer *view.Renderer
	canvas   *canvas
	ptr      pointer
	audio    Resumer
	resumed  bool
	logger   *game_log.Logger
}

// New wires eng to pointer input and rendering. audio may be nil.
func New(eng *engine.Engine, audio Resumer, logger *game_log.Logger) (*Game, error) {
	cv, err := newCanvas()
	if err != nil {
		return nil, err
	}
	g := &Game{
		eng:      eng,
		loop:     engine.NewLoop(logger),
		handler:  view.NewHandler(eng, logger),
		renderer: view.NewRenderer(logger),
		canvas:   cv,
		audio:    audio,
		logger:   logger,
	}
	g.loop.Register(engine.PhaseInput, "pointer", g.handleInput)
	g.loop.Register(engine.PhaseClock, "sequencer", func() error {
		eng.Tick()
		return nil
	})
	g.loop.Register(engine.PhaseRender, "renderer", g.render)
	return g, nil
}

func (g *Game) handleInput() error {
	down, x, y := g.ptr.sample()
	if down && !g.resumed && g.audio != nil {
		if err := g.audio.Resume(); err != nil {
			g.logger.Warnf("[GAME] Audio resume failed: %v", err)
		} else {
			g.resumed = true
		}
	}
	g.handler.Poll(down, x, y)
	return nil
}

func (g *Game) render() error {
	g.renderer.Draw(g.canvas, view.Frame{
		Grid:         g.eng.Grid(),
		Transport:    g.eng.Transport(),
		EditingTempo: g.handler.Editing(),
	})
	return nil
}

// Update runs input then the clock.
func (g *Game) Update() error {
	return g.loop.RunPhases(engine.PhaseInput, engine.PhaseClock)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	if err := g.loop.RunPhases(engine.PhaseRender, engine.PhaseRender); err != nil {
		g.logger.Errorf("[GAME] Draw: %v", err)
	}
}

// Layout fixes the logical canvas size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return view.Width, view.Height
}
