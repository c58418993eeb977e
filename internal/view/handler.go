package view

import (
	"github.com/ingyamilmolinar/processp/core/model"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

// Controls is what pointer input can change.
type Controls interface {
	ToggleCell(step, track int, v float64) float64
	TogglePlay() bool
	SetBPM(b int) int
	UpdateScale()
}

type State int

const (
	Idle State = iota
	EditingTempo
)

func (s State) String() string {
	if s == EditingTempo {
		return "EditingTempo"
	}
	return "Idle"
}

// Handler turns pointer events in canvas coordinates into control changes.
type Handler struct {
	state  State
	down   bool
	ctl    Controls
	logger *game_log.Logger
}

func NewHandler(ctl Controls, logger *game_log.Logger) *Handler {
	return &Handler{ctl: ctl, logger: logger}
}

func (h *Handler) State() State { return h.state }

func (h *Handler) Editing() bool { return h.state == EditingTempo }

// Press starts tempo editing when it lands on the tempo readout.
func (h *Handler) Press(x, y float64) {
	if InTempo(x, y) {
		h.state = EditingTempo
		h.logger.Debugf("[INPUT] Tempo edit at y=%.0f", y)
		return
	}
	h.state = Idle
}

// Frame runs once per display frame with the current pointer position.
// While editing, the tempo follows the pointer's height.
func (h *Handler) Frame(_, y float64) {
	if h.state != EditingTempo {
		return
	}
	h.ctl.SetBPM(TempoFromY(y))
}

// Release dispatches a click on the region under the pointer, unless the
// press started a tempo edit. It always returns to Idle.
func (h *Handler) Release(x, y float64) {
	defer func() { h.state = Idle }()
	if h.state != Idle {
		return
	}
	switch {
	case InGrid(x, y):
		step, track, frac, _ := CellAt(x, y)
		v := h.ctl.ToggleCell(step, track, model.VelocityFromOffset(frac))
		h.logger.Debugf("[INPUT] Cell step=%d track=%d -> %.2f", step, track, v)
	case InPlay(x, y):
		playing := h.ctl.TogglePlay()
		h.logger.Debugf("[INPUT] Playing=%v", playing)
	case InScale(x, y):
		h.ctl.UpdateScale()
	default:
		h.logger.Debugf("[INPUT] Release at (%.0f,%.0f) ignored", x, y)
	}
}

// Poll feeds one sample of a polled pointer. Edges of down become Press and
// Release, then Frame runs with the sampled position.
func (h *Handler) Poll(down bool, x, y float64) {
	switch {
	case down && !h.down:
		h.Press(x, y)
	case !down && h.down:
		h.Release(x, y)
	}
	h.down = down
	h.Frame(x, y)
}
