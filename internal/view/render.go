package view

import (
	"strconv"

	"github.com/ingyamilmolinar/processp/core/model"
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

// Frame is everything one drawn frame depends on.
type Frame struct {
	Grid         *model.Grid
	Transport    model.Transport
	EditingTempo bool
}

// Renderer draws frames. It keeps no state between calls.
type Renderer struct {
	Labels [model.Tracks]string
	logger *game_log.Logger
}

func NewRenderer(logger *game_log.Logger) *Renderer {
	return &Renderer{Labels: model.TrackIDs, logger: logger}
}

// Draw paints f onto c, back to front.
func (r *Renderer) Draw(c Canvas, f Frame) {
	c.Clear(ColBackground)
	r.drawPlayhead(c, f.Transport)
	r.drawCells(c, f.Grid)
	r.drawLabels(c)
	r.drawPlayButton(c, f.Transport.Playing)
	r.drawNumber(c, 2, "bpm", f.Transport.BPM, f.EditingTempo)
	r.drawInfo(c)
}

func (r *Renderer) drawPlayhead(c Canvas, t model.Transport) {
	if !t.Playing {
		return
	}
	c.FillRect(float64(t.CurrentStep*CellSize), 0, CellSize, gridH, ColControl)
}

// drawCells fills each on cell from the bottom in proportion to its
// velocity.
func (r *Renderer) drawCells(c Canvas, g *model.Grid) {
	for s := 0; s < model.Steps; s++ {
		for t := 0; t < model.Tracks; t++ {
			x, y := float64(s*CellSize), float64(t*CellSize)
			c.StrokeRect(x, y, CellSize, CellSize, ColGrid)
			if g == nil {
				continue
			}
			if v := g.Velocity(s, t); v > 0 {
				h := v * CellSize
				c.FillRect(x, y+CellSize-h, CellSize, h, ColHighlight)
			}
		}
	}
}

func (r *Renderer) drawLabels(c Canvas) {
	for i, l := range r.Labels {
		c.Text(l, Margin, float64(CellSize*(i+1)-Margin), sizeLabel, AlignLeft, ColGrid)
	}
}

func (r *Renderer) drawPlayButton(c Canvas, playing bool) {
	const x, y = playX, ctrlY
	c.StrokeRect(x, y, 2*CellSize, ctrlH, ColGrid)
	if playing {
		c.FillRect(x+Margin, y+Margin, 2*CellSize-2*Margin, ctrlH-2*Margin, ColGrid)
		return
	}
	c.FillTriangle(
		x+Margin, y+Margin,
		x+2*CellSize-Margin, y+ctrlH/2,
		x+Margin, y+ctrlH-Margin,
		ColGrid)
}

// drawNumber draws a labelled 2x2 cell readout at column col below the grid.
func (r *Renderer) drawNumber(c Canvas, col int, label string, value int, editing bool) {
	x, y := float64(col*CellSize), float64(ctrlY)
	c.StrokeRect(x, y, 2*CellSize, ctrlH, ColGrid)
	fg := ColGrid
	if editing {
		fg = ColHighlight
	}
	ascent, _ := c.Metrics(sizeLabel)
	c.Text(label+":", x+Margin, y+ascent+Margin, sizeLabel, AlignLeft, fg)
	c.Text(strconv.Itoa(value), x+2*CellSize-Margin, y+ctrlH-Margin, sizeValue, AlignRight, fg)
}

// drawInfo right-aligns the title and credit against the bottom of the
// control rows. The credit ends one title "p" short of the edge.
func (r *Renderer) drawInfo(c Canvas) {
	right := float64(Width - Margin)
	bottom := float64(ctrlY + ctrlH)
	offset := c.TextWidth("p", sizeTitle)

	_, d := c.Metrics(sizeTitle)
	c.Text(title, right, bottom-d, sizeTitle, AlignRight, ColGrid)
	_, d = c.Metrics(sizeLabel)
	c.Text(credit, right-offset, bottom-d, sizeLabel, AlignRight, ColGrid)
}
