package view

import (
	"math"

	"github.com/ingyamilmolinar/processp/core/model"
)

const (
	CellSize = 50
	Margin   = 5
	Width    = 801
	Height   = 700

	gridW = model.Steps * CellSize  // 800
	gridH = model.Tracks * CellSize // 400
)

// Controls sit in the two cell rows below the grid.
const (
	playX  = 0
	tempoX = 2 * CellSize
	ctrlY  = gridH
	ctrlH  = 2 * CellSize
)

// InTempo reports whether a press at (x,y) starts tempo editing.
func InTempo(x, y float64) bool {
	return x > tempoX && x < tempoX+2*CellSize && y > ctrlY && y < ctrlY+ctrlH
}

// inCanvas is the area in which releases are dispatched at all.
func inCanvas(x, y float64) bool {
	return x > 0 && x < gridW && y > 0
}

func InGrid(x, y float64) bool {
	return inCanvas(x, y) && y < gridH
}

func InPlay(x, y float64) bool {
	return inCanvas(x, y) && y >= gridH && x < playX+2*CellSize && y < ctrlY+ctrlH
}

func InScale(x, y float64) bool {
	return inCanvas(x, y) && y >= gridH && x > 4*CellSize && x < 12*CellSize && y < ctrlY+ctrlH
}

// CellAt maps a grid position to its step, track and the fractional
// vertical offset inside the cell (0 at the top edge).
func CellAt(x, y float64) (step, track int, frac float64, ok bool) {
	if !InGrid(x, y) {
		return 0, 0, 0, false
	}
	fy := y / CellSize
	step = int(math.Floor(x / CellSize))
	track = int(math.Floor(fy))
	return step, track, fy - float64(track), true
}

// TempoFromY maps a vertical pointer position onto the tempo range:
// the top of the canvas is the fastest tempo.
func TempoFromY(y float64) int {
	v := model.MaxBPM + (y/Height)*(model.MinBPM-model.MaxBPM)
	return model.ClampBPM(int(math.Round(v)))
}
