package view

import (
	"fmt"
	"image/color"
	"os"

	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(os.Stdout, game_log.LevelDebug)
}

// drawCall is one recorded Canvas operation.
type drawCall struct {
	Op     string
	Coords []float64
	Text   string
	Size   float64
	Align  Align
	Col    color.Color
}

func (d drawCall) String() string {
	return fmt.Sprintf("%s%v %q", d.Op, d.Coords, d.Text)
}

// recordingCanvas records draw calls and measures text with a fixed
// advance of size/2 per byte.
type recordingCanvas struct {
	calls []drawCall
}

func (r *recordingCanvas) Clear(c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "clear", Col: c})
}

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "fill", Coords: []float64{x, y, w, h}, Col: c})
}

func (r *recordingCanvas) StrokeRect(x, y, w, h float64, c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "stroke", Coords: []float64{x, y, w, h}, Col: c})
}

func (r *recordingCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "triangle", Coords: []float64{x1, y1, x2, y2, x3, y3}, Col: c})
}

func (r *recordingCanvas) Text(s string, x, y, size float64, align Align, c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "text", Coords: []float64{x, y}, Text: s, Size: size, Align: align, Col: c})
}

func (r *recordingCanvas) TextWidth(s string, size float64) float64 {
	return float64(len(s)) * size / 2
}

func (r *recordingCanvas) Metrics(size float64) (float64, float64) {
	return size * 0.8, size * 0.2
}

func (r *recordingCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingCanvas) text(s string) (drawCall, bool) {
	for _, c := range r.calls {
		if c.Op == "text" && c.Text == s {
			return c, true
		}
	}
	return drawCall{}, false
}
