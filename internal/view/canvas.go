package view

import "image/color"

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Canvas is the drawing surface the renderer issues calls against.
// Coordinates are canvas pixels with the origin at the top left.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color)
	// Text draws s with its baseline at y. With AlignRight, x is the end
	// of the text.
	Text(s string, x, y, size float64, align Align, c color.Color)
	TextWidth(s string, size float64) float64
	// Metrics returns the ascent and descent of the font at size.
	Metrics(size float64) (ascent, descent float64)
}
