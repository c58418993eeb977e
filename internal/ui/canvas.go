package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ingyamilmolinar/processp/internal/view"
	"golang.org/x/image/font/gofont/goregular"
)

// canvas draws view calls onto the current ebiten screen.
type canvas struct {
	dst   *ebiten.Image
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
	white *ebiten.Image
}

func newCanvas() (*canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &canvas{src: src, faces: map[float64]*text.GoTextFace{}}, nil
}

func (c *canvas) face(size float64) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.src, Size: size}
		c.faces[size] = f
	}
	return f
}

func (c *canvas) Clear(col color.Color) { c.dst.Fill(col) }

func (c *canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *canvas) StrokeRect(x, y, w, h float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), 1, col, false)
}

// whitePixel is the source texture for solid-colour triangles.
func (c *canvas) whitePixel() *ebiten.Image {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.white
}

func (c *canvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, col color.Color) {
	var p vector.Path
	p.MoveTo(float32(x1), float32(y1))
	p.LineTo(float32(x2), float32(y2))
	p.LineTo(float32(x3), float32(y3))
	p.Close()
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	c.dst.DrawTriangles(vs, is, c.whitePixel(), &ebiten.DrawTrianglesOptions{})
}

func (c *canvas) Text(s string, x, y, size float64, align view.Align, col color.Color) {
	f := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	if align == view.AlignRight {
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(c.dst, s, f, op)
}

func (c *canvas) TextWidth(s string, size float64) float64 {
	return text.Advance(s, c.face(size))
}

func (c *canvas) Metrics(size float64) (float64, float64) {
	m := c.face(size).Metrics()
	return m.HAscent, m.HDescent
}
