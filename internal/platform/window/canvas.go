package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/skyraid/internal/core"
)

const fontSize = 16

// Canvas draws core primitives onto an ebiten image in world pixels.
// The target image is swapped in every frame by the host.
type Canvas struct {
	dst   *ebiten.Image
	w, h  int
	face  *text.GoTextFace
	white *ebiten.Image // Source texture for polygon triangles
}

// NewCanvas creates a canvas for a w x h world using the built-in Go font.
func NewCanvas(w, h int) (*Canvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Canvas{
		w: w,
		h: h,
		face: &text.GoTextFace{
			Source:    source,
			Size:      fontSize,
			Direction: text.DirectionLeftToRight,
		},
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// SetTarget selects the image drawn on.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the world dimensions.
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Clear fills the target with a colour.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

// FillRect fills a rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

// StrokeRect outlines a rectangle with a 2px line.
func (c *Canvas) StrokeRect(r core.Rect, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, rgba(col), false)
}

// FillPolygon fills a closed polygon.
func (c *Canvas) FillPolygon(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	fill := rgba(col)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(fill.R) / 0xff
		vs[i].ColorG = float32(fill.G) / 0xff
		vs[i].ColorB = float32(fill.B) / 0xff
		vs[i].ColorA = float32(fill.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	c.dst.DrawTriangles(vs, is, c.white, op)
}

// DrawText draws a line of text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(col))
	text.Draw(c.dst, s, c.face, op)
}

// TextSize measures a line of text.
func (c *Canvas) TextSize(s string) (int, int) {
	w, h := text.Measure(s, c.face, 0)
	return int(w + 0.5), int(h + 0.5)
}

var _ core.Canvas = (*Canvas)(nil)
