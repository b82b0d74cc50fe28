package core

// Glyph used for filled areas on a character screen.
const BlockRune = '█'

// ScaledCanvas draws world-space primitives onto a character Screen by
// scaling world pixels down to cells. Text is not scaled: one rune per cell.
type ScaledCanvas struct {
	screen *Screen
	worldW int
	worldH int
}

// NewScaledCanvas wraps a screen so it can be drawn on in world coordinates.
func NewScaledCanvas(s *Screen, worldW, worldH int) *ScaledCanvas {
	return &ScaledCanvas{
		screen: s,
		worldW: Max(worldW, 1),
		worldH: Max(worldH, 1),
	}
}

// Screen returns the underlying cell buffer.
func (c *ScaledCanvas) Screen() *Screen {
	return c.screen
}

// Size returns the world dimensions.
func (c *ScaledCanvas) Size() (int, int) {
	return c.worldW, c.worldH
}

// Clear paints every cell with the background colour.
func (c *ScaledCanvas) Clear(bg Color) {
	c.screen.Fill(Cell{Rune: ' ', Bg: bg})
}

// FillRect fills every cell the rectangle touches. Non-empty rectangles
// always cover at least one cell.
func (c *ScaledCanvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.screen.DrawRect(c.toCells(r), BlockRune, col)
}

// StrokeRect outlines the cells the rectangle touches.
func (c *ScaledCanvas) StrokeRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.screen.DrawBox(c.toCells(r), col)
}

// FillPolygon fills the cells whose centres lie inside the polygon (even-odd rule).
func (c *ScaledCanvas) FillPolygon(pts []Point, col Color) {
	if len(pts) < 3 {
		return
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = Min(minX, p.X), Max(maxX, p.X)
		minY, maxY = Min(minY, p.Y), Max(maxY, p.Y)
	}
	cells := c.toCells(NewRect(minX, minY, maxX-minX, maxY-minY))

	cols, rows := c.screen.Width(), c.screen.Height()
	filled := false
	for cy := cells.Y; cy < cells.Bottom(); cy++ {
		for cx := cells.X; cx < cells.Right(); cx++ {
			wx := (float64(cx) + 0.5) * float64(c.worldW) / float64(cols)
			wy := (float64(cy) + 0.5) * float64(c.worldH) / float64(rows)
			if pointInPolygon(wx, wy, pts) {
				c.screen.setFg(cx, cy, BlockRune, col)
				filled = true
			}
		}
	}

	// Polygons thinner than a cell still leave a mark
	if !filled {
		c.FillRect(NewRect((minX+maxX)/2, (minY+maxY)/2, 1, 1), col)
	}
}

// DrawText writes text starting at the cell containing (x, y). Text drawn
// over a filled cell takes the fill colour as its background.
func (c *ScaledCanvas) DrawText(x, y int, text string, col Color) {
	cx := floorDiv(x*c.screen.Width(), c.worldW)
	cy := floorDiv(y*c.screen.Height(), c.worldH)

	i := 0
	for _, r := range text {
		under := c.screen.GetCell(cx+i, cy)
		bg := under.Bg
		if under.Rune == BlockRune {
			bg = under.Color
		}
		c.screen.SetCell(cx+i, cy, Cell{Rune: r, Color: col, Bg: bg})
		i++
	}
}

// TextSize returns the world-space size of a single line of text.
func (c *ScaledCanvas) TextSize(text string) (int, int) {
	n := len([]rune(text))
	w := ceilDiv(n*c.worldW, Max(c.screen.Width(), 1))
	h := ceilDiv(c.worldH, Max(c.screen.Height(), 1))
	return w, h
}

// toCells converts a world rectangle to the covering cell rectangle.
func (c *ScaledCanvas) toCells(r Rect) Rect {
	cols, rows := c.screen.Width(), c.screen.Height()

	x0 := floorDiv(r.X*cols, c.worldW)
	y0 := floorDiv(r.Y*rows, c.worldH)
	x1 := ceilDiv(r.Right()*cols, c.worldW)
	y1 := ceilDiv(r.Bottom()*rows, c.worldH)

	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// pointInPolygon is the classic crossing-number test.
func pointInPolygon(x, y float64, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		xi, yi := float64(pts[i].X), float64(pts[i].Y)
		xj, yj := float64(pts[j].X), float64(pts[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// floorDiv divides rounding towards negative infinity (b > 0).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides rounding towards positive infinity (b > 0).
func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

var _ Canvas = (*ScaledCanvas)(nil)
