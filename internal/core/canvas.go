package core

// Canvas is the draw surface a host hands to the game each frame.
// All coordinates are world pixels; hosts scale as needed.
type Canvas interface {
	// Size returns the world dimensions the canvas represents.
	Size() (w, h int)

	// Clear fills the whole surface with a colour.
	Clear(c Color)

	// FillRect fills a rectangle.
	FillRect(r Rect, c Color)

	// StrokeRect draws a rectangle outline.
	StrokeRect(r Rect, c Color)

	// FillPolygon fills a closed polygon given by its vertices.
	FillPolygon(pts []Point, c Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)

	// TextSize returns the world-space extent of a line of text.
	TextSize(text string) (w, h int)
}
