package skyraid

import (
	"testing"

	"github.com/vovakirdan/skyraid/internal/core"
)

type drawCall struct {
	op   string
	rect core.Rect
	text string
	x, y int
	col  core.Color
}

// recordCanvas records draw calls. Text is 8x16 pixels per rune.
type recordCanvas struct {
	w, h  int
	calls []drawCall
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordCanvas) Clear(col core.Color) {
	c.calls = append(c.calls, drawCall{op: "clear", col: col})
}

func (c *recordCanvas) FillRect(r core.Rect, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "fill", rect: r, col: col})
}

func (c *recordCanvas) StrokeRect(r core.Rect, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "stroke", rect: r, col: col})
}

func (c *recordCanvas) FillPolygon(_ []core.Point, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "polygon", col: col})
}

func (c *recordCanvas) DrawText(x, y int, text string, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "text", x: x, y: y, text: text, col: col})
}

func (c *recordCanvas) TextSize(text string) (int, int) {
	return len([]rune(text)) * 8, 16
}

func (c *recordCanvas) find(op string, col core.Color) (drawCall, bool) {
	for _, call := range c.calls {
		if call.op == op && call.col == col {
			return call, true
		}
	}
	return drawCall{}, false
}

func (c *recordCanvas) text(s string) (drawCall, bool) {
	for _, call := range c.calls {
		if call.op == "text" && call.text == s {
			return call, true
		}
	}
	return drawCall{}, false
}

func TestHUDHealthBar(t *testing.T) {
	tests := []struct {
		name   string
		health int
		width  int
	}{
		{"full", 100, 200},
		{"half", 50, 100},
		{"low", 5, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &recordCanvas{w: 800, h: 600}
			NewHUD(false).Draw(c, tc.health, 100, 0)

			bg, ok := c.find("fill", core.ColorGray)
			if !ok || bg.rect != core.NewRect(10, 10, 200, 20) {
				t.Errorf("background bar = %+v", bg.rect)
			}
			fill, ok := c.find("fill", core.ColorGreen)
			if !ok || fill.rect.W != tc.width {
				t.Errorf("fill width = %d, expected %d", fill.rect.W, tc.width)
			}
			if _, ok := c.find("stroke", core.ColorWhite); !ok {
				t.Error("bar border missing")
			}
		})
	}
}

func TestHUDEmptyBar(t *testing.T) {
	c := &recordCanvas{w: 800, h: 600}
	NewHUD(false).Draw(c, 0, 100, 0)

	if _, ok := c.find("fill", core.ColorGreen); ok {
		t.Error("no fill should be drawn at 0 health")
	}
	if _, ok := c.text("HP: 0/100"); !ok {
		t.Error("health label missing")
	}
}

func TestHUDScoreRightAligned(t *testing.T) {
	c := &recordCanvas{w: 800, h: 600}
	NewHUD(false).Draw(c, 100, 100, 1200)

	call, ok := c.text("Score: 1200")
	if !ok {
		t.Fatal("score text missing")
	}
	if call.x+len(call.text)*8 != 790 || call.y != 10 {
		t.Errorf("score drawn at (%d,%d), expected right edge 790 and y 10", call.x, call.y)
	}
}

func TestHUDFPS(t *testing.T) {
	c := &recordCanvas{w: 800, h: 600}
	h := NewHUD(false)
	h.SetFPS(59.7)
	h.Draw(c, 100, 100, 0)
	if _, ok := c.text("FPS: 60"); ok {
		t.Error("FPS should be hidden unless enabled")
	}

	c = &recordCanvas{w: 800, h: 600}
	h.SetShowFPS(true)
	h.Draw(c, 100, 100, 0)
	call, ok := c.text("FPS: 60")
	if !ok {
		t.Fatal("FPS line missing")
	}
	if call.x != 10 || call.y != 40 {
		t.Errorf("FPS drawn at (%d,%d), expected (10,40)", call.x, call.y)
	}
}

func TestCenteredText(t *testing.T) {
	c := &recordCanvas{w: 800, h: 600}
	CenteredText(c, "GAME OVER", -80, core.ColorWhite)

	call, ok := c.text("GAME OVER")
	if !ok {
		t.Fatal("text missing")
	}
	// 9 runes * 8 = 72 wide, 16 high
	if call.x != (800-72)/2 || call.y != 300-80-8 {
		t.Errorf("text at (%d,%d), expected (%d,%d)", call.x, call.y, (800-72)/2, 212)
	}
}

func TestRunningRenderLayers(t *testing.T) {
	m := startRun(1)
	r := m.Running()
	r.Enemies().Add(enemyAt(100, 100, 20))
	r.Bullets().Add(bulletAt(300, 300))

	c := &recordCanvas{w: 800, h: 600}
	m.Render(c)

	if len(c.calls) == 0 || c.calls[0].op != "clear" || c.calls[0].col != core.ColorBlue {
		t.Fatal("running screen should clear to blue first")
	}
	if _, ok := c.find("fill", core.ColorRed); !ok {
		t.Error("enemy not drawn")
	}
	if _, ok := c.find("fill", core.ColorYellow); !ok {
		t.Error("bullet not drawn")
	}
	if _, ok := c.find("polygon", core.ColorGreen); !ok {
		t.Error("player ship not drawn")
	}
}

var _ core.Canvas = (*recordCanvas)(nil)
