package skyraid

import (
	"fmt"

	"github.com/vovakirdan/skyraid/internal/core"
)

// HUD layout in world pixels.
const (
	hudMargin    = 10
	hudBarWidth  = 200
	hudBarHeight = 20
	hudFPSY      = 40
)

// HUD draws health, score and the optional FPS readout over the running scene.
type HUD struct {
	showFPS bool
	fps     float64
}

// NewHUD creates a HUD. The FPS line is only drawn when showFPS is set.
func NewHUD(showFPS bool) *HUD {
	return &HUD{showFPS: showFPS}
}

// SetShowFPS toggles the FPS readout.
func (h *HUD) SetShowFPS(show bool) {
	h.showFPS = show
}

// SetFPS records the frame rate measured by the host.
func (h *HUD) SetFPS(fps float64) {
	h.fps = fps
}

// Draw renders the health bar top-left and the score top-right.
func (h *HUD) Draw(c core.Canvas, health, maxHealth, score int) {
	bar := core.NewRect(hudMargin, hudMargin, hudBarWidth, hudBarHeight)
	c.FillRect(bar, core.ColorGray)

	if maxHealth > 0 && health > 0 {
		fill := bar
		fill.W = hudBarWidth * core.Min(health, maxHealth) / maxHealth
		c.FillRect(fill, core.ColorGreen)
	}
	c.StrokeRect(bar, core.ColorWhite)

	label := fmt.Sprintf("HP: %d/%d", health, maxHealth)
	tw, th := c.TextSize(label)
	c.DrawText(bar.X+(bar.W-tw)/2, bar.Y+(bar.H-th)/2, label, core.ColorWhite)

	w, _ := c.Size()
	scoreText := fmt.Sprintf("Score: %d", score)
	sw, _ := c.TextSize(scoreText)
	c.DrawText(w-sw-hudMargin, hudMargin, scoreText, core.ColorWhite)

	if h.showFPS {
		c.DrawText(hudMargin, hudFPSY, fmt.Sprintf("FPS: %.0f", h.fps), core.ColorYellow)
	}
}

// CenteredText draws text centred horizontally, with its middle yOffset
// pixels below the vertical centre of the canvas.
func CenteredText(c core.Canvas, text string, yOffset int, col core.Color) {
	w, h := c.Size()
	tw, th := c.TextSize(text)
	c.DrawText((w-tw)/2, h/2+yOffset-th/2, text, col)
}
