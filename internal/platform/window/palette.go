package window

import (
	"image/color"

	"github.com/vovakirdan/skyraid/internal/core"
)

// palette maps core.Color to screen colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {255, 255, 255, 255},
	core.ColorBlack:        {0, 0, 0, 255},
	core.ColorRed:          {255, 0, 0, 255},
	core.ColorGreen:        {0, 255, 0, 255},
	core.ColorYellow:       {255, 255, 0, 255},
	core.ColorBlue:         {0, 0, 255, 255},
	core.ColorMagenta:      {255, 0, 255, 255},
	core.ColorCyan:         {0, 255, 255, 255},
	core.ColorWhite:        {255, 255, 255, 255},
	core.ColorBrightRed:    {255, 96, 96, 255},
	core.ColorBrightGreen:  {128, 255, 128, 255},
	core.ColorBrightYellow: {255, 255, 160, 255},
	core.ColorBrightBlue:   {96, 160, 255, 255},
	core.ColorBrightWhite:  {255, 255, 255, 255},
	core.ColorOrange:       {255, 165, 0, 255},
	core.ColorGray:         {128, 128, 128, 255},
	core.ColorDarkGray:     {48, 48, 48, 255},
}

// rgba returns the screen colour for c, white if unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
