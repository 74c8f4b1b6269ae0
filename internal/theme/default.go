package theme

import (
	"fmt"
	"image/color"
)

type DefaultTheme struct{}

const (
	noteSym   = "⬤"
	barSym    = "-"
	splashSym = "◎"
)

var (
	laneColors = []color.RGBA{
		{R: 236, G: 30, B: 0, A: 255},
		{R: 0, G: 236, B: 128, A: 255},
		{R: 0, G: 118, B: 236, A: 255},
		{R: 236, G: 195, B: 0, A: 255},
		{R: 106, G: 0, B: 236, A: 255},
		{R: 236, G: 0, B: 106, A: 255},
	}
	splashColors = []color.RGBA{
		{R: 173, G: 236, B: 236, A: 255}, // perfect, light blue
		{R: 0, G: 236, B: 128, A: 255},   // good, green
		{R: 236, G: 30, B: 0, A: 255},    // miss, red
	}
)

func colored(c color.RGBA, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) LaneColor(lane int) color.RGBA {
	return laneColors[lane%len(laneColors)]
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return colored(t.LaneColor(lane), noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) RenderSplash(tier int) string {
	if tier >= len(splashColors) {
		tier = len(splashColors) - 1
	}
	return colored(splashColors[tier], splashSym)
}
