package game

import (
	"image/color"
)

type Judgement struct {
	Window float64 // max distance from the judgement line, -1 = unbounded
	Score  int
	Color  color.RGBA
	Name   string
}
