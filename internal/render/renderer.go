package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	Clear()
	AddDecoration(col, row int, content string, frames int)
	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
	RenderLoop(framePeriod time.Duration, render func(now time.Time, dt time.Duration) bool)
}
