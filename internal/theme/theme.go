package theme

import "image/color"

type Theme interface {
	RenderNote(lane int) string
	RenderHitField(lane int) string
	RenderSplash(tier int) string
	LaneColor(lane int) color.RGBA
}
