package config

import (
	"image/color"

	"git.lost.host/meutraa/beatfall/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory     = kingpin.Arg("directory", "Song directory").Required().ExistingDir()
	Lanes         = kingpin.Flag("lanes", "Lane count").Default("3").Short('l').Int()
	Keys          = kingpin.Flag("keys", "Lane key runes").Default("asd").Short('k').String()
	FallSpeed     = kingpin.Flag("fall-speed", "Note fall speed, units per second").Default("300").Short('f').Float64()
	SpawnPosition = kingpin.Flag("spawn-position", "Note spawn position").Default("-50").Float64()
	LinePosition  = kingpin.Flag("line-position", "Judgement line position").Default("650").Float64()
	perfectWindow = kingpin.Flag("perfect-window", "Perfect tier distance").Default("20").Float64()
	hitWindow     = kingpin.Flag("hit-window", "Largest hittable distance").Default("60").Float64()
	Countdown     = kingpin.Flag("countdown", "Countdown before audio starts").Default("3s").Short('c').Duration()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	MissPenalty   = kingpin.Flag("miss-penalty", "Health lost per fall-through miss").Default("10").Int()
	Seed          = kingpin.Flag("seed", "Lane RNG seed, 0 seeds from the clock").Default("0").Int64()
	BarRow        = kingpin.Flag("bar-row", "Rows between judgement line and bottom edge").Default("6").Uint()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	ScorePath     = kingpin.Flag("scores", "Score database path").Default("./scores.db").String()

	Judgements []game.Judgement
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	Judgements = []game.Judgement{
		{Window: *perfectWindow, Score: 300, Color: color.RGBA{R: 173, G: 236, B: 236, A: 255}, Name: "Perfect"},
		{Window: *hitWindow, Score: 100, Color: color.RGBA{R: 0, G: 236, B: 128, A: 255}, Name: "   Good"},
		{Window: -1, Score: 0, Color: color.RGBA{R: 236, G: 30, B: 0, A: 255}, Name: "   Miss"},
	}
}
