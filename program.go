package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"git.lost.host/meutraa/beatfall/internal/clock"
	"git.lost.host/meutraa/beatfall/internal/config"
	"git.lost.host/meutraa/beatfall/internal/input"
	"git.lost.host/meutraa/beatfall/internal/render"
	"git.lost.host/meutraa/beatfall/internal/session"
	"git.lost.host/meutraa/beatfall/internal/theme"
)

const pausedMessage = "PAUSED  space: resume  esc: quit"

// Program maps session snapshots onto the terminal. The session itself
// never draws; everything visual lives here.
type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Session  *session.Session
	Events   <-chan input.Event

	columns, rows int
	topRow        int
	lineRow       int
	laneCols      []int
	sideCol       int
	scale         float64 // track units per terminal row

	lastTime  time.Duration
	paused    bool
	prevClock clock.State
}

func (p *Program) Init() error {
	if err := p.Renderer.Init(); nil != err {
		return fmt.Errorf("unable to initialise renderer: %w", err)
	}

	p.columns, p.rows = p.Renderer.Size()
	p.topRow = 1
	p.lineRow = p.rows - int(*config.BarRow)

	lanes := *config.Lanes
	spacing := int(*config.ColumnSpacing)
	mc := p.columns >> 1
	p.laneCols = make([]int, lanes)
	for i := range p.laneCols {
		p.laneCols[i] = mc + spacing*(2*i-(lanes-1))
	}
	p.sideCol = p.laneCols[0] - 36
	if p.sideCol < 2 {
		p.sideCol = 2
	}

	p.scale = (*config.LinePosition - *config.SpawnPosition) / float64(p.lineRow-p.topRow)
	return nil
}

func (p *Program) Deinit() {
	if err := p.Renderer.Deinit(); nil != err {
		log.Println("unable to restore terminal:", err)
	}
}

func (p *Program) noteRow(y float64) int {
	return p.topRow + int(math.Round((y-*config.SpawnPosition)/p.scale))
}

// Run drives the session until it ends or the player quits.
func (p *Program) Run() {
	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time, dt time.Duration) bool {
		lanes, pause, quit := input.Drain(p.Events)
		presses := make([]session.Press, 0, len(lanes))
		for _, lane := range lanes {
			presses = append(presses, session.Press{Lane: lane, At: p.lastTime})
		}

		if quit {
			p.Session.Abort()
			return false
		}
		if pause {
			p.togglePause()
		}

		snap, err := p.Session.Tick(dt, presses)
		if nil != err {
			log.Println(err)
			return false
		}
		p.lastTime = snap.Time
		p.paused = snap.Clock == clock.StatePaused

		p.draw(snap)
		return !snap.Done
	})
}

func (p *Program) togglePause() {
	if p.paused {
		if err := p.Session.Resume(); nil != err {
			log.Println(err)
		}
		return
	}
	if err := p.Session.Pause(); nil != err {
		// Pausing the countdown is not a thing; ignore the press
		log.Println(err)
	}
}

func (p *Program) draw(s session.Snapshot) {
	for row := p.topRow; row <= p.lineRow; row++ {
		for _, col := range p.laneCols {
			p.Renderer.Fill(row, col, " ")
		}
	}

	for i, col := range p.laneCols {
		p.Renderer.Fill(p.lineRow, col, p.Theme.RenderHitField(i))
	}

	for _, n := range s.Notes {
		row := p.noteRow(n.Y)
		if row >= p.topRow && row <= p.lineRow {
			p.Renderer.Fill(row, p.laneCols[n.Lane], p.Theme.RenderNote(n.Lane))
		}
	}

	for _, e := range s.Events {
		switch e.Kind {
		case session.EventHit, session.EventMiss, session.EventMissPress:
			p.Renderer.AddDecoration(p.laneCols[e.Lane], p.lineRow, p.Theme.RenderSplash(e.Tier), 12)
		}
	}

	p.Renderer.Fill(2, p.sideCol, fmt.Sprintf("    Score: %8v", s.Score))
	p.Renderer.Fill(3, p.sideCol, fmt.Sprintf("    Combo: %8v", s.Combo))
	p.Renderer.Fill(4, p.sideCol, fmt.Sprintf("Max combo: %8v", s.MaxCombo))
	p.Renderer.Fill(5, p.sideCol, fmt.Sprintf("   Health: %8v", s.Health))
	p.Renderer.Fill(6, p.sideCol, fmt.Sprintf(" Accuracy: %7.1f%%", s.Accuracy))
	p.Renderer.Fill(7, p.sideCol, fmt.Sprintf("  Spawned: %8v", s.Spawned))
	for i, j := range config.Judgements {
		p.Renderer.FillColor(9+i, p.sideCol, j.Color, fmt.Sprintf("%v: %6v", j.Name, s.Counts[i]))
	}

	cen := p.rows >> 1
	mc := p.columns >> 1
	switch s.Clock {
	case clock.StateCountdown:
		p.Renderer.Fill(cen, mc, fmt.Sprintf("%v", int(s.Countdown.Seconds())+1))
	case clock.StatePaused:
		p.Renderer.Fill(cen, mc-len(pausedMessage)/2, pausedMessage)
	default:
		if p.prevClock != s.Clock {
			// Wipe the stale overlay after resume or countdown end
			p.Renderer.Fill(cen, mc-len(pausedMessage)/2, strings.Repeat(" ", len(pausedMessage)))
		}
	}
	p.prevClock = s.Clock
}

// Summary shows the end-of-session screen until any key is pressed.
func (p *Program) Summary(sum *session.Summary, best int64, isBest bool) {
	p.Renderer.Clear()
	cen := p.rows >> 1
	mc := p.columns >> 1

	lines := []string{
		fmt.Sprintf("    Score: %8v", sum.Score),
		fmt.Sprintf("Max combo: %8v", sum.MaxCombo),
		fmt.Sprintf(" Accuracy: %7.1f%%", sum.Accuracy),
		fmt.Sprintf("  Perfect: %8v", sum.Perfect),
		fmt.Sprintf("     Good: %8v", sum.Good),
		fmt.Sprintf("   Missed: %8v", sum.Missed),
	}
	if isBest {
		lines = append(lines, "", "new best score!")
	} else {
		lines = append(lines, "", fmt.Sprintf("     Best: %8v", best))
	}

	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time, dt time.Duration) bool {
		for i, line := range lines {
			p.Renderer.Fill(cen-len(lines)/2+i, mc-12, line)
		}
		select {
		case <-p.Events:
			// Any key dismisses; a closed channel dismisses too
			return false
		default:
		}
		return true
	})
}
