package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"git.lost.host/meutraa/beatfall/internal/audio"
	"git.lost.host/meutraa/beatfall/internal/beat"
	"git.lost.host/meutraa/beatfall/internal/clock"
	"git.lost.host/meutraa/beatfall/internal/game"
	"git.lost.host/meutraa/beatfall/internal/judge"
)

// Config carries everything the session needs at construction; there is
// no global state behind it.
type Config struct {
	Lanes         int
	SpawnPosition float64
	LinePosition  float64
	FallSpeed     float64 // units per second
	Judgements    []game.Judgement
	MissPenalty   int
	Countdown     time.Duration
}

// Press is one discrete lane input, stamped with the simulation time it
// was observed at.
type Press struct {
	Lane int
	At   time.Duration
}

// Session drives one play-through: clock, scheduler, track, sweeper and
// judgement engine advanced in a fixed order once per tick. All state
// mutation happens on the tick caller's goroutine.
type Session struct {
	id  uuid.UUID
	cfg Config

	clock   *clock.SessionClock
	sched   *beat.Scheduler
	track   *game.Track
	state   *game.State
	engine  *judge.Engine
	sweeper *judge.Sweeper
	player  audio.Player

	events       []Event
	audioStarted bool
	aborted      bool
}

func New(cfg Config, beats []time.Duration, player audio.Player, rng *rand.Rand) (*Session, error) {
	if cfg.Lanes < 1 {
		return nil, fmt.Errorf("invalid lane count %v", cfg.Lanes)
	}
	if len(cfg.Judgements) < 2 {
		return nil, fmt.Errorf("judgement table needs a hit tier and a miss tier")
	}
	if nil == rng {
		return nil, fmt.Errorf("lane scheduling needs a random source")
	}

	track := game.NewTrack(cfg.Lanes, cfg.SpawnPosition, cfg.FallSpeed)
	state := game.NewState(len(cfg.Judgements))
	hitWindow := cfg.Judgements[len(cfg.Judgements)-2].Window

	return &Session{
		id:      uuid.New(),
		cfg:     cfg,
		clock:   clock.New(cfg.Countdown),
		sched:   beat.NewScheduler(beats, cfg.Lanes, rng),
		track:   track,
		state:   state,
		engine:  judge.NewEngine(track, state, cfg.Judgements, cfg.LinePosition),
		sweeper: judge.NewSweeper(track, state, cfg.LinePosition, hitWindow, cfg.MissPenalty),
		player:  player,
	}, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Done() bool {
	return s.clock.State() == clock.StateEnded
}

// Tick advances the session by dt of wall time and resolves the presses
// observed since the previous tick. Order is fixed: clock, spawns, note
// advancement, sweep, judgement, terminal checks.
func (s *Session) Tick(dt time.Duration, presses []Press) (Snapshot, error) {
	s.events = s.events[:0]

	switch s.clock.State() {
	case clock.StateEnded, clock.StatePaused:
		// Presses while paused or after the end are dropped
		return s.snapshot(), nil
	case clock.StateCountdown:
		if !s.clock.Advance(dt) {
			return s.snapshot(), nil
		}
		// Countdown completed this tick: audio starts now, and the
		// tick remainder already inside the clock is what the notes
		// advance by.
		s.startAudio()
		dt = s.clock.Now()
	default:
		// A zero countdown skips the countdown state entirely
		s.startAudio()
		s.clock.Advance(dt)
	}

	t := s.clock.Now()

	for _, d := range s.sched.Tick(t) {
		id, err := s.track.Spawn(d.Lane, d.At)
		if nil != err {
			return Snapshot{}, fmt.Errorf("spawn on beat %v: %w", d.At, err)
		}
		s.state.Spawned++
		s.events = append(s.events, Event{Kind: EventSpawn, Lane: d.Lane, NoteID: id})
	}

	s.track.AdvanceAll(dt)

	combo := s.state.Combo
	for _, m := range s.sweeper.Sweep() {
		if combo > 0 {
			combo = 0
			s.events = append(s.events, Event{Kind: EventComboBreak})
		}
		s.events = append(s.events, Event{
			Kind:     EventMiss,
			Lane:     m.Lane,
			NoteID:   m.NoteID,
			Tier:     len(s.cfg.Judgements) - 1,
			Position: m.Position,
		})
	}

	for _, p := range presses {
		prior := s.state.Combo
		out, err := s.engine.Judge(p.Lane, p.At)
		if nil != err {
			return Snapshot{}, fmt.Errorf("judge press: %w", err)
		}
		if out.Hit() {
			s.events = append(s.events, Event{
				Kind:     EventHit,
				Lane:     out.Lane,
				NoteID:   out.NoteID,
				Tier:     out.Tier,
				Position: out.Position,
				Score:    out.Score,
			})
			continue
		}
		if prior > 0 {
			s.events = append(s.events, Event{Kind: EventComboBreak})
		}
		s.events = append(s.events, Event{
			Kind: EventMissPress,
			Lane: out.Lane,
			Tier: out.Tier,
		})
	}

	s.checkTerminal()

	return s.snapshot(), nil
}

func (s *Session) startAudio() {
	if s.audioStarted {
		return
	}
	s.audioStarted = true
	if err := s.player.Play(); nil != err {
		log.Println("unable to start audio:", err)
	}
}

func (s *Session) checkTerminal() {
	if s.state.Health == 0 {
		s.player.Stop()
		if err := s.clock.End(); nil == err {
			s.events = append(s.events, Event{Kind: EventGameOver})
		}
		return
	}
	if !s.player.IsPlaying() && s.sched.Exhausted() && s.track.Len() == 0 {
		if err := s.clock.End(); nil == err {
			s.events = append(s.events, Event{Kind: EventGameOver})
		}
	}
}

// Pause freezes simulation time and halts audio; track state is kept.
func (s *Session) Pause() error {
	if err := s.clock.Pause(); nil != err {
		return err
	}
	s.player.Pause()
	return nil
}

// Resume continues exactly where Pause left off; paused wall time never
// reaches the simulation.
func (s *Session) Resume() error {
	if err := s.clock.Resume(); nil != err {
		return err
	}
	s.player.Resume()
	return nil
}

// Abort is the quit path: audio stops, the session ends, and no summary
// is produced, so nothing gets persisted.
func (s *Session) Abort() {
	s.aborted = true
	s.player.Stop()
	if err := s.clock.End(); nil != err {
		log.Println("abort:", err)
	}
}

// Summary is nil for aborted or still-live sessions.
func (s *Session) Summary() *Summary {
	if s.aborted || s.clock.State() != clock.StateEnded {
		return nil
	}
	last := len(s.state.Counts) - 1
	good := 0
	for _, c := range s.state.Counts[1:last] {
		good += c
	}
	return &Summary{
		ID:       s.id,
		Score:    s.state.Score,
		MaxCombo: s.state.MaxCombo,
		Accuracy: s.state.Accuracy(),
		Perfect:  s.state.Counts[0],
		Good:     good,
		Missed:   s.state.Counts[last],
	}
}

func (s *Session) snapshot() Snapshot {
	counts := make([]int, len(s.state.Counts))
	copy(counts, s.state.Counts)
	return Snapshot{
		Time:      s.clock.Now(),
		Clock:     s.clock.State(),
		Countdown: s.clock.Remaining(),
		Score:     s.state.Score,
		Combo:     s.state.Combo,
		MaxCombo:  s.state.MaxCombo,
		Health:    s.state.Health,
		Spawned:   s.state.Spawned,
		Accuracy:  s.state.Accuracy(),
		Counts:    counts,
		Notes:     s.track.Notes(),
		Events:    append([]Event(nil), s.events...),
		Done:      s.clock.State() == clock.StateEnded,
	}
}
