package audio

import (
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

type DefaultPlayer struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	mu       sync.Mutex
	started  bool
	stopped  bool
	finished bool
}

// NewDefaultPlayer decodes the audio file and initialises the speaker,
// but does not start playback; Play is called when the countdown ends.
func NewDefaultPlayer(file string) (*DefaultPlayer, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch path.Ext(file) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %v", path.Ext(file))
	}
	if nil != err {
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/30)); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to initialise speaker: %w", err)
	}

	return &DefaultPlayer{
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: streamer},
	}, nil
}

func (p *DefaultPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return fmt.Errorf("already playing")
	}
	p.started = true
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		p.mu.Lock()
		p.finished = true
		p.mu.Unlock()
	})))
	return nil
}

func (p *DefaultPlayer) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p *DefaultPlayer) Resume() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

func (p *DefaultPlayer) Stop() {
	speaker.Clear()
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
}

// IsPlaying reports whether the stream has started and not yet drained
// or been stopped. A paused stream still counts as playing; the session
// never queries terminal conditions while paused.
func (p *DefaultPlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started && !p.stopped && !p.finished
}

func (p *DefaultPlayer) Elapsed() time.Duration {
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *DefaultPlayer) Close() error {
	return p.streamer.Close()
}
