package audio

import "time"

// Player is the audio-clock contract the session depends on. Queries
// are synchronous and non-blocking; the session never waits on audio.
// Simulation time comes from tick deltas, so the session only reads
// IsPlaying; Elapsed is here for callers that want the decoder clock,
// such as drift diagnostics.
type Player interface {
	Play() error
	Pause()
	Resume()
	Stop()
	IsPlaying() bool
	Elapsed() time.Duration
	Close() error
}
