package score

// Board is the persistence collaborator: a song-id to best-score map.
// Reads are permissive, a missing or unreadable store behaves as all
// zeroes; writes happen only for strictly greater scores.
type Board interface {
	Init() error
	Deinit()

	Best(song string) int64
	Submit(song string, score int64) bool
	All() []Entry
}

type Entry struct {
	Song  string
	Score int64
}
