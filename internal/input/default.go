package input

import (
	"log"

	"github.com/eiannone/keyboard"
)

// Event is a discrete control event. Lane is -1 for the pause and quit
// controls; lane presses carry the lane index bound to the pressed key.
type Event struct {
	Lane  int
	Pause bool
	Quit  bool
}

// MapKey resolves a pressed rune to its lane. Bindings beyond the lane
// count are ignored, so a long key string can never produce a lane at
// or past lanes. The index is a rune index, not a byte offset.
func MapKey(r rune, keys []rune, lanes int) (int, bool) {
	for i, c := range keys {
		if i >= lanes {
			break
		}
		if r == c {
			return i, true
		}
	}
	return 0, false
}

// Listen opens the keyboard and translates key events onto a channel.
// Unbound keys are dropped here, so the session only ever sees lane
// indexes inside [0, lanes). The channel closes when the keyboard
// fails; Drain turns that into a quit.
func Listen(buffer int, keys []rune, lanes int) (<-chan Event, func(), error) {
	keyEvents, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, nil, err
	}

	events := make(chan Event, buffer)
	go func() {
		defer close(events)
		for key := range keyEvents {
			if nil != key.Err {
				log.Println("unable to read keyboard:", key.Err)
				return
			}
			switch {
			case key.Key == keyboard.KeyEsc:
				events <- Event{Lane: -1, Quit: true}
			case key.Key == keyboard.KeySpace:
				events <- Event{Lane: -1, Pause: true}
			default:
				if lane, ok := MapKey(key.Rune, keys, lanes); ok {
					events <- Event{Lane: lane}
				}
			}
		}
	}()

	deinit := func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}
	return events, deinit, nil
}

// Drain collects every event already buffered, without blocking. A
// closed channel reads as quit: a dead keyboard has to end the session,
// not spin it.
func Drain(events <-chan Event) (lanes []int, pause, quit bool) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return lanes, pause, true
			}
			switch {
			case ev.Quit:
				quit = true
			case ev.Pause:
				pause = true
			default:
				lanes = append(lanes, ev.Lane)
			}
		default:
			return lanes, pause, quit
		}
	}
}
