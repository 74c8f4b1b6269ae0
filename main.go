package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"git.lost.host/meutraa/beatfall/internal/audio"
	"git.lost.host/meutraa/beatfall/internal/config"
	"git.lost.host/meutraa/beatfall/internal/input"
	"git.lost.host/meutraa/beatfall/internal/parser"
	"git.lost.host/meutraa/beatfall/internal/render"
	"git.lost.host/meutraa/beatfall/internal/score"
	"git.lost.host/meutraa/beatfall/internal/session"
	"git.lost.host/meutraa/beatfall/internal/theme"
	"github.com/eiannone/keyboard"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

type song struct {
	beats string
	audio string
}

// findSongs pairs every .beats file with an audio file from the same
// directory, one song per directory.
func findSongs(dir string) ([]song, error) {
	byDir := map[string]*song{}
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err || info.IsDir() {
			return err
		}
		s := byDir[filepath.Dir(p)]
		if nil == s {
			s = &song{}
			byDir[filepath.Dir(p)] = s
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg":
			s.audio = p
		case ".beats":
			s.beats = p
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk song directory: %w", err)
	}

	songs := []song{}
	for _, s := range byDir {
		if s.beats != "" && s.audio != "" {
			songs = append(songs, *s)
		}
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].beats < songs[j].beats })
	return songs, nil
}

func selectSong(songs []song) (song, error) {
	if len(songs) == 1 {
		return songs[0], nil
	}
	for i, s := range songs {
		fmt.Printf("%2v) %v\n", i, filepath.Base(filepath.Dir(s.beats)))
	}
	r, _, err := keyboard.GetSingleKey()
	if nil != err {
		return song{}, err
	}
	index, err := strconv.ParseInt(string(r), 10, 64)
	if nil != err || index > int64(len(songs)-1) {
		return song{}, errors.New("invalid song selection")
	}
	return songs[index], nil
}

func run() error {
	keys := []rune(*config.Keys)
	if len(keys) < *config.Lanes {
		return fmt.Errorf("%v lanes need %v key bindings, --keys has %v", *config.Lanes, *config.Lanes, len(keys))
	}

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}
	var board score.Board = &score.DefaultBoard{Path: *config.ScorePath}

	songs, err := findSongs(*config.Directory)
	if nil != err {
		return err
	}
	if len(songs) == 0 {
		return errors.New("unable to find a .beats and .mp3/.ogg pair in given directory")
	}

	selected, err := selectSong(songs)
	if nil != err {
		return err
	}

	beatsData, err := ioutil.ReadFile(selected.beats)
	if nil != err {
		return err
	}
	songID := score.SongSum(beatsData)

	beats, err := psr.Parse(selected.beats)
	if nil != err {
		return err
	}

	log.Printf("Opening %v (%v)\n", selected.audio, selected.beats)
	player, err := audio.NewDefaultPlayer(selected.audio)
	if nil != err {
		return err
	}
	defer func() {
		if err := player.Close(); nil != err {
			log.Println("unable to close audio:", err)
		}
	}()

	if err := board.Init(); nil != err {
		// A broken score store never blocks play, it just scores as 0
		log.Println("unable to open score board:", err)
	}
	defer board.Deinit()

	seed := *config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sess, err := session.New(session.Config{
		Lanes:         *config.Lanes,
		SpawnPosition: *config.SpawnPosition,
		LinePosition:  *config.LinePosition,
		FallSpeed:     *config.FallSpeed,
		Judgements:    config.Judgements,
		MissPenalty:   *config.MissPenalty,
		Countdown:     *config.Countdown,
	}, beats, player, rng)
	if nil != err {
		return err
	}

	events, closeInput, err := input.Listen(128, keys, *config.Lanes)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer closeInput()

	p := &Program{
		Renderer: r,
		Theme:    th,
		Session:  sess,
		Events:   events,
	}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	p.Run()

	summary := sess.Summary()
	if nil == summary {
		// Aborted session, nothing to persist
		return nil
	}

	best := board.Best(songID)
	isBest := board.Submit(songID, int64(summary.Score))
	p.Summary(summary, best, isBest)

	return nil
}
