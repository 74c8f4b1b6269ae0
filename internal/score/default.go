package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

type DefaultBoard struct {
	Path string

	db *sql.DB
}

// SongSum derives a stable song identifier from the beats data, so a
// renamed file keeps its best score.
func SongSum(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (b *DefaultBoard) Init() error {
	path := b.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists best
	  (
		  song text not null primary key,
		  score integer not null
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	b.db = db
	return nil
}

func (b *DefaultBoard) Deinit() {
	if nil != b.db {
		b.db.Close()
	}
}

// Best returns 0 for unknown songs and on any read failure; a corrupt
// store is never surfaced to the player.
func (b *DefaultBoard) Best(song string) int64 {
	if nil == b.db {
		return 0
	}
	var best int64
	err := b.db.QueryRow("select score from best where song = ?", song).Scan(&best)
	if nil != err {
		if err != sql.ErrNoRows {
			log.Println("unable to load best score:", err)
		}
		return 0
	}
	return best
}

// Submit stores the score only when strictly greater than the current
// best, and reports whether it did.
func (b *DefaultBoard) Submit(song string, score int64) bool {
	if score <= b.Best(song) {
		return false
	}
	if nil == b.db {
		return false
	}
	_, err := b.db.Exec("insert or replace into best(song, score) values(?, ?)", song, score)
	if nil != err {
		log.Println("unable to save best score:", err)
		return false
	}
	return true
}

// All exports every entry ordered by song id.
func (b *DefaultBoard) All() []Entry {
	entries := []Entry{}
	if nil == b.db {
		return entries
	}
	rows, err := b.db.Query("select song, score from best order by song")
	if nil != err {
		log.Println("unable to list best scores:", err)
		return entries
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Song, &e.Score); nil != err {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
