package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	db *sql.DB
}

// HashChart identifies a chart by its document bytes, so edits start a
// fresh history.
func HashChart(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", "./sessions.db")
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists sessions
	  (
		  id integer not null primary key,
		  sum text,
		  lead integer,
		  window integer,
		  results bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) Save(sum string, lead, window time.Duration, results []Result) {
	data, err := json.Marshal(results)
	if nil != err {
		log.Println("unable to marshal results", err)
		return
	}
	_, err = s.db.Exec("insert into sessions(sum, lead, window, results) values(?, ?, ?, ?)",
		sum, int64(lead), int64(window), data)
	if nil != err {
		log.Println("unable to save session", err)
		return
	}
}

func (s *DefaultScorer) Load(sum string) []History {
	histories := []History{}
	rows, err := s.db.Query("select sum, lead, window, results from sessions where sum = ?", sum)
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load sessions", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var lead, window int64
		var data []byte
		rows.Scan(&h.Sum, &lead, &window, &data)
		if err := json.Unmarshal(data, &h.Results); nil != err {
			log.Println("unable to unmarshal session results")
			continue
		}
		h.Lead = time.Duration(lead)
		h.Window = time.Duration(window)
		histories = append(histories, h)
	}
	return histories
}
