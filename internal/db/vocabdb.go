//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/mattn/go-sqlite3"
)

// the spelling-correction vocabulary lives in a ":memory:" sqlite database; buckets are keyed
// by first letter because correction assumes the first letter of a misspelling is right

var (
	VocabDB *sql.DB
)

// OpenVocabSQLite - initialize a ":memory:" SQLite database with a REGEXP extension
func OpenVocabSQLite() *sql.DB {
	// for regex see:
	// https://pkg.go.dev/github.com/mattn/go-sqlite3#section-readme
	regex := func(re, s string) (bool, error) {
		return regexp.MatchString(re, s)
	}
	sql.Register("sqlite3_with_regex",
		&sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("regexp", regex, true)
			},
		})

	// "file::memory:?cache=shared" because next will close soon after first uses: sql.Open("sqlite3_with_regex", ":memory:")
	memdb, err := sql.Open("sqlite3_with_regex", "file::memory:?cache=shared")
	Msg.EC(err)

	VocabDB = memdb
	return memdb
}

// GetVocabConn - return a connection to the in-memory SQLite database
func GetVocabConn() *sql.Conn {
	conn, e := VocabDB.Conn(context.Background())
	Msg.EC(e)
	return conn
}

// LoadVocabulary - (re)build the vocabulary table from term counts
func LoadVocabulary(counts map[string]int) {
	const (
		DROP   = `DROP TABLE IF EXISTS vocabulary`
		CREATE = `
			CREATE TABLE vocabulary (
				term   TEXT UNIQUE,
				bucket CHARACTER(1),
				freq   INTEGER
			);`
		IDX  = `CREATE INDEX vocabulary_bucket_index ON vocabulary (bucket)`
		QT   = `INSERT INTO vocabulary (term, bucket, freq) VALUES (?, ?, ?)`
		FAIL = `LoadVocabulary() insert failed for '%s': %s`
	)

	conn := GetVocabConn()
	defer conn.Close()

	_, err := conn.ExecContext(context.Background(), DROP)
	Msg.EC(err)
	_, err = conn.ExecContext(context.Background(), CREATE)
	Msg.EC(err)
	_, err = conn.ExecContext(context.Background(), IDX)
	Msg.EC(err)

	stmt, err := conn.PrepareContext(context.Background(), QT)
	Msg.EC(err)

	for t, n := range counts {
		if t == "" {
			continue
		}
		b := string([]rune(t)[0])
		if _, e := stmt.Exec(t, b, n); e != nil {
			Msg.WARN(fmt.Sprintf(FAIL, t, e.Error()))
		}
	}
}

// VocabBucket - every known term that starts with the same letter, with its corpus count
func VocabBucket(first rune) map[string]int {
	const Q = `SELECT term, freq FROM vocabulary WHERE bucket = ?`

	conn := GetVocabConn()
	defer conn.Close()

	rows, err := conn.QueryContext(context.Background(), Q, string(first))
	Msg.EC(err)
	defer rows.Close()

	bucket := make(map[string]int)
	for rows.Next() {
		var t string
		var n int
		Msg.EC(rows.Scan(&t, &n))
		bucket[t] = n
	}
	return bucket
}

// VocabKnows - is this exact term in the vocabulary?
func VocabKnows(term string) bool {
	const Q = `SELECT COUNT(*) FROM vocabulary WHERE term = ?`

	conn := GetVocabConn()
	defer conn.Close()

	var n int
	if err := conn.QueryRowContext(context.Background(), Q, term).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// VocabGrep - terms in a bucket matching a regexp; rides the mattn ConnectHook
func VocabGrep(first rune, pattern string) []string {
	const Q = `SELECT term FROM vocabulary WHERE bucket = ? AND term REGEXP ?`

	conn := GetVocabConn()
	defer conn.Close()

	rows, err := conn.QueryContext(context.Background(), Q, string(first), pattern)
	Msg.EC(err)
	defer rows.Close()

	var tt []string
	for rows.Next() {
		var t string
		Msg.EC(rows.Scan(&t))
		tt = append(tt, t)
	}
	return tt
}
