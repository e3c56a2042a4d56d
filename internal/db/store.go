//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	_ "modernc.org/sqlite"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	// EASStore - the on-disk database; set by OpenStore() at launch
	EASStore *sql.DB
)

const (
	SCHEMA = `
	CREATE TABLE IF NOT EXISTS enquiries (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		received  TEXT,
		category  TEXT,
		txt       TEXT
	);
	CREATE TABLE IF NOT EXISTS checkins (
		userid     INTEGER,
		stamp      TEXT,
		lat        REAL,
		lon        REAL,
		locationid TEXT
	);
	CREATE INDEX IF NOT EXISTS checkins_stamp_index ON checkins (stamp);
	CREATE TABLE IF NOT EXISTS socialedges (
		a INTEGER,
		b INTEGER
	);
	CREATE TABLE IF NOT EXISTS modelruns (
		jobid    TEXT,
		kind     TEXT,
		name     TEXT,
		started  TEXT,
		finished TEXT,
		winner   TEXT,
		score    REAL
	);
	CREATE TABLE IF NOT EXISTS extractruns (
		started TEXT,
		source  TEXT,
		outdir  TEXT,
		archive TEXT,
		tables_found INTEGER,
		rows_written INTEGER
	);`
)

// OpenStore - open (and if need be create) the on-disk sqlite database
func OpenStore(path string) *sql.DB {
	const (
		FAIL1 = `OpenStore() could not open '%s'`
		FAIL2 = `OpenStore() could not build the schema in '%s'`
	)

	store, err := sql.Open("sqlite", path)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, path))
		Msg.EC(err)
	}

	if _, err = store.ExecContext(context.Background(), SCHEMA); err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL2, path))
		Msg.EC(err)
	}

	EASStore = store
	return store
}

//
// ENQUIRIES
//

// InsertEnquiries - bulk insert; used by the CSV loader and the postgres import
func InsertEnquiries(enn []str.Enquiry) {
	const (
		QT   = `INSERT INTO enquiries (received, category, txt) VALUES (?, ?, ?)`
		FAIL = `InsertEnquiries() insert failed: %s`
	)

	tx, err := EASStore.Begin()
	Msg.EC(err)

	stmt, err := tx.Prepare(QT)
	Msg.EC(err)

	for i := 0; i < len(enn); i++ {
		_, e := stmt.Exec(enn[i].Received.Format(time.RFC3339), enn[i].Category, enn[i].Text)
		if e != nil {
			Msg.WARN(fmt.Sprintf(FAIL, e.Error()))
		}
	}
	Msg.EC(tx.Commit())
}

// GetEnquiries - all enquiries; category filter applies when cat != ""
func GetEnquiries(cat string) []str.Enquiry {
	const (
		QALL = `SELECT id, received, category, txt FROM enquiries`
		QCAT = `SELECT id, received, category, txt FROM enquiries WHERE category = ?`
	)

	var rows *sql.Rows
	var err error
	if cat == "" {
		rows, err = EASStore.Query(QALL)
	} else {
		rows, err = EASStore.Query(QCAT, cat)
	}
	Msg.EC(err)
	defer rows.Close()

	var enn []str.Enquiry
	for rows.Next() {
		var e str.Enquiry
		var rec string
		Msg.EC(rows.Scan(&e.ID, &rec, &e.Category, &e.Text))
		e.Received, _ = time.Parse(time.RFC3339, rec)
		enn = append(enn, e)
	}
	return enn
}

// CountEnquiries - how many enquiries are stored?
func CountEnquiries() int {
	const Q = `SELECT COUNT(*) FROM enquiries`
	var n int
	if err := EASStore.QueryRow(Q).Scan(&n); err != nil {
		return 0
	}
	return n
}

//
// CHECK-INS AND EDGES
//

func InsertCheckins(ckk []str.Checkin) {
	const QT = `INSERT INTO checkins (userid, stamp, lat, lon, locationid) VALUES (?, ?, ?, ?, ?)`

	tx, err := EASStore.Begin()
	Msg.EC(err)
	stmt, err := tx.Prepare(QT)
	Msg.EC(err)

	for i := 0; i < len(ckk); i++ {
		_, e := stmt.Exec(ckk[i].UserID, ckk[i].Stamp.Format(time.RFC3339), ckk[i].Lat, ckk[i].Lon, ckk[i].LocationID)
		Msg.EC(e)
	}
	Msg.EC(tx.Commit())
}

func InsertEdges(edd []str.SocialEdge) {
	const QT = `INSERT INTO socialedges (a, b) VALUES (?, ?)`

	tx, err := EASStore.Begin()
	Msg.EC(err)
	stmt, err := tx.Prepare(QT)
	Msg.EC(err)

	for i := 0; i < len(edd); i++ {
		_, e := stmt.Exec(edd[i].A, edd[i].B)
		Msg.EC(e)
	}
	Msg.EC(tx.Commit())
}

// GetCheckinsBetween - the check-ins inside an inclusive date window
func GetCheckinsBetween(from time.Time, to time.Time) []str.Checkin {
	const Q = `SELECT userid, stamp, lat, lon, locationid FROM checkins WHERE stamp >= ? AND stamp <= ? ORDER BY stamp`

	rows, err := EASStore.Query(Q, from.Format(time.RFC3339), to.Format(time.RFC3339))
	Msg.EC(err)
	defer rows.Close()

	var ckk []str.Checkin
	for rows.Next() {
		var c str.Checkin
		var stamp string
		Msg.EC(rows.Scan(&c.UserID, &stamp, &c.Lat, &c.Lon, &c.LocationID))
		c.Stamp, _ = time.Parse(time.RFC3339, stamp)
		ckk = append(ckk, c)
	}
	return ckk
}

func CountCheckins() int {
	const Q = `SELECT COUNT(*) FROM checkins`
	var n int
	if err := EASStore.QueryRow(Q).Scan(&n); err != nil {
		return 0
	}
	return n
}

// GetEdges - the whole social edge list
func GetEdges() []str.SocialEdge {
	const Q = `SELECT a, b FROM socialedges`

	rows, err := EASStore.Query(Q)
	Msg.EC(err)
	defer rows.Close()

	var edd []str.SocialEdge
	for rows.Next() {
		var e str.SocialEdge
		Msg.EC(rows.Scan(&e.A, &e.B))
		edd = append(edd, e)
	}
	return edd
}

//
// RUN METADATA
//

// RecordModelRun - one row per lda/classifier training pass
func RecordModelRun(jobid string, kind string, name string, started time.Time, winner string, score float64) {
	const QT = `INSERT INTO modelruns (jobid, kind, name, started, finished, winner, score) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := EASStore.Exec(QT, jobid, kind, name, started.Format(time.RFC3339), time.Now().Format(time.RFC3339), winner, score)
	Msg.EC(err)
}

// LatestModelRun - most recent run of a kind; name and winner come back empty when there has never been one
func LatestModelRun(kind string) (string, string, float64) {
	const Q = `SELECT name, winner, score FROM modelruns WHERE kind = ? ORDER BY finished DESC LIMIT 1`

	var name, winner string
	var score float64
	if err := EASStore.QueryRow(Q, kind).Scan(&name, &winner, &score); err != nil {
		return "", "", 0
	}
	return name, winner, score
}

// RecordExtractRun - log a docx extraction pass
func RecordExtractRun(xr str.ExtractRun) {
	const QT = `INSERT INTO extractruns (started, source, outdir, archive, tables_found, rows_written) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := EASStore.Exec(QT, xr.Started.Format(time.RFC3339), xr.Source, xr.OutDir, xr.Archive, xr.Tables, xr.Rows)
	Msg.EC(err)
}
