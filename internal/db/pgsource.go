//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

// PostgreSQL is an optional upstream for the enquiry corpus: sites that already hold their
// ticketing data in postgres can point "-pg" at it instead of shipping a CSV

var (
	SQLPool *pgxpool.Pool
)

// FillDBConnectionPool - build the pgxpool that imports will Acquire() from
func FillDBConnectionPool(cfg str.CurrentConfiguration) *pgxpool.Pool {
	// it is not clear that the casual user gains much from a pool; one import at a time is the common case

	const (
		UTPL    = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
		FAIL1   = "Configuration error. Could not execute ParseConfig(url) via '%s'"
		FAIL2   = "Could not connect to PostgreSQL"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is configuration problem; see the following response from PostgreSQL:`
	)

	mn := cfg.WorkerCount
	mx := 2 * cfg.WorkerCount

	pl := cfg.PGLogin
	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)

	config, e := pgxpool.ParseConfig(url)
	if e != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, url))
		os.Exit(0)
	}

	thepool, e := pgxpool.NewWithConfig(context.Background(), config)
	if e != nil {
		Msg.MAND(FAIL2)
		if strings.Contains(e.Error(), ERRRUN) {
			Msg.MAND(fmt.Sprintf(FAILRUN, ERRRUN, pl.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			Msg.MAND(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(e.Error(), ERRSRV)
			Msg.CRIT(parts[1])
		}
		Msg.ExitOrHang(0)
	}
	return thepool
}

// GetDBConnection - Acquire() a connection from the main pgxpool
func GetDBConnection() *pgxpool.Conn {
	conn, e := SQLPool.Acquire(context.Background())
	Msg.EC(e)
	return conn
}

// ImportEnquiriesFromPG - pull the enquiry corpus out of postgres and into the local store
func ImportEnquiriesFromPG() int {
	const (
		Q    = `SELECT received, category, body FROM service_enquiries ORDER BY received`
		MSG1 = "ImportEnquiriesFromPG() copied %d enquiries"
	)

	if SQLPool == nil {
		SQLPool = FillDBConnectionPool(*lnch.Config)
	}

	dbconn := GetDBConnection()
	defer dbconn.Release()

	foundrows, e := dbconn.Query(context.Background(), Q)
	Msg.EC(e)

	type pgrow struct {
		Received string
		Category string
		Body     string
	}

	rr, e := pgx.CollectRows(foundrows, pgx.RowToStructByPos[pgrow])
	Msg.EC(e)

	enn := make([]str.Enquiry, 0, len(rr))
	for i := range rr {
		enn = append(enn, str.Enquiry{
			Received: parseflexibly(rr[i].Received),
			Category: rr[i].Category,
			Text:     rr[i].Body,
		})
	}

	InsertEnquiries(enn)
	Msg.FYI(fmt.Sprintf(MSG1, len(enn)))
	return len(enn)
}
