//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

//
// FLAT-FILE LOADERS: CSV in, sqlite out; subsequent launches just query the store
//

// LoadEnquiriesCSV - "received,category,text" rows into the enquiries table
func LoadEnquiriesCSV(path string) int {
	const (
		MSG1  = "LoadEnquiriesCSV() loaded %d rows from '%s'"
		FAIL1 = `LoadEnquiriesCSV() could not open '%s'`
		FAIL2 = `LoadEnquiriesCSV() skipped a short row in '%s'`
	)

	f, err := os.Open(path)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, path))
		return 0
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// header row
	_, _ = r.Read()

	var enn []str.Enquiry
	for {
		record, e := r.Read()
		if errors.Is(e, io.EOF) {
			break
		}
		if e != nil || len(record) < 3 {
			Msg.TMI(fmt.Sprintf(FAIL2, path))
			continue
		}
		enn = append(enn, str.Enquiry{
			Received: parseflexibly(record[0]),
			Category: record[1],
			Text:     record[2],
		})
	}

	InsertEnquiries(enn)
	Msg.FYI(fmt.Sprintf(MSG1, len(enn), path))
	return len(enn)
}

// LoadCheckinsCSV - "userid,stamp,lat,lon,locationid" rows into the checkins table
func LoadCheckinsCSV(path string) int {
	const (
		MSG1  = "LoadCheckinsCSV() loaded %d rows from '%s'"
		FAIL1 = `LoadCheckinsCSV() could not open '%s'`
	)

	f, err := os.Open(path)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, path))
		return 0
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	_, _ = r.Read()

	var ckk []str.Checkin
	for {
		record, e := r.Read()
		if errors.Is(e, io.EOF) {
			break
		}
		if e != nil || len(record) < 5 {
			continue
		}
		uid, _ := strconv.ParseInt(record[0], 10, 64)
		lat, _ := strconv.ParseFloat(record[2], 64)
		lon, _ := strconv.ParseFloat(record[3], 64)
		ckk = append(ckk, str.Checkin{
			UserID:     uid,
			Stamp:      parseflexibly(record[1]),
			Lat:        lat,
			Lon:        lon,
			LocationID: record[4],
		})
	}

	InsertCheckins(ckk)
	Msg.FYI(fmt.Sprintf(MSG1, len(ckk), path))
	return len(ckk)
}

// LoadEdgesCSV - "a,b" friendship pairs into the socialedges table
func LoadEdgesCSV(path string) int {
	const (
		MSG1  = "LoadEdgesCSV() loaded %d rows from '%s'"
		FAIL1 = `LoadEdgesCSV() could not open '%s'`
	)

	f, err := os.Open(path)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, path))
		return 0
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	_, _ = r.Read()

	var edd []str.SocialEdge
	for {
		record, e := r.Read()
		if errors.Is(e, io.EOF) {
			break
		}
		if e != nil || len(record) < 2 {
			continue
		}
		a, _ := strconv.ParseInt(record[0], 10, 64)
		b, _ := strconv.ParseInt(record[1], 10, 64)
		edd = append(edd, str.SocialEdge{A: a, B: b})
	}

	InsertEdges(edd)
	Msg.FYI(fmt.Sprintf(MSG1, len(edd), path))
	return len(edd)
}

// parseflexibly - the files in the wild carry several stamp formats; try them in order
func parseflexibly(s string) time.Time {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"02/01/2006",
	}
	for _, f := range formats {
		if t, e := time.Parse(f, s); e == nil {
			return t
		}
	}
	return time.Time{}
}
