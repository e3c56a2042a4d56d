//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package docx

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

const (
	EXTRACTROOT = "eas-extractions"
	CSVHEADER   = "standardised_code,description,usage,rate"
)

// Record - one cleaned row of the reference table
type Record struct {
	Code        string
	Description string
	Usage       string
	Rate        string
}

// RunExtraction - docx in, a timestamped directory of CSVs and a zip archive out
func RunExtraction(source string) (str.ExtractRun, error) {
	const (
		MSG1  = "RunExtraction() pulled %d rows from the first table of '%s'"
		MSG2  = "RunExtraction() wrote '%s'"
		FAIL1 = "'%s' contains no tables"
		FAIL2 = "the first table of '%s' has no usable rows"
	)

	started := time.Now()

	tables, err := ReadTables(source)
	if err != nil {
		return str.ExtractRun{}, err
	}

	if len(tables) == 0 {
		return str.ExtractRun{}, fmt.Errorf(FAIL1, source)
	}

	records := CleanTable(tables[0])
	if len(records) == 0 {
		return str.ExtractRun{}, fmt.Errorf(FAIL2, source)
	}

	Msg.NOTE(fmt.Sprintf(MSG1, len(records), source))

	outdir := filepath.Join(EXTRACTROOT, started.Format(vv.RUNDIRTMPL))
	if e := os.MkdirAll(outdir, os.FileMode(0700)); e != nil {
		return str.ExtractRun{}, e
	}

	csvpath := filepath.Join(outdir, "table-01.csv")
	if e := writecsv(csvpath, records); e != nil {
		return str.ExtractRun{}, e
	}

	archive := outdir + ".zip"
	if e := zipdir(outdir, archive); e != nil {
		return str.ExtractRun{}, e
	}

	Msg.NOTE(fmt.Sprintf(MSG2, archive))

	xr := str.ExtractRun{
		Started: started,
		Source:  source,
		OutDir:  outdir,
		Archive: archive,
		Tables:  1,
		Rows:    len(records),
	}

	db.RecordExtractRun(xr)

	return xr, nil
}

// CleanTable - header row off, implausible code rows out, the rest standardised and split
func CleanTable(t Table) []Record {
	var records []Record

	for i, row := range t {
		if i == 0 {
			// header
			continue
		}
		if len(row) < 3 {
			continue
		}
		if !PlausibleCode(row[0]) {
			continue
		}

		blob := row[1]
		desc, usage := SplitUsage(blob)
		desc = SplitDescription(desc)

		records = append(records, Record{
			Code:        StandardiseCode(row[0]),
			Description: fillempty(desc),
			Usage:       fillempty(usage),
			Rate:        fillempty(strings.TrimSpace(row[2])),
		})
	}

	return records
}

func fillempty(s string) string {
	if len(strings.TrimSpace(s)) == 0 {
		return vv.EMPTYCELLFILL
	}
	return s
}

func writecsv(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if e := w.Write(strings.Split(CSVHEADER, ",")); e != nil {
		return e
	}
	for _, r := range records {
		if e := w.Write([]string{r.Code, r.Description, r.Usage, r.Rate}); e != nil {
			return e
		}
	}
	w.Flush()
	return w.Error()
}

// zipdir - archive the run directory next to itself
func zipdir(dir string, archive string) error {
	f, err := os.Create(archive)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	defer func() { _ = zw.Close() }()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, e := filepath.Rel(filepath.Dir(dir), path)
		if e != nil {
			return e
		}

		w, e := zw.Create(filepath.ToSlash(rel))
		if e != nil {
			return e
		}

		src, e := os.Open(path)
		if e != nil {
			return e
		}
		defer func() { _ = src.Close() }()

		_, e = io.Copy(w, src)
		return e
	})
}
