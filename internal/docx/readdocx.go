//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// DOCX READING: a .docx is a zip; the tables live in word/document.xml
//

// the xml namespace prefixes vary between generators; match on local names only

type xmldocument struct {
	Body xmlbody `xml:"body"`
}

type xmlbody struct {
	Tables []xmltable `xml:"tbl"`
}

type xmltable struct {
	Rows []xmlrow `xml:"tr"`
}

type xmlrow struct {
	Cells []xmlcell `xml:"tc"`
}

type xmlcell struct {
	Paragraphs []xmlparagraph `xml:"p"`
}

type xmlparagraph struct {
	Texts []string `xml:"r>t"`
}

// Table - rows of cell text; paragraph breaks inside a cell survive as newlines
type Table [][]string

// ReadTables - pull every table out of a .docx file
func ReadTables(path string) ([]Table, error) {
	const (
		DOCXML = "word/document.xml"
		FAIL1  = "could not open '%s': %s"
		FAIL2  = "'%s' contains no '%s'"
		FAIL3  = "could not parse '%s': %s"
	)

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, path, err.Error())
	}
	defer func() { _ = zr.Close() }()

	var raw []byte
	for _, f := range zr.File {
		if f.Name != DOCXML {
			continue
		}
		rc, e := f.Open()
		if e != nil {
			return nil, fmt.Errorf(FAIL1, path, e.Error())
		}
		raw, e = io.ReadAll(rc)
		_ = rc.Close()
		if e != nil {
			return nil, fmt.Errorf(FAIL1, path, e.Error())
		}
		break
	}

	if raw == nil {
		return nil, fmt.Errorf(FAIL2, path, DOCXML)
	}

	var doc xmldocument
	if e := xml.Unmarshal(raw, &doc); e != nil {
		return nil, fmt.Errorf(FAIL3, path, e.Error())
	}

	tables := make([]Table, len(doc.Body.Tables))
	for i, t := range doc.Body.Tables {
		for _, r := range t.Rows {
			row := make([]string, len(r.Cells))
			for j, c := range r.Cells {
				row[j] = celltext(c)
			}
			tables[i] = append(tables[i], row)
		}
	}

	return tables, nil
}

// celltext - paragraph texts joined with newlines
func celltext(c xmlcell) string {
	pp := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		pp[i] = strings.Join(p.Texts, "")
	}
	return strings.Join(pp, "\n")
}
