//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/docx"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
)

//
// ROUTING
//

// RtExtract - pull the tariff tables out of a word-processor file and leave CSVs + a zip behind
func RtExtract(c echo.Context) error {
	const (
		NOSRC = `<p class="failmessage">No source file was named; add ?src=somefile.docx to the request.</p>`
		FAIL  = `<p class="failmessage">Extraction failed: %s</p>`
		GOT   = `<p class="extractreport">Extracted %d rows from %d tables of "%s".<br>CSVs are in "%s"; the archive is "%s".</p>`
	)

	src := strings.TrimSpace(c.QueryParam("src"))
	if src == "" {
		return gen.JSONresponse(c, analysisreturn{Results: NOSRC})
	}

	xr, err := docx.RunExtraction(src)
	if err != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(FAIL, err.Error())})
	}

	htm := fmt.Sprintf(GOT, xr.Rows, xr.Tables, xr.Source, xr.OutDir, xr.Archive)

	return gen.JSONresponse(c, analysisreturn{Results: htm})
}
