//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/sum"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// ROUTING
//

// RtSummariser - extractive summary of the posted text within the requested length window
func RtSummariser(c echo.Context) error {
	const (
		NOTEXT = `<p class="failmessage">There was no text to summarise.</p>`
		BADBND = `<p class="failmessage">%s</p>`
		FAIL   = `<p class="failmessage">Summarising failed: %s</p>`
		GOT    = `<p class="summaryhead">Summary (%d&ndash;%d words requested; %d words of input):</p><p class="summarybody">%s</p>`
	)

	text := c.FormValue("text")
	if len(text) > vv.MAXINPUTLEN {
		text = text[0:vv.MAXINPUTLEN]
	}

	if strings.TrimSpace(text) == "" {
		return gen.JSONresponse(c, analysisreturn{Results: NOTEXT})
	}

	words := len(strings.Fields(text))

	b, err := sum.ParseBounds(c.FormValue("lower"), c.FormValue("upper"), words)
	if err != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(BADBND, err.Error())})
	}

	s, err := sum.Summarise(text, b)
	if err != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(FAIL, err.Error())})
	}

	return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(GOT, b.Lower, b.Upper, words, s)})
}
