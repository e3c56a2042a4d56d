//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/topics"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

// model-building is heavy; cap the simultaneous jobs and turn the rest away
var trainjobs = make(chan struct{}, vv.MAXTRAINJOBS)

// analysisreturn - the JSON wrapper the frontpage js unpacks into its divs
type analysisreturn struct {
	Results string `json:"results"`
	Image   string `json:"image"`
}

//
// ROUTING
//

// RtTopicsModel - hunt for the best LDA model over the enquiry corpus; report tables and charts
func RtTopicsModel(c echo.Context) error {
	const (
		BUSY  = `<p class="failmessage">The server is already running the maximum number of model-building jobs. Try again shortly.</p>`
		EMPTY = `<p class="failmessage">No enquiries are loaded; there is nothing to model.</p>`
		FAIL  = `<p class="failmessage">Model selection failed: %s</p>`
		TOOK  = `<p class="modeltiming">%d documents; %d terms; model selection took %.1fs</p>`
	)

	jobid := gen.Purgechars(vv.BADCHARS, c.Param("id"))
	if jobid == "" {
		return emptyjsreturn(c)
	}

	select {
	case trainjobs <- struct{}{}:
		defer func() { <-trainjobs }()
	default:
		return gen.JSONresponse(c, analysisreturn{Results: BUSY})
	}

	defer func() { vlt.WSInfo.Del <- jobid }()

	enn := db.GetEnquiries("")
	if len(enn) == 0 {
		return gen.JSONresponse(c, analysisreturn{Results: EMPTY})
	}

	bags := topics.BuildCorpus(enn)

	mr, err := topics.SelectModel(jobid, bags)
	if err != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(FAIL, err.Error())})
	}

	took := mr.Run.Finished.Sub(mr.Run.Started).Seconds()

	htm := topics.TopicSummaryTable(mr) + topics.TopSentencesTable(mr) +
		fmt.Sprintf(TOOK, mr.Run.Documents, mr.Run.Vocabulary, took)

	img := coherenceline(mr.Run)
	img += topicscatter(topics.EmbedDocs(mr))

	return gen.JSONresponse(c, analysisreturn{Results: htm, Image: img})
}
