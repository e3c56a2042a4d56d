//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/clf"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// ROUTING
//

// RtClassifierTrain - grid over the candidate models; persist the winner; report the scores
func RtClassifierTrain(c echo.Context) error {
	const (
		BUSY = `<p class="failmessage">The server is already running the maximum number of model-building jobs. Try again shortly.</p>`
		FAIL = `<p class="failmessage">Training failed: %s</p>`
		HEAD = `
		<table class="modeltable">
		<tr><th>candidate</th><th>test accuracy</th></tr>`
		ROW  = `<tr%s><td class="modelsent">%s</td><td class="modelscore">%.4f</td></tr>`
		TAIL = `</table>`
		SUMM = `<p class="modeltiming">winner: %s (%.4f) over %d labels; %d train / %d test; saved as "%s"; took %.1fs</p>`
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

	run, err := clf.Train(jobid)
	if err != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(FAIL, err.Error())})
	}

	names := gen.StringMapKeysIntoSlice(run.Scores)
	sort.Slice(names, func(i, j int) bool { return run.Scores[names[i]] > run.Scores[names[j]] })

	var rows []string
	for i, n := range names {
		nth := ""
		if i%2 == 1 {
			nth = ` class="nthrow"`
		}
		rows = append(rows, fmt.Sprintf(ROW, nth, n, run.Scores[n]))
	}

	took := run.Finished.Sub(run.Started).Seconds()

	htm := HEAD + strings.Join(rows, "\n") + TAIL +
		fmt.Sprintf(SUMM, run.Winner, run.Accuracy, len(run.Labels), run.TrainSize, run.TestSize, run.Name, took)

	return gen.JSONresponse(c, analysisreturn{Results: htm})
}

// RtClassifierPredict - label one enquiry with the current best model
func RtClassifierPredict(c echo.Context) error {
	const (
		NOTEXT = `<p class="failmessage">There was no text to classify.</p>`
		FAIL   = `<p class="failmessage">Classification failed: %s</p>`
		GOT    = `<p class="prediction">model "%s" says: <span class="predictedlabel">%s</span></p>`
	)

	text := c.FormValue("text")
	if len(text) > vv.MAXINPUTLEN {
		text = text[0:vv.MAXINPUTLEN]
	}

	if strings.TrimSpace(text) == "" {
		return gen.JSONresponse(c, analysisreturn{Results: NOTEXT})
	}

	label, modelname, err := clf.Predict(text)
	if err != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(FAIL, err.Error())})
	}

	return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(GOT, modelname, label)})
}
