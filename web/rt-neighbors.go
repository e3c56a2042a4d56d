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
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vec"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// ROUTING
//

// RtNeighbors - embed the corpus (or fetch the stored embeddings) and graph the nearest neighbors of a term
func RtNeighbors(c echo.Context) error {
	const (
		NOTERM  = `<p class="failmessage">There was no term to look for.</p>`
		NOMODEL = `<p class="failmessage">»%s« is not in the model's vocabulary.</p>`
		SETTMPL = "model: %s; neighbors: %d; web: %s"
	)

	term := gen.Purgechars(vv.BADCHARS, c.Param("term"))
	term = strings.ToLower(strings.TrimSpace(term))

	if term == "" {
		return gen.JSONresponse(c, analysisreturn{Results: NOTERM})
	}

	nn := vec.GenerateNeighborsData(term)
	if len(nn[term]) == 0 {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(NOMODEL, term)})
	}

	ext := "simple"
	if lnch.Config.VectorWebExt {
		ext = "expanded"
	}

	settings := fmt.Sprintf(SETTMPL, lnch.Config.VectorModel, lnch.Config.VectorNeighb, ext)

	img := neighborsgraph(term, settings, nn)

	// the table is the graph; results stay empty unless the term missed
	return gen.JSONresponse(c, analysisreturn{Image: img})
}
