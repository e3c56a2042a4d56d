//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/chk"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
)

//
// ROUTING
//

// RtCheckinsDash - daily counts, positions, and the social graph for a date window
func RtCheckinsDash(c echo.Context) error {
	const (
		DAYFMT  = "2006-01-02"
		BADDATE = `<p class="failmessage">'%s' is not a date; expected the format 2006-01-02.</p>`
		BADWIN  = `<p class="failmessage">The start of the window falls after its end.</p>`
		NODATA  = `<p class="failmessage">No check-ins between %s and %s.</p>`
		SUMM    = `<p class="modeltiming">%d check-ins by %d users between %s and %s; %d friendships among them</p>`
	)

	fs := c.QueryParam("from")
	ts := c.QueryParam("to")

	from, e := time.Parse(DAYFMT, fs)
	if e != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(BADDATE, fs)})
	}

	to, e := time.Parse(DAYFMT, ts)
	if e != nil {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(BADDATE, ts)})
	}

	if from.After(to) {
		return gen.JSONresponse(c, analysisreturn{Results: BADWIN})
	}

	ckk := chk.Window(from, to)
	if len(ckk) == 0 {
		return gen.JSONresponse(c, analysisreturn{Results: fmt.Sprintf(NODATA, fs, ts)})
	}

	days, counts := chk.DailyCounts(ckk)
	users := chk.ActiveUsers(ckk)
	edges := sortededges(chk.EdgesAmong(users))

	htm := fmt.Sprintf(SUMM, len(ckk), len(users), fs, ts, len(edges))

	settings := fmt.Sprintf("%s to %s", fs, ts)

	img := checkinsbar(days, counts)
	img += checkinscatter(ckk)
	img += socialgraph(settings, edges)

	return gen.JSONresponse(c, analysisreturn{Results: htm, Image: img})
}
