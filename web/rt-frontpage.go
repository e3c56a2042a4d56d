//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/mm"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// ROUTING
//

// RtFrontpage - send the html for "/"
func RtFrontpage(c echo.Context) error {
	const (
		UPSTR    = "[%v] EAS uptime: %v [%s]"
		PADDING  = " ----------------- "
		STATTMPL = "%s: %d"
		SPACER   = "    "
	)

	gc := lnch.GitCommit
	if gc == "" {
		gc = "UNKNOWN"
	}
	ver := fmt.Sprintf("Version: %s [git: %s]", vv.VERSION+lnch.VersSuppl, gc)

	env := fmt.Sprintf("%s: %s - %s (%d workers)", runtime.Version(), runtime.GOOS, runtime.GOARCH, lnch.Config.WorkerCount)

	// t() will give the uptime
	var mem runtime.MemStats

	t := func(up time.Duration) string {
		runtime.ReadMemStats(&mem)
		heap := fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)
		tick := fmt.Sprintf(UPSTR, time.Now().Format(time.TimeOnly), up.Truncate(time.Minute), heap)
		return PADDING + tick + PADDING
	}

	// svd() will report what requests have been made
	svd := func() string {
		responder := mm.PIReply{Request: true, Response: make(chan map[string]int)}
		mm.PIRequest <- responder
		ctr := <-responder.Response

		exclude := []string{"main() post-initialization"}
		keys := gen.StringMapKeysIntoSlice(ctr)
		keys = gen.SetSubtraction(keys, exclude)
		sort.Strings(keys)

		var pairs []string
		for k := range keys {
			this := strings.TrimPrefix(keys[k], "Rt")
			this = strings.TrimSuffix(this, "()")
			pairs = append(pairs, fmt.Sprintf(SPACER+STATTMPL, this, ctr[keys[k]]))
		}
		return strings.Join(pairs, "\n")
	}

	// sample ticker output

	//      ----------------- [13:29:41] EAS uptime: 1m0s -----------------
	//
	//    CheckinsDash: 5
	//    ClassifierPredict: 2
	//    TopicsModel: 4

	subs := map[string]interface{}{
		"version":   vv.VERSION + lnch.VersSuppl,
		"longver":   ver,
		"env":       env,
		"ticker":    t(time.Since(vv.LaunchTime)) + "\n\n" + svd(),
		"enquiries": db.CountEnquiries(),
		"checkins":  db.CountCheckins(),
		"maxk":      lnch.Config.LdaMaxTopics,
		"vmodel":    lnch.Config.VectorModel,
	}

	f, e := efs.ReadFile("emb/frontpage.html")
	Msg.EC(e)

	tmpl, e := template.New("fp").Parse(string(f))
	Msg.EC(e)

	var b bytes.Buffer
	err := tmpl.Execute(&b, subs)
	Msg.EC(err)

	return c.HTML(http.StatusOK, b.String())
}
