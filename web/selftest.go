//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

// time tests and profiling tests

// runselftests - loop selftestsuite()
func runselftests() {
	if lnch.Config.SelfTest > 0 {
		go func() {
			for i := 0; i < lnch.Config.SelfTest; i++ {
				Msg.MAND(fmt.Sprintf("Running Selftest %d of %d", i+1, lnch.Config.SelfTest))
				selftestsuite()
			}
		}()
	}
}

// selftestsuite - walk every route section against the live listener
func selftestsuite() {
	const (
		MSG1 = "summarise %d words of tariff prose"
		MSG2 = "classify one enquiry"
		MSG3 = "train the classifier grid"
		MSG4 = "model selection between k=%d and k=%d"
		MSG5 = "check-in dashboard for one month"
		MSG6 = "nearest neighbor test: %s"
		MSG7 = "admin json snapshots"
		MSG8 = "vocabulary regexp query found %d terms"

		TESTTEXT = `We are an importer of horticultural supplies and wish to confirm the correct commodity code
for polished granite setts intended for garden landscaping. The goods arrive in bulk bags of one tonne.
Our forwarder has suggested two alternative classifications and the duty difference is significant.
We would also like to know whether any tariff preference applies to goods of Norwegian origin.
Please advise which code applies and what documentation is required at import.`
	)

	jid := func() string {
		return "selftest-" + strings.Replace(uuid.New().String(), "-", "", -1)
	}

	time.Sleep(vv.WSPOLLINGPAUSE * 3)
	Msg.MAND("entering selftestsuite mode (6 segments)")

	start := time.Now()
	previous := time.Now()

	u := fmt.Sprintf("http://%s:%d/", lnch.Config.HostIP, lnch.Config.HostPort)

	getandcheck := func(tail string) {
		r, err := http.Get(u + tail)
		Msg.EC(err)
		drainandclose(r)
	}

	postandcheck := func(tail string, vals url.Values) {
		r, err := http.PostForm(u+tail, vals)
		Msg.EC(err)
		drainandclose(r)
	}

	Msg.WARN("[I] summariser test")
	postandcheck("summary/make", url.Values{"text": {TESTTEXT}})
	Msg.Timer("A1", fmt.Sprintf(MSG1, len(strings.Fields(TESTTEXT))), start, previous)
	previous = time.Now()

	Msg.WARN("[II] classifier tests")
	getandcheck("clf/train/" + jid())
	Msg.Timer("B1", MSG3, start, previous)
	previous = time.Now()

	postandcheck("clf/predict", url.Values{"text": {TESTTEXT}})
	Msg.Timer("B2", MSG2, start, previous)
	previous = time.Now()

	Msg.WARN("[III] topic model test")
	getandcheck("topics/model/" + jid())
	Msg.Timer("C1", fmt.Sprintf(MSG4, vv.LDAMINTOPICS, lnch.Config.LdaMaxTopics-1), start, previous)
	previous = time.Now()

	Msg.WARN("[IV] check-in dashboard test")
	getandcheck("checkins/dash?from=2010-03-01&to=2010-03-31")
	Msg.Timer("D1", MSG5, start, previous)
	previous = time.Now()

	Msg.WARN("[V] nearest neighbor vectorization tests")
	ovm := lnch.Config.VectorModel

	// glove seizes scads of memory and never releases it
	vmod := []string{"w2v", "lexvec"}
	count := 1
	for _, m := range vmod {
		lnch.Config.VectorModel = m
		getandcheck("nn/query/tariff")
		Msg.Timer(fmt.Sprintf("E%d", count), fmt.Sprintf(MSG6, m), start, previous)
		previous = time.Now()
		count++
	}

	lnch.Config.VectorModel = ovm

	getandcheck("admin/stats")
	getandcheck("admin/modelruns")
	Msg.Timer("F1", MSG7, start, previous)
	previous = time.Now()

	Msg.WARN("[VI] vocabulary store test")
	tt := db.VocabGrep('t', "^tariff")
	Msg.Timer("G1", fmt.Sprintf(MSG8, len(tt)), start, previous)

	Msg.MAND("exiting selftestsuite mode")
}

// drainandclose - empty and close a response body so the keep-alive connection can be reused
func drainandclose(r *http.Response) {
	if r == nil {
		return
	}
	_, _ = io.Copy(io.Discard, r.Body)
	_ = r.Body.Close()
}
