//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/mm"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// ROUTING
//

// RtAdminStats - JSON snapshot of the server's health for scripts and the curious
func RtAdminStats(c echo.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	responder := mm.PIReply{Request: true, Response: make(chan map[string]int)}
	mm.PIRequest <- responder
	paths := <-responder.Response

	jso := struct {
		Version    string                `json:"version"`
		Uptime     string                `json:"uptime"`
		HeapMB     uint64                `json:"heapmb"`
		Goroutines int                   `json:"goroutines"`
		Enquiries  int                   `json:"enquiries"`
		Checkins   int                   `json:"checkins"`
		Responses  vlt.EchoResponseStats `json:"responses"`
		Paths      map[string]int        `json:"paths"`
	}{
		Version:    vv.VERSION + lnch.VersSuppl,
		Uptime:     time.Since(vv.LaunchTime).Truncate(time.Second).String(),
		HeapMB:     mem.HeapAlloc / 1024 / 1024,
		Goroutines: runtime.NumGoroutine(),
		Enquiries:  db.CountEnquiries(),
		Checkins:   db.CountCheckins(),
		Responses:  *vlt.EchoServerStats,
		Paths:      paths,
	}

	return gen.JSONresponse(c, jso)
}

// RtAdminModelRuns - the latest stored model of each kind
func RtAdminModelRuns(c echo.Context) error {
	tn, tw, ts := db.LatestModelRun("topics")
	cn, cw, cs := db.LatestModelRun("classifier")

	type runinfo struct {
		Name   string  `json:"name"`
		Winner string  `json:"winner"`
		Score  float64 `json:"score"`
	}

	jso := struct {
		Topics     runinfo `json:"topics"`
		Classifier runinfo `json:"classifier"`
	}{
		Topics:     runinfo{Name: tn, Winner: tw, Score: ts},
		Classifier: runinfo{Name: cn, Winner: cw, Score: cs},
	}

	return gen.JSONresponse(c, jso)
}
