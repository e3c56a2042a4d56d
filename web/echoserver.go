//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		} else {
			last := ua[len(ua)-1]
			buf.Write([]byte(last))
			return 1, nil
		}
	}

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	// scanning attempts will spam 404s & 500s; block IPs that do this
	// see "policerequestandresponse.go" for these functions
	go vlt.IPBlacklistKeeper()
	go vlt.ResponseStatsKeeper()
	e.Use(vlt.PoliceRequestAndResponse)

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// EAS ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)

	// [b] css and js ("rt-embedded.go")

	e.GET("/emb/css/easstyles.css", RtEmbCSS)
	e.GET("/emb/js/:file", RtEmbJS)
	e.GET("/favicon.ico", RtEbmFavicon)

	//
	// [c] summariser ("rt-summariser.go")
	//

	e.POST("/summary/make", RtSummariser) // form fields: text, lower, upper

	//
	// [d] classifier ("rt-classifier.go")
	//

	e.GET("/clf/train/:id", RtClassifierTrain) // "u: /clf/train/f1203b37"
	e.POST("/clf/predict", RtClassifierPredict)

	//
	// [e] topic models ("rt-topics.go")
	//

	e.GET("/topics/model/:id", RtTopicsModel) // "u: /topics/model/1af7da2c"

	//
	// [f] check-in dashboard ("rt-checkins.go")
	//

	e.GET("/checkins/dash", RtCheckinsDash) // "u: /checkins/dash?from=2010-03-01&to=2010-03-31"

	//
	// [g] term neighbors ("rt-neighbors.go")
	//

	e.GET("/nn/query/:term", RtNeighbors) // "u: /nn/query/tariff"

	//
	// [h] tariff table extraction ("rt-extract.go")
	//

	e.GET("/extract/run", RtExtract) // "u: /extract/run?src=schedule.docx"

	//
	// [i] websocket ("rt-websocket.go")
	//

	e.GET("/ws", RtWebsocket)

	//
	// [j] admin/json ("rt-admin.go")
	//

	e.GET("/admin/stats", RtAdminStats)
	e.GET("/admin/modelruns", RtAdminModelRuns)

	// [k] traffic bot ("trafficbot.go")
	// only the goroutine running the bot is supposed to request this

	e.GET("/bot/ack", RtBotAck)

	// next will do nothing if Config is not requesting these
	go runselftests()
	go activatetrafficbot()

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
