//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// TRAFFICBOT
//

// the bot exists to exercise the server against itself: wander the cheap routes,
// vary the think time, and leave the logs looking like a small crowd dropped by

// RtBotAck - a do-nothing target so the bot can always land somewhere
func RtBotAck(c echo.Context) error {
	const (
		MSG1 = "attempted access to RtBotAck() by foreign IP: '%s'"
	)

	if c.RealIP() != lnch.Config.HostIP {
		Msg.NOTE(fmt.Sprintf(MSG1, c.RealIP()))
		return nil
	}

	return c.String(http.StatusOK, "ack")
}

// activatetrafficbot - walk the route table for as many passes as the config requests
func activatetrafficbot() {
	const (
		MSG1 = "activatetrafficbot(): launching (%d passes)"
		MSG2 = "(pass %d of %d) the bot has made %d requests"
		MSG3 = "The traffic bot has finished and is now shutting down"
		URL  = "http://%s:%d%s"
	)

	if lnch.Config.BotPasses == 0 {
		return
	}

	// weights: the cheap routes soak up most of the traffic
	weighted := map[string]int{
		"/":                      5,
		"/emb/css/easstyles.css": 3,
		"/emb/js/eas.js":         3,
		"/favicon.ico":           1,
		"/admin/stats":           2,
		"/admin/modelruns":       2,
		"/bot/ack":               4,
	}

	var routes []string
	for r, w := range weighted {
		for i := 0; i < w; i++ {
			routes = append(routes, r)
		}
	}
	sort.Strings(routes)

	Msg.NOTE(fmt.Sprintf(MSG1, lnch.Config.BotPasses))

	time.Sleep(vv.BOTSTARTDELAY)

	start := time.Now()
	previous := time.Now()

	hits := make(map[string]int)
	count := 0

	for pass := 1; pass <= lnch.Config.BotPasses; pass++ {
		for range routes {
			r := routes[rand.Intn(len(routes))]

			u := fmt.Sprintf(URL, lnch.Config.HostIP, lnch.Config.HostPort, r)
			_, err := http.Get(u)
			if err != nil {
				Msg.WARN(err.Error())
				continue
			}

			hits[r]++
			count++

			if count%vv.BOTREPORTEVRY == 0 {
				Msg.Timer("TB", fmt.Sprintf(MSG2, pass, lnch.Config.BotPasses, count), start, previous)
				previous = time.Now()
			}

			// a human would pause here; so does the bot
			think := vv.BOTMINWAITMS + rand.Intn(vv.BOTMAXWAITMS-vv.BOTMINWAITMS)
			time.Sleep(time.Duration(think) * time.Millisecond)

			// if you do not throttle the bot it will violate MAXECHOREQPERSECONDPERIP
			time.Sleep(vv.BOTTHROTTLE)
		}
	}

	var report []string
	for _, r := range sortedbotroutes(hits) {
		report = append(report, fmt.Sprintf("    %s: %d", r, hits[r]))
	}
	Msg.NOTE(strings.Join(append([]string{MSG3}, report...), "\n"))
}

// sortedbotroutes - deterministic report order
func sortedbotroutes(hits map[string]int) []string {
	rr := make([]string, 0, len(hits))
	for r := range hits {
		rr = append(rr, r)
	}
	sort.Strings(rr)
	return rr
}
