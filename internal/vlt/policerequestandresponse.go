//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//
// RESPONSEPOLICING: the dashboard is meant to sit on a council intranet, but it will
// inevitably get scanned if exposed; watch the response codes and shut the door on
// any IP that keeps generating errors
//

// EchoResponseStats - running totals for the response codes the dashboard cares about
type EchoResponseStats struct {
	TwoHundred  uint64
	FourOhThree uint64
	FourOhFour  uint64
	FourOhFive  uint64
	FiveHundred uint64
}

// gatequery - "may this IP in?"; the keeper answers on the reply channel
type gatequery struct {
	ip    string
	entry chan bool
}

// offence - a strike against an IP; the keeper reports back whether this one tipped it onto the banlist
type offence struct {
	ip     string
	reason string
	banned chan bool
}

// tally - one finished response for the stats keeper
type tally struct {
	code int
	ip   string
	uri  string
}

var (
	gateRD          = make(chan gatequery)
	offenceWR       = make(chan offence)
	tallyWR         = make(chan tally)
	EchoServerStats = &EchoResponseStats{}
)

// localip - the self test and the traffic bot drive the server from loopback; they are never policed
func localip(ip string) bool {
	return ip == "127.0.0.1" || ip == "::1" || ip == "localhost"
}

// PoliceRequestAndResponse - echo middleware: consult the banlist before serving, tally the result after
func PoliceRequestAndResponse(next echo.HandlerFunc) echo.HandlerFunc {
	const (
		DENIED  = `refusing to serve IP address %s: too many previous response code errors`
		PROXYRQ = `open proxy scan`
		SLOWDN  = 3
	)

	return func(c echo.Context) error {
		ip := c.RealIP()
		uri := c.Request().RequestURI

		if localip(ip) {
			return next(c)
		}

		ask := gatequery{ip: ip, entry: make(chan bool)}
		gateRD <- ask
		admitted := <-ask.entry

		// proxy scanners ask for a full URL instead of a path
		if strings.HasPrefix(uri, "http:") || strings.HasPrefix(uri, "https:") {
			admitted = false
			strike(ip, uri, PROXYRQ)
		}

		if !admitted {
			tallyWR <- tally{code: 403, ip: ip, uri: uri}
			// make the scanner wait for its refusal
			time.Sleep(SLOWDN * time.Second)
			return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf(DENIED, ip))
		}

		// the handler has to run before the status is read or every tally says "200"
		if err := next(c); err != nil {
			c.Error(err)
		}

		tallyWR <- tally{code: c.Response().Status, ip: ip, uri: uri}
		return nil
	}
}

// strike - report an offence to the banlist keeper and log a fresh ban
func strike(ip string, uri string, reason string) {
	const (
		NOTE = `IP address %s received a strike (%s) for URI "%s"`
	)
	off := offence{ip: ip, reason: reason, banned: make(chan bool)}
	offenceWR <- off
	if !<-off.banned {
		Msg.WARN(fmt.Sprintf(NOTE, ip, reason, uri))
	}
}

// IPBlacklistKeeper - sole owner of the strike counts and the banlist; runs forever
func IPBlacklistKeeper() {
	const (
		STRIKESALLOWED = 2
		BANNED         = `IP address %s was banned (%s); %d address(es) on the banlist`
	)

	strikes := make(map[string]int)
	banlist := make(map[string]struct{})

	for {
		select {
		case ask := <-gateRD:
			_, bad := banlist[ask.ip]
			ask.entry <- !bad
		case off := <-offenceWR:
			strikes[off.ip]++
			if strikes[off.ip] > STRIKESALLOWED {
				banlist[off.ip] = struct{}{}
				Msg.NOTE(fmt.Sprintf(BANNED, off.ip, off.reason, len(banlist)))
				off.banned <- true
			} else {
				off.banned <- false
			}
		}
	}
}

// ResponseStatsKeeper - sole owner of EchoServerStats; strikes the IPs behind the suspect codes; runs forever
func ResponseStatsKeeper() {
	const (
		RSN404 = `StatusNotFound`
		RSN405 = `MethodNotAllowed`
		RSN500 = `StatusInternalServerError`
		FYI200 = `StatusOK count is %d`
		FRQ200 = 1000
		FYI403 = `[%s] StatusForbidden count is %d; last refusal was %s requesting "%s"`
		FRQ403 = 50
		FYI404 = `[%s] StatusNotFound count is %d`
		FRQ404 = 50
		FYI405 = `[%s] MethodNotAllowed count is %d`
		FRQ405 = 5
		FYI500 = `[%s] StatusInternalServerError count is %d`
		FRQ500 = 1
	)

	report := func(v uint64, frq uint64, fyi string) {
		if v%frq == 0 {
			Msg.NOTE(fmt.Sprintf(fyi, time.Now().Format(time.RFC822), v))
		}
	}

	for {
		got := <-tallyWR
		switch got.code {
		case 200:
			EchoServerStats.TwoHundred++
			if EchoServerStats.TwoHundred%FRQ200 == 0 {
				Msg.NOTE(fmt.Sprintf(FYI200, EchoServerStats.TwoHundred))
			}
		case 403:
			EchoServerStats.FourOhThree++
			if EchoServerStats.FourOhThree%FRQ403 == 0 {
				Msg.NOTE(fmt.Sprintf(FYI403, time.Now().Format(time.RFC822), EchoServerStats.FourOhThree, got.ip, got.uri))
			}
		case 404:
			// the dashboard has no deep links worth guessing at; a 404 is nearly always a scanner
			EchoServerStats.FourOhFour++
			report(EchoServerStats.FourOhFour, FRQ404, FYI404)
			strike(got.ip, got.uri, RSN404)
		case 405:
			EchoServerStats.FourOhFive++
			report(EchoServerStats.FourOhFive, FRQ405, FYI405)
			strike(got.ip, got.uri, RSN405)
		case 500:
			EchoServerStats.FiveHundred++
			report(EchoServerStats.FiveHundred, FRQ500, FYI500)
			strike(got.ip, got.uri, RSN500)
		default:
			// 101 from "/ws" and the rest are not interesting
		}
	}
}
