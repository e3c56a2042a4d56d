//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/mm"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
	"github.com/t-mercer/EnquiryAnalysisServer/web"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

// main - launch the hubs, fill the stores, and then serve forever
func main() {
	const (
		MSG1 = "%d enquiries loaded"
		MSG2 = "%d check-ins and %d friendships loaded"
		MSG3 = "main() post-initialization runtime.GC() 👉 %s"
	)

	lnch.LookForConfigFile()
	lnch.ConfigAtLaunch()

	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	}

	if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	printversion()

	Msg = lnch.NewMessageMakerConfigured()
	Msg.LogPaths("main() post-initialization")

	// the hubs have to spin up before anything tries to talk to them
	go mm.PathInfoHub()
	go vlt.WSJobInfoHub()
	go vlt.WebsocketPool.WSPoolStartListening()

	start := time.Now()
	previous := time.Now()

	// [a] the stores

	db.OpenStore(lnch.Config.SQLiteFile)
	db.OpenVocabSQLite()

	lnch.SetConfigPass()

	// [b] the corpus: postgres when credentials exist, the CSVs otherwise

	ne := db.CountEnquiries()
	if ne == 0 {
		if lnch.Config.PGLogin.Pass != "" {
			db.FillDBConnectionPool(*lnch.Config)
			ne = db.ImportEnquiriesFromPG()
		} else {
			ne = db.LoadEnquiriesCSV(lnch.Config.EnquiriesFile)
		}
	}
	Msg.Timer("A1", fmt.Sprintf(MSG1, ne), start, previous)
	previous = time.Now()

	nc := db.CountCheckins()
	if nc == 0 {
		nc = db.LoadCheckinsCSV(lnch.Config.CheckinsFile)
	}
	nf := len(db.GetEdges())
	if nf == 0 {
		nf = db.LoadEdgesCSV(lnch.Config.EdgesFile)
	}
	Msg.Timer("A2", fmt.Sprintf(MSG2, nc, nf), start, previous)
	previous = time.Now()

	// [c] the normaliser needs the corpus before the first route can use it

	txt.PrimeNormaliser()

	if lnch.Config.ManualGC {
		runtime.GC()
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		Msg.PEEK(fmt.Sprintf(MSG3, fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)))
	}

	if lnch.Config.TickerActive {
		go Msg.Ticker(vv.TICKERDELAY)
	}

	web.StartEchoServer()
}

// printversion - the banner unless a quiet start was requested
func printversion() {
	lnch.PrintVersion(*lnch.Config)
	if !lnch.Config.QuietStart {
		fmt.Println(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL))
	}
	lnch.PrintBuildInfo(*lnch.Config)
}
