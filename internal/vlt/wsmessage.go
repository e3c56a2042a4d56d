//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// PollData - the success and progress of a model-building job; can be converted to JSON and sent to the front end
type PollData struct {
	TotalJob  int    `json:"TotalJob"`
	Remain    int    `json:"Remain"`
	Scored    int    `json:"Scored"`
	Msg       string `json:"Msg"`
	Elapsed   string `json:"Elapsed"`
	Extra     string `json:"Extra"`
	ID        string `json:"ID"`
	Iteration int
	JType     string
}

// WSClient - a websocket client; the js in the browser will be the other end of the connection
type WSClient struct {
	ID   string
	Conn *websocket.Conn
	Pool *WSPool
}

// WSPool - a pool of WSClient
type WSPool struct {
	Add       chan *WSClient
	Remove    chan *WSClient
	ClientMap map[*WSClient]bool
	JSO       chan *WSJSOut
	ReadID    chan string
}

// WSJSOut - JSON to send to the browser
type WSJSOut struct {
	V     string `json:"value"`
	ID    string `json:"ID"`
	Close string `json:"close"`
}

// ReceiveID - get the job ID from the client; this is the first thing the js sends down the socket
func (c *WSClient) ReceiveID() {
	const (
		FAIL1 = `ReceiveID() failed`
		FAIL2 = `ReceiveID() declining to track agoraphobic job #%s`
	)

	quit := func() {
		c.Pool.Remove <- c
		_ = c.Conn.Close()
	}

	defer quit()

	for {
		_, m, e := c.Conn.ReadMessage()
		if e != nil {
			Msg.FYI(FAIL1)
			break
		}

		// will arrive with quotes around it
		id := string(m)
		id = strings.Replace(id, `"`, "", -1)

		if len(id) != 0 {
			c.ID = id
			c.Pool.ReadID <- id
			break
		} else {
			Msg.PEEK(fmt.Sprintf(FAIL2, id))
			break
		}
	}
}

// WSMessageLoop - the loop that sends the progress of a model-building job to the client; closes when the job finishes
func (c *WSClient) WSMessageLoop() {
	const (
		FAIL = `WSMessageLoop() never saw anything in the job info for %s`
	)

	getjobinfo := func() WSJobInfo {
		responder := WSJIReply{Key: c.ID, Response: make(chan WSJobInfo)}
		WSInfo.RequestInfo <- responder
		return <-responder.Response
	}

	// wait for the job to exist
	quick := time.NewTicker(vv.WSPOLLINGPAUSE)
	defer quick.Stop()

	seen := false
	for range quick.C {
		ji := getjobinfo()
		if ji.Exists && ji.Total != 0 {
			seen = true
			break
		}
		if !ji.Exists && seen {
			break
		}
		if !seen {
			// the job might not have been inserted yet; keep waiting a bit
			seen = ji.Exists
		}
	}

	if !seen {
		Msg.TMI(fmt.Sprintf(FAIL, c.ID))
	}

	// loop until the job disappears from the hub
	for {
		jobinfo := getjobinfo()
		if !jobinfo.Exists {
			break
		}

		pd := formatpoll(jobinfo)

		jso := &WSJSOut{
			V:     pd,
			ID:    c.ID,
			Close: "open",
		}

		c.Pool.JSO <- jso
		time.Sleep(vv.WSPOLLINGPAUSE)
	}

	// tell the client to close the connection on its end
	exit := &WSJSOut{
		V:     "",
		ID:    c.ID,
		Close: "close",
	}

	c.Pool.JSO <- exit
}

// WSPoolStartListening - the WSPool will listen for activity on its various channels (only call this once at launch)
func (pool *WSPool) WSPoolStartListening() {
	const (
		MSG1 = "Websocket Pool client size is now %d"
		MSG2 = "Dispatched %s"
		FAIL = "WSPoolStartListening() could not send JSON"
	)

	writemsg := func(jso *WSJSOut) {
		for cl := range pool.ClientMap {
			if cl.ID == jso.ID {
				js, y := json.Marshal(jso)
				if y != nil {
					Msg.WARN(FAIL)
				}
				e := cl.Conn.WriteMessage(websocket.TextMessage, js)
				if e != nil {
					pool.Remove <- cl
				}
			}
		}
	}

	for {
		select {
		case id := <-pool.ReadID:
			Msg.TMI(fmt.Sprintf(MSG2, id))
		case client := <-pool.Add:
			pool.ClientMap[client] = true
			Msg.TMI(fmt.Sprintf(MSG1, len(pool.ClientMap)))
		case client := <-pool.Remove:
			delete(pool.ClientMap, client)
			Msg.TMI(fmt.Sprintf(MSG1, len(pool.ClientMap)))
		case jso := <-pool.JSO:
			writemsg(jso)
		}
	}
}

// WSFillNewPool - build a new WSPool (one and only one built at app startup)
func WSFillNewPool() *WSPool {
	return &WSPool{
		Add:       make(chan *WSClient),
		Remove:    make(chan *WSClient),
		ClientMap: make(map[*WSClient]bool),
		JSO:       make(chan *WSJSOut),
		ReadID:    make(chan string),
	}
}

// formatpoll - build the html that the client will see in the progress box
func formatpoll(ji WSJobInfo) string {
	const (
		FU = `Finishing up...&nbsp;`
		MS = `Model <code>%d</code> of <code>%d</code>`
		SC = `&nbsp;(<code>%d</code> scored)`
		EL = `&nbsp;(<code>%ss</code>)`
		EX = `<br>%s`
		IT = `&nbsp;[pass #%d]`
	)

	pctd := func(done int, total int) string {
		if total == 0 {
			return FU
		}
		return fmt.Sprintf(MS, total-done, total)
	}

	elapsed := fmt.Sprintf("%.1f", time.Now().Sub(ji.Launched).Seconds())

	var sb strings.Builder

	if len(ji.Summary) != 0 {
		sb.WriteString(ji.Summary + "<br>")
	}

	sb.WriteString(pctd(ji.Remain, ji.Total))

	if ji.Scored > 0 {
		sb.WriteString(fmt.Sprintf(SC, ji.Scored))
	}

	if ji.Iteration > 0 {
		sb.WriteString(fmt.Sprintf(IT, ji.Iteration))
	}

	sb.WriteString(fmt.Sprintf(EL, elapsed))

	if len(ji.ProgStrg) != 0 {
		sb.WriteString(fmt.Sprintf(EX, ji.ProgStrg))
	}

	return sb.String()
}
