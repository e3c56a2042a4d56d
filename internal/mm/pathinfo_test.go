//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPathInfoHubSnapshots(t *testing.T) {
	const (
		PATH = "RtFrontpage()"
		HITS = 10000
	)

	go PathInfoHub()

	snapshot := func() map[string]int {
		req := PIReply{Request: true, Response: make(chan map[string]int)}
		PIRequest <- req
		return <-req.Response
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < HITS; i++ {
			PIUpdate <- PATH
		}
	}()

	// iterate snapshots while the writer is still feeding the hub; a live
	// map handed out here would be a concurrent iteration + write
	for i := 0; i < 100; i++ {
		total := 0
		for _, n := range snapshot() {
			total += n
		}
		require.LessOrEqual(t, total, HITS)
	}

	wg.Wait()

	require.Eventually(t, func() bool {
		return snapshot()[PATH] == HITS
	}, 5*time.Second, 10*time.Millisecond)

	// mutating a snapshot must not touch the hub's own accounting
	snap := snapshot()
	snap[PATH] = 0
	require.Equal(t, HITS, snapshot()[PATH])
}
