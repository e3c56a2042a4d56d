//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// the keepers are package singletons; start them once for the whole test run
var startkeepers sync.Once

func keepers() {
	startkeepers.Do(func() {
		go IPBlacklistKeeper()
		go ResponseStatsKeeper()
	})
}

func admitted(ip string) bool {
	ask := gatequery{ip: ip, entry: make(chan bool)}
	gateRD <- ask
	return <-ask.entry
}

func TestGateAdmitsUnknownIP(t *testing.T) {
	keepers()
	require.True(t, admitted("198.51.100.7"))
}

func TestOffencesLeadToBan(t *testing.T) {
	keepers()
	const IP = "203.0.113.9"

	report := func() bool {
		off := offence{ip: IP, reason: "testing", banned: make(chan bool)}
		offenceWR <- off
		return <-off.banned
	}

	require.False(t, report())
	require.False(t, report())
	require.True(t, report())
	require.False(t, admitted(IP))
}

func TestNotFoundTalliesBanScanners(t *testing.T) {
	keepers()
	const IP = "192.0.2.44"

	for i := 0; i < 3; i++ {
		tallyWR <- tally{code: 404, ip: IP, uri: "/wp-admin"}
	}

	require.Eventually(t, func() bool { return !admitted(IP) }, 5*time.Second, 10*time.Millisecond)
}

func TestLocalIPNeverPoliced(t *testing.T) {
	require.True(t, localip("127.0.0.1"))
	require.True(t, localip("::1"))
	require.True(t, localip("localhost"))
	require.False(t, localip("203.0.113.9"))
}
