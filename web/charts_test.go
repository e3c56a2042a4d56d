//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

func TestSortededges(t *testing.T) {
	edd := []str.SocialEdge{{A: 3, B: 1}, {A: 1, B: 9}, {A: 1, B: 2}}
	got := sortededges(edd)
	require.Equal(t, []str.SocialEdge{{A: 1, B: 2}, {A: 1, B: 9}, {A: 3, B: 1}}, got)
}

func TestSortedbotroutes(t *testing.T) {
	hits := map[string]int{"/emb/js/eas.js": 3, "/": 5, "/bot/ack": 1}
	require.Equal(t, []string{"/", "/bot/ack", "/emb/js/eas.js"}, sortedbotroutes(hits))
}

func TestCheckinsbarRenders(t *testing.T) {
	htm := checkinsbar([]string{"2010-03-01", "2010-03-02"}, []int{4, 7})
	require.Contains(t, htm, "2010-03-01")
	require.True(t, strings.Contains(htm, "echarts"))
}

func TestCoherencelineMarksWinner(t *testing.T) {
	run := str.TopicRun{
		BestK:     3,
		Coherence: map[int]float64{2: -4.1, 3: -3.2, 4: -3.9},
	}
	htm := coherenceline(run)
	require.Contains(t, htm, "winner: k = 3")
}
