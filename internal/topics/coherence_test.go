//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

func TestPairkeyUnordered(t *testing.T) {
	require.Equal(t, pairkey("rates", "bill"), pairkey("bill", "rates"))
	require.NotEqual(t, pairkey("rates", "bill"), pairkey("rates", "refund"))
}

func TestBuildFrequencyTables(t *testing.T) {
	docs := [][]string{
		{"rates", "bill", "bill"},
		{"rates", "refund"},
		{"bill"},
	}

	docfreq, pairfreq := BuildFrequencyTables(docs)

	// repeated tokens inside one document count once
	require.Equal(t, 2, docfreq["bill"])
	require.Equal(t, 2, docfreq["rates"])
	require.Equal(t, 1, docfreq["refund"])

	require.Equal(t, 1, pairfreq[pairkey("rates", "bill")])
	require.Equal(t, 1, pairfreq[pairkey("rates", "refund")])
	require.Equal(t, 0, pairfreq[pairkey("bill", "refund")])
}

func TestUMassCoherencePrefersCooccurrence(t *testing.T) {
	docs := [][]string{
		{"rates", "bill"},
		{"rates", "bill"},
		{"refund", "permit"},
		{"refund", "licence"},
		{"permit", "licence"},
	}
	docfreq, pairfreq := BuildFrequencyTables(docs)

	together := [][]str.WeightedTerm{{{Term: "rates"}, {Term: "bill"}}}
	apart := [][]str.WeightedTerm{{{Term: "rates"}, {Term: "refund"}}}

	tight := UMassCoherence(together, docfreq, pairfreq)
	loose := UMassCoherence(apart, docfreq, pairfreq)

	require.Greater(t, tight, loose)
	require.Less(t, loose, float64(0))
}

func TestUMassCoherenceNoTopics(t *testing.T) {
	require.True(t, math.IsInf(UMassCoherence(nil, nil, nil), -1))
}

func TestOutscorescandidate(t *testing.T) {
	coherence := map[int]float64{3: -2.5}

	// nothing scored yet: anything wins
	require.True(t, outscorescandidate(-9.9, 0, coherence))

	require.True(t, outscorescandidate(-1.0, 3, coherence))
	require.False(t, outscorescandidate(-4.0, 3, coherence))

	// an equal score keeps the incumbent, so k=3 beats a tying k=4
	require.False(t, outscorescandidate(-2.5, 3, coherence))
}
