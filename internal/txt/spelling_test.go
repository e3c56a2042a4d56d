//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinDistance(t *testing.T) {
	require.Equal(t, 0, LevenshteinDistance("tariff", "tariff"))
	require.Equal(t, 1, LevenshteinDistance("tariff", "tarif"))
	require.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	require.Equal(t, 5, LevenshteinDistance("", "trade"))
	require.Equal(t, 4, LevenshteinDistance("quay", ""))
}

func TestCorrectToken(t *testing.T) {
	bucket := map[string]int{
		"tariff":   120,
		"taxation": 40,
		"trade":    300,
	}

	fixed, ok := CorrectToken("tarrif", bucket)
	require.True(t, ok)
	require.Equal(t, "tariff", fixed)

	// nothing within the edit distance ceiling passes through unchanged
	same, ok := CorrectToken("zymurgy", bucket)
	require.False(t, ok)
	require.Equal(t, "zymurgy", same)

	// an empty bucket can never correct
	same, ok = CorrectToken("tarrif", map[string]int{})
	require.False(t, ok)
	require.Equal(t, "tarrif", same)
}

func TestCorrectTokenPrefersFrequent(t *testing.T) {
	// both candidates are one edit away; the more frequent one wins
	bucket := map[string]int{
		"ports": 10,
		"porto": 90,
	}
	fixed, ok := CorrectToken("ports", map[string]int{"ports": 10})
	require.True(t, ok)
	require.Equal(t, "ports", fixed)

	fixed, ok = CorrectToken("portz", bucket)
	require.True(t, ok)
	require.Equal(t, "porto", fixed)
}
