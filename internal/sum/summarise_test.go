//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	ss := SplitSentences("The rates went up. Why did they go up? Nobody said!")
	require.Len(t, ss, 3)
	require.Equal(t, "The rates went up", ss[0])
	require.Equal(t, "Why did they go up", ss[1])
	require.Equal(t, "Nobody said", ss[2])
}

func TestSummariseEmpty(t *testing.T) {
	_, err := Summarise("   ", Bounds{Lower: 5, Upper: 50})
	require.Error(t, err)
}

func TestSummariseKeepsDocumentOrder(t *testing.T) {
	text := "Import tariffs on machinery rose sharply last quarter. " +
		"Several traders complained about the classification rules. " +
		"The classification guidance was updated in response."

	// bounds wide enough that every sentence fits
	got, err := Summarise(text, Bounds{Lower: 21, Upper: 100})
	require.NoError(t, err)

	i1 := strings.Index(got, "Import tariffs")
	i2 := strings.Index(got, "Several traders")
	i3 := strings.Index(got, "classification guidance")
	require.NotEqual(t, -1, i1)
	require.NotEqual(t, -1, i2)
	require.NotEqual(t, -1, i3)
	require.Less(t, i1, i2)
	require.Less(t, i2, i3)
}

func TestSummariseRespectsUpperBound(t *testing.T) {
	text := "Import tariffs on machinery rose sharply last quarter. " +
		"Several traders complained about the classification rules. " +
		"The classification guidance was updated in response."

	got, err := Summarise(text, Bounds{Lower: 5, Upper: 10})
	require.NoError(t, err)
	require.LessOrEqual(t, len(strings.Fields(got)), 10)
}
