//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceJargonMoneyBeforeNumbers(t *testing.T) {
	got := ReplaceJargon("we were charged £1,250.50 on 12/03/2024")
	require.Contains(t, got, "money_amount")
	require.Contains(t, got, "date_full")
	require.NotContains(t, got, "1250")
	require.NotContains(t, got, "2024")
}

func TestReplaceJargonNumberClasses(t *testing.T) {
	got := ReplaceJargon("codes 1234 and 56 and 7890123")
	require.Contains(t, got, "num_4_digits")
	require.Contains(t, got, "num_2_digits")
	require.Contains(t, got, "num_other")
}

func TestReplaceJargonWebAddress(t *testing.T) {
	got := ReplaceJargon("see https://www.gov.uk/trade-tariff for details")
	require.Contains(t, got, "web_address")
	require.NotContains(t, got, "gov.uk")
}

func TestReplaceJargonStripsPunctuation(t *testing.T) {
	got := ReplaceJargon("hello, world: (really)!")
	for _, bad := range []string{",", ":", "(", ")", "!"} {
		require.NotContains(t, got, bad)
	}
}

func TestStripper(t *testing.T) {
	got := Stripper("ref: ABC-123 (urgent)", []string{`ref:\s*`, `\(urgent\)`})
	require.Equal(t, "ABC-123 ", got)
}

func TestSplitOnPunctuation(t *testing.T) {
	ss := SplitOnPunctuation("First point. Second point? Third point! Fourth; fifth")
	require.Len(t, ss, 5)
	require.Equal(t, "First point", strings.TrimSpace(ss[0]))
	require.Equal(t, "fifth", strings.TrimSpace(ss[4]))
}

func TestTokeniseLowercases(t *testing.T) {
	tt := Tokenise("The Quick BROWN fox")
	require.Equal(t, []string{"the", "quick", "brown", "fox"}, tt)
}

func TestDropStopwords(t *testing.T) {
	stops := map[string]struct{}{"the": {}, "a": {}}
	kept := DropStopwords([]string{"the", "tariff", "a", "question"}, stops)
	require.Equal(t, []string{"tariff", "question"}, kept)
}
