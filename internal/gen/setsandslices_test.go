//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSet(t *testing.T) {
	s := ToSet([]string{"a", "b", "a"})
	require.Len(t, s, 2)
	require.Contains(t, s, "a")
	require.Contains(t, s, "b")
}

func TestUnique(t *testing.T) {
	u := Unique([]string{"a", "a", "b", "a"})
	require.ElementsMatch(t, []string{"a", "b"}, u)
}

func TestSetSubtraction(t *testing.T) {
	got := SetSubtraction([]string{"a", "b", "c", "b"}, []string{"b", "d"})
	require.Equal(t, []string{"a", "c"}, got)
}

func TestContainsN(t *testing.T) {
	require.Equal(t, 2, ContainsN([]int{1, 2, 1, 3}, 1))
	require.Equal(t, 0, ContainsN([]int{1, 2, 1, 3}, 9))
}

func TestFlattenSlices(t *testing.T) {
	got := FlattenSlices([][]int{{1, 2}, {3}, {}, {4}})
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestSortedMapKeys(t *testing.T) {
	mp := map[int]string{3: "c", 1: "a", 2: "b"}
	require.Equal(t, []int{1, 2, 3}, SortedMapKeys(mp))
}

func TestChunkSlice(t *testing.T) {
	got := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)

	whole := ChunkSlice([]int{1, 2}, 10)
	require.Equal(t, [][]int{{1, 2}}, whole)
}

func TestPurgechars(t *testing.T) {
	require.Equal(t, "abc123", Purgechars(`"'<>&|{}[]\`, `a"b'c<1>2&3|`))
	require.Equal(t, "clean", Purgechars(`"`, "clean"))
}

func TestStripAccents(t *testing.T) {
	require.Equal(t, "cafe", StripAccents("café"))
	require.Equal(t, "creme brulee", StripAccents("crème brûlée"))
}

func TestNormaliseNFC(t *testing.T) {
	// decomposed e + combining acute composes to a single rune
	require.Equal(t, "é", NormaliseNFC("é"))
}
