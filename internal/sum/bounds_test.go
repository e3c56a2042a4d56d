//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoundsExplicit(t *testing.T) {
	b, err := ParseBounds("20", "80", 200)
	require.NoError(t, err)
	require.Equal(t, Bounds{Lower: 20, Upper: 80}, b)
}

func TestParseBoundsBlanksUseDefaults(t *testing.T) {
	b, err := ParseBounds("", "", 200)
	require.NoError(t, err)
	require.Equal(t, Bounds{Lower: 20, Upper: 160}, b)
}

func TestParseBoundsOneBlank(t *testing.T) {
	_, err := ParseBounds("20", "", 200)
	require.Error(t, err)
	_, err = ParseBounds("", "80", 200)
	require.Error(t, err)
}

func TestParseBoundsNotANumber(t *testing.T) {
	_, err := ParseBounds("twenty", "80", 200)
	require.Error(t, err)
	_, err = ParseBounds("20", "eighty", 200)
	require.Error(t, err)
}

func TestParseBoundsInverted(t *testing.T) {
	_, err := ParseBounds("80", "20", 200)
	require.Error(t, err)
	_, err = ParseBounds("80", "80", 200)
	require.Error(t, err)
}

func TestParseBoundsLowerBeyondDocument(t *testing.T) {
	_, err := ParseBounds("500", "600", 200)
	require.Error(t, err)
}
