//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package docx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardiseCode(t *testing.T) {
	require.Equal(t, "0101000000", StandardiseCode("0101"))
	require.Equal(t, "0101010000", StandardiseCode("0101 01"))
	require.Equal(t, "0101010101", StandardiseCode("0101.01.01.01"))
	require.Equal(t, "8471300000", StandardiseCode("8471 30"))
}

func TestPlausibleCode(t *testing.T) {
	require.True(t, PlausibleCode("0101"))
	require.True(t, PlausibleCode(" 8471 "))
	require.True(t, PlausibleCode("0101 01"))
	require.False(t, PlausibleCode(""))
	require.False(t, PlausibleCode("Commodity code"))
	require.False(t, PlausibleCode("chapter notes"))
}

func TestSplitUsageNoMarker(t *testing.T) {
	desc, usage := SplitUsage("Live horses, asses, mules and hinnies")
	require.Equal(t, "Live horses, asses, mules and hinnies", desc)
	require.Equal(t, "", usage)
}

func TestSplitUsageEarliestMarker(t *testing.T) {
	blob := "Marine propulsion engines\nFor use in civil aircraft\nfor incorporation in ships, boats or other vessels"
	desc, usage := SplitUsage(blob)
	require.Equal(t, "Marine propulsion engines", desc)
	require.Contains(t, usage, "For use in civil aircraft")
}

func TestSplitUsageTrimsTrailingBullets(t *testing.T) {
	blob := "Engines:\n• For use in civil aircraft"
	desc, usage := SplitUsage(blob)
	require.Equal(t, "Engines:", desc)
	require.Equal(t, "For use in civil aircraft", usage)
}

func TestSplitDescriptionLoneHyphen(t *testing.T) {
	require.Equal(t, "-", SplitDescription("  -  "))
}

func TestSplitDescriptionDoubleHyphen(t *testing.T) {
	blob := "Horses:\n- Pure-bred breeding animals\n-- Other"
	require.Equal(t, "-- Other", SplitDescription(blob))
}

func TestSplitDescriptionBulletRun(t *testing.T) {
	blob := "Machines comprising:\n- a processor\n- a keyboard"
	require.Equal(t, "Machines comprising:\n- a processor\n- a keyboard", SplitDescription(blob))
}

func TestSplitDescriptionLastLine(t *testing.T) {
	blob := "Chapter preamble\nDigital cameras"
	require.Equal(t, "Digital cameras", SplitDescription(blob))
}

func TestSplitDescriptionSingleLine(t *testing.T) {
	require.Equal(t, "Live horses", SplitDescription("  Live horses "))
}
