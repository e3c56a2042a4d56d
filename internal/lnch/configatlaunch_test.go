//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	Config = BuildDefaultConfig()

	e := applyflags([]string{"-bw", "-bt", "3", "-sp", "9101", "-md", "glove", "-wc", "2"})
	require.NoError(t, e)
	require.True(t, Config.BlackAndWhite)
	require.Equal(t, 3, Config.BotPasses)
	require.Equal(t, 9101, Config.HostPort)
	require.Equal(t, "glove", Config.VectorModel)
	require.Equal(t, 2, Config.WorkerCount)

	Config = BuildDefaultConfig()
}

func TestApplyFlagsUnknown(t *testing.T) {
	Config = BuildDefaultConfig()

	e := applyflags([]string{"-nope"})
	require.Error(t, e)
	require.Contains(t, e.Error(), "-nope")

	Config = BuildDefaultConfig()
}

func TestApplyFlagsMissingValue(t *testing.T) {
	Config = BuildDefaultConfig()

	// a value-taking flag as the final argument must not walk past the slice
	for _, f := range []string{"-bt", "-db", "-sp", "-pg"} {
		e := applyflags([]string{f})
		require.Error(t, e)
		require.Contains(t, e.Error(), f)
	}

	e := applyflags([]string{"-bt", "three"})
	require.Error(t, e)

	e = applyflags([]string{"-pg", "{not json"})
	require.Error(t, e)

	Config = BuildDefaultConfig()
}
