//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type vaulttestartifact struct {
	Name   string
	Scores map[string]float64
}

func TestVaultRoundTrip(t *testing.T) {
	// the vault is rooted in the working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	in := vaulttestartifact{
		Name:   "2024-05-12_09h30m",
		Scores: map[string]float64{"knn3": 0.91, "centroid": 0.87},
	}

	require.False(t, VaultHas("roundtrip"))
	require.NoError(t, VaultStore("roundtrip", in))
	require.True(t, VaultHas("roundtrip"))

	var out vaulttestartifact
	require.NoError(t, VaultFetch("roundtrip", &out))
	require.Equal(t, in, out)
}

func TestVaultFetchMissing(t *testing.T) {
	var out vaulttestartifact
	require.Error(t, VaultFetch("no-such-artifact", &out))
}
