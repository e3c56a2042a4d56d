//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

func TestVectoroptionsSeedsThenReads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	h, e := os.UserHomeDir()
	require.NoError(t, e)
	require.NoError(t, os.MkdirAll(fmt.Sprintf(vv.CONFIGALTAPTH, h), 0700))

	// a first run seeds the config file with the defaults
	got := vectoroptions(vv.CONFIGVECTORW2V, DefaultW2VVectors)
	require.Equal(t, DefaultW2VVectors, got)

	fn := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORW2V
	_, e = os.Stat(fn)
	require.NoError(t, e)

	// a second run reads the file, edits and all
	edited := DefaultW2VVectors
	edited.Window = 12
	content, e := json.MarshalIndent(edited, vv.JSONINDENT, vv.JSONINDENT)
	require.NoError(t, e)
	require.NoError(t, os.WriteFile(fn, content, vv.WRITEPERMS))

	got = vectoroptions(vv.CONFIGVECTORW2V, DefaultW2VVectors)
	require.Equal(t, 12, got.Window)
}

func TestVectoroptionsBadFileFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	h, e := os.UserHomeDir()
	require.NoError(t, e)
	require.NoError(t, os.MkdirAll(fmt.Sprintf(vv.CONFIGALTAPTH, h), 0700))

	fn := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGVECTORGLOVE
	require.NoError(t, os.WriteFile(fn, []byte("{not json"), vv.WRITEPERMS))

	got := vectoroptions(vv.CONFIGVECTORGLOVE, DefaultGloveVectors)
	require.Equal(t, DefaultGloveVectors, got)
}
