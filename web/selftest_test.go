//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingbody struct {
	reader *strings.Reader
	closed bool
}

func (cb *countingbody) Read(p []byte) (int, error) { return cb.reader.Read(p) }

func (cb *countingbody) Close() error {
	cb.closed = true
	return nil
}

func TestDrainandclose(t *testing.T) {
	cb := &countingbody{reader: strings.NewReader("{\"ok\": true}")}
	drainandclose(&http.Response{Body: cb})

	require.True(t, cb.closed)
	require.Zero(t, cb.reader.Len())
}

func TestDrainandcloseNilResponse(t *testing.T) {
	require.NotPanics(t, func() { drainandclose(nil) })
}
