//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

// the store handle is package-level state; each test opens its own file

func teststore(t *testing.T) {
	t.Helper()
	OpenStore(filepath.Join(t.TempDir(), "eas-test.db"))
}

func TestEnquiriesRoundTrip(t *testing.T) {
	teststore(t)

	when := time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)
	InsertEnquiries([]str.Enquiry{
		{Received: when, Category: "billing", Text: "my bill doubled"},
		{Received: when, Category: "waste", Text: "missed collection"},
	})

	require.Equal(t, 2, CountEnquiries())

	all := GetEnquiries("")
	require.Len(t, all, 2)
	require.Equal(t, "my bill doubled", all[0].Text)
	require.True(t, when.Equal(all[0].Received))

	billing := GetEnquiries("billing")
	require.Len(t, billing, 1)
	require.Equal(t, "billing", billing[0].Category)
}

func TestCheckinsWindow(t *testing.T) {
	teststore(t)

	day := func(d int, h int) time.Time {
		return time.Date(2010, 3, d, h, 0, 0, 0, time.UTC)
	}

	InsertCheckins([]str.Checkin{
		{UserID: 1, Stamp: day(1, 8), Lat: 51.5, Lon: -0.1, LocationID: "loc1"},
		{UserID: 2, Stamp: day(2, 9), Lat: 51.6, Lon: -0.2, LocationID: "loc2"},
		{UserID: 3, Stamp: day(9, 10), Lat: 51.7, Lon: -0.3, LocationID: "loc3"},
	})

	require.Equal(t, 3, CountCheckins())

	ckk := GetCheckinsBetween(day(1, 0), day(3, 0))
	require.Len(t, ckk, 2)
	require.Equal(t, int64(1), ckk[0].UserID)
	require.Equal(t, int64(2), ckk[1].UserID)
	require.Equal(t, "loc2", ckk[1].LocationID)
}

func TestEdgesRoundTrip(t *testing.T) {
	teststore(t)

	InsertEdges([]str.SocialEdge{{A: 1, B: 2}, {A: 2, B: 3}})

	edd := GetEdges()
	require.Len(t, edd, 2)
	require.Equal(t, int64(1), edd[0].A)
	require.Equal(t, int64(3), edd[1].B)
}

func TestModelRunLog(t *testing.T) {
	teststore(t)

	name, winner, score := LatestModelRun("classifier")
	require.Empty(t, name)
	require.Empty(t, winner)
	require.Zero(t, score)

	RecordModelRun("abc123", "classifier", "2024-05-12_09h30m", time.Now().Add(-time.Minute), "knn3", 0.91)

	name, winner, score = LatestModelRun("classifier")
	require.Equal(t, "2024-05-12_09h30m", name)
	require.Equal(t, "knn3", winner)
	require.InDelta(t, 0.91, score, 1e-9)

	// a different kind stays invisible
	name, _, _ = LatestModelRun("topics")
	require.Empty(t, name)
}
