//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chk

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

func stamp(s string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", s)
	return t
}

func TestWindowIncludesEndOfDay(t *testing.T) {
	db.OpenStore(filepath.Join(t.TempDir(), "eas-test.db"))

	at := func(d int, h int, m int) time.Time {
		return time.Date(2010, 3, d, h, m, 0, 0, time.UTC)
	}

	db.InsertCheckins([]str.Checkin{
		{UserID: 1, Stamp: at(1, 8, 0), LocationID: "loc1"},
		{UserID: 2, Stamp: at(3, 23, 30), LocationID: "loc2"},
		{UserID: 3, Stamp: at(4, 0, 10), LocationID: "loc3"},
	})

	// a window ending on day 3 keeps the 23:30 check-in and drops 00:10 the next morning
	ckk := Window(at(1, 0, 0), at(3, 0, 0))
	require.Len(t, ckk, 2)
	require.Equal(t, int64(1), ckk[0].UserID)
	require.Equal(t, int64(2), ckk[1].UserID)
}

func TestDailyCounts(t *testing.T) {
	ckk := []str.Checkin{
		{UserID: 1, Stamp: stamp("2010-03-02 09:15")},
		{UserID: 2, Stamp: stamp("2010-03-01 18:40")},
		{UserID: 1, Stamp: stamp("2010-03-02 21:05")},
		{UserID: 3, Stamp: stamp("2010-03-02 11:00")},
	}

	days, counts := DailyCounts(ckk)
	require.Equal(t, []string{"2010-03-01", "2010-03-02"}, days)
	require.Equal(t, []int{1, 3}, counts)
}

func TestDailyCountsEmpty(t *testing.T) {
	days, counts := DailyCounts(nil)
	require.Empty(t, days)
	require.Empty(t, counts)
}

func TestActiveUsers(t *testing.T) {
	ckk := []str.Checkin{
		{UserID: 7, Stamp: stamp("2010-03-01 08:00")},
		{UserID: 7, Stamp: stamp("2010-03-01 09:00")},
		{UserID: 9, Stamp: stamp("2010-03-01 10:00")},
	}

	users := ActiveUsers(ckk)
	require.Len(t, users, 2)
	require.Contains(t, users, int64(7))
	require.Contains(t, users, int64(9))
	require.NotContains(t, users, int64(8))
}
