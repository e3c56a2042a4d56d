//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chk

import (
	"sort"
	"time"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Window - all check-ins between from and to, inclusive of both days
func Window(from time.Time, to time.Time) []str.Checkin {
	// push "to" to the end of its day so the range is inclusive
	to = to.Add(24*time.Hour - time.Nanosecond)
	return db.GetCheckinsBetween(from, to)
}

// DailyCounts - check-ins per calendar day, sorted by day
func DailyCounts(ckk []str.Checkin) ([]string, []int) {
	const (
		DAYFMT = "2006-01-02"
	)

	perday := make(map[string]int)
	for i := 0; i < len(ckk); i++ {
		perday[ckk[i].Stamp.Format(DAYFMT)]++
	}

	days := make([]string, 0, len(perday))
	for d := range perday {
		days = append(days, d)
	}
	sort.Strings(days)

	counts := make([]int, len(days))
	for i := 0; i < len(days); i++ {
		counts[i] = perday[days[i]]
	}

	return days, counts
}

// ActiveUsers - the set of users with at least one check-in in the window
func ActiveUsers(ckk []str.Checkin) map[int64]struct{} {
	users := make(map[int64]struct{})
	for i := 0; i < len(ckk); i++ {
		users[ckk[i].UserID] = struct{}{}
	}
	return users
}

// EdgesAmong - the social graph restricted to the given users; both ends must qualify
func EdgesAmong(users map[int64]struct{}) []str.SocialEdge {
	all := db.GetEdges()

	var kept []str.SocialEdge
	for i := 0; i < len(all); i++ {
		_, a := users[all[i].A]
		_, b := users[all[i].B]
		if a && b {
			kept = append(kept, all[i])
		}
	}
	return kept
}
