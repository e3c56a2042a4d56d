//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "time"

// Enquiry - one service enquiry as stored and as fed to the pipelines
type Enquiry struct {
	ID       int64
	Received time.Time
	Category string // empty until labelled or predicted
	Text     string
}

// Checkin - one row of the check-in dataset
type Checkin struct {
	UserID     int64
	Stamp      time.Time
	Lat        float64
	Lon        float64
	LocationID string
}

// SocialEdge - an undirected friendship pair from the social graph file
type SocialEdge struct {
	A int64
	B int64
}
