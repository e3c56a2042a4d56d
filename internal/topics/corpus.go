//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"strings"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// EnquiryBag - one bag of normalised text headed for the topic modeler
type EnquiryBag struct {
	EnquiryID   int64
	Category    string
	Bag         string
	ModifiedBag string
	LDAScore    float64
}

// BuildCorpus - turn enquiries into bags: split into sentences, then normalise each bag
func BuildCorpus(enn []str.Enquiry) []EnquiryBag {
	const (
		MSG1 = "BuildCorpus() built %d bags from %d enquiries"
	)

	var thebags []EnquiryBag

	stops := txt.GetStopSet()

	for i := 0; i < len(enn); i++ {
		split := txt.SplitOnPunctuation(enn[i].Text)

		var ss []string
		for j := 0; j < len(split); j++ {
			if len(strings.TrimSpace(split[j])) > 0 {
				ss = append(ss, split[j])
			}
		}

		iterations := len(ss) / vv.LDASENTPERBAG
		index := 0
		for j := 0; j < iterations; j++ {
			parcel := strings.Join(ss[index:index+vv.LDASENTPERBAG], " ")
			index = index + vv.LDASENTPERBAG

			eb := EnquiryBag{
				EnquiryID: enn[i].ID,
				Category:  enn[i].Category,
				Bag:       strings.TrimSpace(strings.ToLower(parcel)),
			}

			tokens := txt.NormalisePipeline(eb.Bag, stops)
			eb.ModifiedBag = strings.Join(tokens, " ")

			if len(eb.ModifiedBag) > 0 {
				thebags = append(thebags, eb)
			}
		}
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(thebags), len(enn)))

	return thebags
}
