//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"

	"github.com/e-gun/wego/pkg/search"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
)

// GenerateNeighborsData - the nearest neighbors of a term, and of each of those neighbors in turn
func GenerateNeighborsData(term string) map[string]search.Neighbors {
	const (
		FAIL1 = "GenerateNeighborsData() could not find neighbors of a neighbor: '%s' of '%s'"
		FAIL2 = "GenerateNeighborsData() failed to produce a Searcher"
		FAIL3 = "GenerateNeighborsData() failed to yield Neighbors"
	)

	enn := db.GetEnquiries("")
	thetext := BuildTextBlock(enn)

	embs := FetchEmbeddings(lnch.Config.VectorModel, thetext)

	searcher, err := search.New(embs...)
	if err != nil {
		Msg.FYI(FAIL2)
		searcher = func() *search.Searcher { return &search.Searcher{} }()
	}

	ncount := lnch.Config.VectorNeighb

	nn := make(map[string]search.Neighbors)
	neighbors, err := searcher.SearchInternal(term, ncount)
	if err != nil {
		Msg.FYI(FAIL3)
		neighbors = search.Neighbors{}
	}

	nn[term] = neighbors
	for _, n := range neighbors {
		meta, e := searcher.SearchInternal(n.Word, ncount)
		if e != nil {
			Msg.FYI(fmt.Sprintf(FAIL1, n.Word, term))
		} else {
			nn[n.Word] = meta
		}
	}

	return nn
}
