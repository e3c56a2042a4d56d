//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"fmt"
	"time"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

// BuildVocabulary - term counts over the cleaned (but uncorrected) corpus
func BuildVocabulary(enn []str.Enquiry, stops map[string]struct{}) map[string]int {
	counts := make(map[string]int)
	for i := 0; i < len(enn); i++ {
		tokens := Tokenise(ReplaceJargon(enn[i].Text))
		tokens = DropStopwords(tokens, stops)
		for _, t := range tokens {
			counts[t]++
		}
	}
	return counts
}

// PrimeNormaliser - build the vocabulary database and the lemmatiser from the stored corpus
func PrimeNormaliser() {
	const (
		MSG1 = "PrimeNormaliser() built a vocabulary of %d terms"
	)

	start := time.Now()

	enn := db.GetEnquiries("")
	stops := GetStopSet()

	counts := BuildVocabulary(enn, stops)
	db.LoadVocabulary(counts)
	PrimeLemmatiser(counts)

	Msg.Timer("N", fmt.Sprintf(MSG1, len(counts)), start, start)
}
