//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"math"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
)

//
// UMASS COHERENCE: score a candidate model by how often its top words actually co-occur in the documents
//

// see Mimno et al., "Optimizing Semantic Coherence in Topic Models" (EMNLP 2011)
// score(t) = Σ_{i<j} log( (D(wi, wj) + 1) / D(wj) )
// the score is negative; a model whose top words travel together scores closer to zero

// BuildFrequencyTables - document frequencies for every term and for every co-occurring pair
func BuildFrequencyTables(tokenised [][]string) (map[string]int, map[string]int) {
	docfreq := make(map[string]int)
	pairfreq := make(map[string]int)

	for i := 0; i < len(tokenised); i++ {
		seen := make(map[string]struct{})
		for j := 0; j < len(tokenised[i]); j++ {
			seen[tokenised[i][j]] = struct{}{}
		}

		var terms []string
		for t := range seen {
			docfreq[t]++
			terms = append(terms, t)
		}

		for a := 0; a < len(terms); a++ {
			for b := a + 1; b < len(terms); b++ {
				pairfreq[pairkey(terms[a], terms[b])]++
			}
		}
	}

	return docfreq, pairfreq
}

// pairkey - one key per unordered pair
func pairkey(a string, b string) string {
	if a < b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}

// UMassCoherence - mean umass score across all topics of a candidate model
func UMassCoherence(tops [][]str.WeightedTerm, docfreq map[string]int, pairfreq map[string]int) float64 {
	if len(tops) == 0 {
		return math.Inf(-1)
	}

	total := float64(0)
	for topic := 0; topic < len(tops); topic++ {
		total += topiccoherence(tops[topic], docfreq, pairfreq)
	}
	return total / float64(len(tops))
}

func topiccoherence(terms []str.WeightedTerm, docfreq map[string]int, pairfreq map[string]int) float64 {
	score := float64(0)
	for i := 1; i < len(terms); i++ {
		for j := 0; j < i; j++ {
			dj := docfreq[terms[j].Term]
			if dj == 0 {
				continue
			}
			dij := pairfreq[pairkey(terms[i].Term, terms[j].Term)]
			score += math.Log(float64(dij+1) / float64(dj))
		}
	}
	return score
}
