//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sum

import (
	"fmt"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
	"gonum.org/v1/gonum/mat"
)

//
// EXTRACTIVE SUMMARY: rank the sentences by mean tf-idf weight; keep the best until the window is filled
//

// Summarise - the top-scoring sentences inside the bounds, in document order
func Summarise(text string, b Bounds) (string, error) {
	const (
		FAIL1 = "nothing to summarise"
		FAIL2 = "could not featurise the sentences: %s"
	)

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return "", fmt.Errorf(FAIL1)
	}

	scores, err := ScoreSentences(sentences)
	if err != nil {
		return "", fmt.Errorf(FAIL2, err.Error())
	}

	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	// greedily take the best sentences; stop before the window overflows
	chosen := make(map[int]bool)
	words := 0
	for _, idx := range ranked {
		wc := len(strings.Fields(sentences[idx]))
		if words+wc > b.Upper && words >= b.Lower {
			break
		}
		if words+wc > b.Upper {
			continue
		}
		chosen[idx] = true
		words += wc
		if words >= b.Lower {
			break
		}
	}

	var kept []string
	for i := 0; i < len(sentences); i++ {
		if chosen[i] {
			kept = append(kept, sentences[i])
		}
	}

	return strings.Join(kept, ". ") + ".", nil
}

// SplitSentences - sentence boundaries as the cleaning pipeline sees them, original casing kept
func SplitSentences(text string) []string {
	split := txt.SplitOnPunctuation(text)

	var ss []string
	for i := 0; i < len(split); i++ {
		s := strings.TrimSpace(split[i])
		if len(s) > 0 {
			ss = append(ss, s)
		}
	}
	return ss
}

// ScoreSentences - mean tf-idf weight of the terms in each sentence
func ScoreSentences(sentences []string) ([]float64, error) {
	stops := gen.StringMapKeysIntoSlice(txt.GetStopSet())
	vectoriser := nlp.NewCountVectoriser(stops...)
	transformer := nlp.NewTfidfTransformer()
	pipeline := nlp.NewPipeline(vectoriser, transformer)

	m, err := pipeline.FitTransform(sentences...)
	if err != nil {
		return nil, err
	}

	rows, cols := m.Dims()

	scores := make([]float64, len(sentences))
	for j := 0; j < cols && j < len(sentences); j++ {
		v := m.(mat.ColViewer).ColView(j)
		total := float64(0)
		nonzero := 0
		for r := 0; r < rows; r++ {
			w := v.AtVec(r)
			if w != 0 {
				total += w
				nonzero++
			}
		}
		if nonzero > 0 {
			scores[j] = total / float64(nonzero)
		}
	}

	return scores, nil
}
