//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"fmt"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// SPELLING CORRECTION
//

// the correction scheme assumes the first letter of a misspelling is right: the vocabulary is
// bucketed by first letter and a misspelled token only shops inside its own bucket

// CorrectSpelling - swap unknown tokens for the nearest vocabulary term
func CorrectSpelling(tokens []string) []string {
	const (
		MSG1 = "CorrectSpelling() %s --> %s"
	)

	keep := ReadKeepConfig()

	out := make([]string, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		out[i] = t

		if len([]rune(t)) < vv.MINWORDLENTOFIX {
			continue
		}
		if _, protected := keep[t]; protected {
			continue
		}
		if db.VocabKnows(t) {
			continue
		}

		bucket := db.VocabBucket([]rune(t)[0])
		if fixed, ok := CorrectToken(t, bucket); ok {
			Msg.TMI(fmt.Sprintf(MSG1, t, fixed))
			out[i] = fixed
		}
	}
	return out
}

// CorrectToken - the nearest term in the bucket by edit distance; ties keep the most frequent candidate
func CorrectToken(token string, bucket map[string]int) (string, bool) {
	best := ""
	bestdist := vv.MAXEDITDISTANCE + 1
	bestfreq := -1

	for cand, freq := range bucket {
		d := LevenshteinDistance(token, cand)
		if d < bestdist || (d == bestdist && freq > bestfreq) {
			best = cand
			bestdist = d
			bestfreq = freq
		}
	}

	if best == "" || bestdist > vv.MAXEDITDISTANCE {
		// no same-letter bucket or nothing close enough: pass through unchanged
		return token, false
	}
	return best, true
}

// LevenshteinDistance - minimum number of single-rune edits between a and b
func LevenshteinDistance(a string, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a int, b int, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
