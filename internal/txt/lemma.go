//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"sort"
	"strings"
	"sync"
)

//
// LEMMATISATION
//

// an inflected token can resolve to more than one headword ("rating" -> "rate"/"rating");
// the winner-takes-all map picks the most frequent headword once and uses it every time

type suffixrule struct {
	drop string
	add  []string // candidate replacement endings, tried in order
}

var suffixrules = []suffixrule{
	{"ies", []string{"y"}},
	{"ing", []string{"", "e"}},
	{"ments", []string{"ment"}},
	{"ed", []string{"", "e"}},
	{"ers", []string{"er", ""}},
	{"er", []string{"", "e"}},
	{"est", []string{"", "e"}},
	{"es", []string{"e", ""}},
	{"s", []string{""}},
	{"ly", []string{""}},
}

var (
	winnermap   map[string]string
	winnermutex sync.RWMutex
)

// ParseCandidates - the plausible headwords for one token, given a vocabulary to check stems against
func ParseCandidates(token string, vocab map[string]int) map[string]bool {
	candidates := make(map[string]bool)
	for i := 0; i < len(suffixrules); i++ {
		r := suffixrules[i]
		if !strings.HasSuffix(token, r.drop) || len(token) <= len(r.drop)+2 {
			continue
		}
		stem := strings.TrimSuffix(token, r.drop)
		for _, add := range r.add {
			cand := stem + add
			if _, known := vocab[cand]; known {
				candidates[cand] = true
			}
		}
	}
	return candidates
}

// BuildWinnerTakesAllParseMap - figure out which is the most common of the possible headwords for any given word
func BuildWinnerTakesAllParseMap(parsemap map[string]map[string]bool, scoremap map[string]int) map[string]string {
	// [a] lower the internal values first
	for i := range parsemap {
		newmap := make(map[string]bool)
		for k := range parsemap[i] {
			newmap[strings.ToLower(k)] = true
		}
		parsemap[i] = newmap
	}

	// [b] lower the parsemap keys; how worried should we be about the collisions...
	lcparsemap := make(map[string]map[string]bool)
	for i := range parsemap {
		lcparsemap[strings.ToLower(i)] = parsemap[i]
	}

	// [c] run through the parsemap and kill off the losers

	type weighted struct {
		word  string
		count int
	}

	winners := make(map[string]string)
	for i := range lcparsemap {
		var hwl []weighted
		for j := range lcparsemap[i] {
			hwl = append(hwl, weighted{word: j, count: scoremap[j]})
		}
		if len(hwl) == 0 {
			continue
		}
		sort.Slice(hwl, func(a, b int) bool {
			if hwl[a].count != hwl[b].count {
				return hwl[a].count > hwl[b].count
			}
			return hwl[a].word < hwl[b].word
		})
		winners[i] = hwl[0].word
	}

	return winners
}

// PrimeLemmatiser - build the winner map from corpus vocabulary counts; call once after the vocabulary loads
func PrimeLemmatiser(vocab map[string]int) {
	parsemap := make(map[string]map[string]bool)
	for token := range vocab {
		cands := ParseCandidates(token, vocab)
		if len(cands) > 0 {
			parsemap[token] = cands
		}
	}

	wm := BuildWinnerTakesAllParseMap(parsemap, vocab)

	winnermutex.Lock()
	winnermap = wm
	winnermutex.Unlock()
}

// Lemmatise - swap each token for its winning headword; unmapped tokens pass through
func Lemmatise(tokens []string) []string {
	winnermutex.RLock()
	defer winnermutex.RUnlock()

	if winnermap == nil {
		return tokens
	}

	out := make([]string, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if hw, ok := winnermap[tokens[i]]; ok {
			out[i] = hw
		} else {
			out[i] = tokens[i]
		}
	}
	return out
}
