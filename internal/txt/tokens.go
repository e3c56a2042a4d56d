//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"strings"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
)

// Tokenise - lowercase, normalise, split on whitespace
func Tokenise(thetext string) []string {
	thetext = gen.NormaliseNFC(strings.ToLower(thetext))
	return strings.Fields(thetext)
}

// DropStopwords - strip exactly the configured stop list
func DropStopwords(tokens []string, stops map[string]struct{}) []string {
	var kept []string
	for i := 0; i < len(tokens); i++ {
		if _, skip := stops[tokens[i]]; !skip {
			kept = append(kept, tokens[i])
		}
	}
	return kept
}

// NormalisePipeline - the full cleaning sequence; every model feeds from this
func NormalisePipeline(thetext string, stops map[string]struct{}) []string {
	thetext = ReplaceJargon(thetext)
	tokens := Tokenise(thetext)
	tokens = DropStopwords(tokens, stops)
	tokens = CorrectSpelling(tokens)
	tokens = Lemmatise(tokens)
	return tokens
}
