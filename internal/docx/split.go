//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package docx

import (
	"regexp"
	"strings"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// TEXT SPLITTING: the reference documents cram categories, descriptions, and usage statements into one cell
//

// the usage statement always opens with one of a small set of boilerplate phrases
var usagemarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for incorporation in ships, boats or other vessels`),
	regexp.MustCompile(`(?i)use by, or on behalf of, the uk armed forces`),
	regexp.MustCompile(`(?i)for use in`),
	regexp.MustCompile(`(?i)authorised use`),
}

// some descriptions end in stray bullets once the usage statement is cut away
var trailingjunk = []string{"\n• ", "\n- ", "\n-\t", "\n"}

var notdigits = regexp.MustCompile(`\D+`)

// StandardiseCode - strip the non-digits and right-pad with zeros to the fixed width
//
//	0101          -> 0101000000
//	0101 01       -> 0101010000
//	0101.01.01.01 -> 0101010101
func StandardiseCode(s string) string {
	code := notdigits.ReplaceAllString(s, "")
	for len(code) < vv.COMMODITYCODELEN {
		code = code + "0"
	}
	return code
}

// PlausibleCode - the reference tables hold headers and notes too; a code row is numeric or starts with a zero
func PlausibleCode(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return false
	}
	if strings.HasPrefix(s, "0") {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SplitUsage - cut the usage statement off the back of the cell at the earliest marker
func SplitUsage(blob string) (string, string) {
	cut := -1
	for _, m := range usagemarkers {
		loc := m.FindStringIndex(blob)
		if loc != nil && (cut == -1 || loc[0] < cut) {
			cut = loc[0]
		}
	}

	if cut == -1 {
		return blob, ""
	}

	desc := blob[:cut]
	usage := strings.TrimSpace(blob[cut:])

	for _, tj := range trailingjunk {
		for strings.HasSuffix(desc, tj) {
			desc = strings.TrimSuffix(desc, tj)
		}
	}

	return desc, usage
}

// SplitDescription - find where the parent-category preamble stops and the goods description starts
//
// the heuristics fire in a fixed order; the first that matches wins:
// a cell that is just "-"; a last "\n--" line; a last "\n- -" line; the first
// "\n-" bullet run; the first "\n•" bullet run; the last line; the whole cell
func SplitDescription(blob string) string {
	const (
		HYPH2  = "\n--"
		HYPHSP = "\n- -"
		BULL1  = "\n-"
		BULL2  = "\n•"
	)

	if strings.TrimSpace(blob) == "-" {
		return strings.TrimSpace(blob)
	}

	if i := strings.LastIndex(blob, HYPH2); i != -1 {
		return strings.TrimSpace(blob[i+1:])
	}

	if i := strings.LastIndex(blob, HYPHSP); i != -1 {
		return strings.TrimSpace(blob[i+1:])
	}

	if d, ok := bulletrun(blob, BULL1); ok {
		return d
	}

	if d, ok := bulletrun(blob, BULL2); ok {
		return d
	}

	if i := strings.LastIndex(blob, "\n"); i != -1 {
		return strings.TrimSpace(blob[i+1:])
	}

	return strings.TrimSpace(blob)
}

// bulletrun - the description is the line introducing the first bullet plus the whole bulleted run
func bulletrun(blob string, pattern string) (string, bool) {
	i := strings.Index(blob, pattern)
	if i == -1 {
		return "", false
	}

	head := blob[:i]
	tail := blob[i:]

	for strings.HasSuffix(head, "\n ") || strings.HasSuffix(head, "\n") {
		head = strings.TrimSuffix(head, "\n ")
		head = strings.TrimSuffix(head, "\n")
	}

	if j := strings.LastIndex(head, "\n"); j != -1 {
		head = head[j+1:]
	}

	return strings.TrimSpace(head + tail), true
}
