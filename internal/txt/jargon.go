//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"regexp"
	"strings"
)

//
// JARGON REPLACEMENT
//

// enquiry text is full of account numbers, sums of money, dates, and links; the models care
// that one is present, not which one; so each class collapses to a single pseudo-token

type jargonswap struct {
	pattern *regexp.Regexp
	token   string
}

// the order is significant: money before bare numbers, dates before 4-digit years
var jargonswaps = []jargonswap{
	{regexp.MustCompile(`£\s?\d+(?:[.,]\d+)*|\d+(?:[.,]\d+)*\s?(?:pounds|gbp|pence)\b`), " money_amount "},
	{regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`), " date_full "},
	{regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{0,4}\b`), " date_full "},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), " date_full "},
	{regexp.MustCompile(`\bhttps?://\S+|\bwww\.\S+`), " web_address "},
	{regexp.MustCompile(`\b\d{4}\b`), " num_4_digits "},
	{regexp.MustCompile(`\b\d{2}\b`), " num_2_digits "},
	{regexp.MustCompile(`\b\d+\b`), " num_other "},
}

var punctstrip = regexp.MustCompile(`[!"#$%&()*+,./:;<=>?@\[\]^_` + "`" + `{|}~'’“”-]`)

// ReplaceJargon - collapse money, dates, urls, and numbers to class tokens; then strip punctuation
func ReplaceJargon(thetext string) string {
	thetext = strings.ToLower(thetext)
	for i := 0; i < len(jargonswaps); i++ {
		thetext = jargonswaps[i].pattern.ReplaceAllString(thetext, jargonswaps[i].token)
	}
	thetext = punctstrip.ReplaceAllString(thetext, " ")
	return thetext
}

// Stripper - delete each in a list of patterns from a string
func Stripper(item string, purge []string) string {
	for i := 0; i < len(purge); i++ {
		re := regexp.MustCompile(purge[i])
		item = re.ReplaceAllString(item, "")
	}
	return item
}

// SplitOnPunctuation - swap all sentence-enders for one item; then split on it...
func SplitOnPunctuation(thetext string) []string {
	swap := strings.NewReplacer("?", ".", "!", ".", ";", ".")
	thetext = swap.Replace(thetext)
	split := strings.Split(thetext, ".")
	return split
}
