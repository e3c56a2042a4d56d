//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

//
// STOPWORDS
//

var (
	// English100 - common english function words
	English100 = []string{"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by", "can",
		"could", "did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further", "had",
		"has", "have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
		"in", "into", "is", "it", "its", "itself", "just", "ma", "me", "more", "most", "my", "myself", "no", "nor",
		"not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves", "out", "over",
		"own", "same", "she", "should", "so", "some", "such", "than", "that", "the", "their", "theirs", "them",
		"themselves", "then", "there", "these", "they", "this", "those", "through", "to", "too", "under", "until",
		"up", "very", "was", "we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will",
		"with", "would", "you", "your", "yours", "yourself", "yourselves"}
	// EnglishExtra - enquiry boilerplate that carries no signal
	EnglishExtra = []string{"dear", "hi", "hello", "please", "thanks", "thank", "regards", "kind", "sincerely",
		"team", "customer", "service", "services", "query", "enquiry", "enquiries", "ref", "reference",
		"morning", "afternoon", "madam", "sir", "also", "however", "therefore", "yet", "etc", "eg", "ie",
		"would", "could", "may", "might", "shall", "let", "know", "advise", "asap", "fyi"}
	EnglishStop = append(English100, EnglishExtra...)
	// EnglishKeep - members of EnglishStop we will not toss and must never spell-correct away
	EnglishKeep = []string{"rate", "rates", "bill", "account", "payment", "refund", "waste", "licence", "permit",
		"money_amount", "date_full", "web_address", "num_4_digits", "num_2_digits", "num_other"}
)

// ReadStopConfig - read the vv.CONFIGSTOPS file and return []stopwords; if it does not exist, generate it
func ReadStopConfig() []string {
	const (
		ERR1 = "ReadStopConfig() cannot find UserHomeDir"
		ERR2 = "ReadStopConfig() failed to parse "
		MSG1 = "ReadStopConfig() wrote stopword configuration file: "
	)

	stops := gen.SetSubtraction(append([]string{}, EnglishStop...), EnglishKeep)

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return stops
	}

	vcfg := vv.CONFIGSTOPS
	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vcfg)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vcfg, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vcfg)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vcfg)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vcfg)
		} else {
			stops = stp
		}
	}
	return stops
}

// GetStopSet - the active stop list as a set
func GetStopSet() map[string]struct{} {
	return gen.ToSet(ReadStopConfig())
}

// ReadKeepConfig - the keep list: words the pipelines must pass through untouched
func ReadKeepConfig() map[string]struct{} {
	const (
		ERR2 = "ReadKeepConfig() failed to parse "
		MSG1 = "ReadKeepConfig() wrote keep-list configuration file: "
	)

	keeps := append([]string{}, EnglishKeep...)

	h, e := os.UserHomeDir()
	if e != nil {
		return gen.ToSet(keeps)
	}

	vcfg := vv.CONFIGKEEP
	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vcfg)

	if yes != nil {
		sort.Strings(keeps)
		content, err := json.MarshalIndent(keeps, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vcfg, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vcfg)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vcfg)
		decoderc := json.NewDecoder(loadedcfg)
		var kp []string
		errc := decoderc.Decode(&kp)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vcfg)
		} else {
			keeps = kp
		}
	}
	return gen.ToSet(keeps)
}
