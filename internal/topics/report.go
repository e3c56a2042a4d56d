//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"strings"
)

//
// HTML TABLES for the topics route
//

// TopicSummaryTable - html table that reports on top words and topic weights in the winning model
func TopicSummaryTable(mr ModelResult) string {
	const (
		NTH = 2

		FULLTABLE = `
	<table class="ldawords"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="modelrow">
        <td class="modelrank" colspan = "4">Topic model of the enquiries via Latent Dirichlet Allocation (k=%d)</td>
    </tr>
	<tr class="modelrow">
		<td class="modelrank">Topic</td>
		<td class="modelrank">Top %d words associated with each topic</td>
		<td class="modelrank"># of sentences with topic N as their dominant topic</td>
		<td class="modelrank">scaled total accumulated weight of each topic</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="modelrank">%d</td>
		<td class="modelsent">%s</td>
		<td class="modelsent">%d (%.2f%%)</td>
		<td class="modelsent">%.2f%%</td>`
	)

	byweight := docbyweight(mr.Run.BestK, mr)
	_, dc := mr.DocsOverTopics.Dims()

	var tablecolumn []string
	for _, ts := range mr.Run.Topics {
		ww := make([]string, len(ts.Terms))
		for i := 0; i < len(ts.Terms); i++ {
			ww[i] = ts.Terms[i].Term
		}
		data := strings.Join(ww, ", ")
		ndocs := int(ts.DocShare * float64(dc))
		r := fmt.Sprintf(TABLEELEM, ts.Topic, data, ndocs, ts.DocShare*100, byweight[ts.Topic-1]*100)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "modelrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	topn := 0
	if len(mr.Run.Topics) > 0 {
		topn = len(mr.Run.Topics[0].Terms)
	}

	tableout := fmt.Sprintf(TABLETOP, mr.Run.BestK, topn, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}

// TopSentencesTable - html table reporting sentences most associated with each topic
func TopSentencesTable(mr ModelResult) string {
	const (
		NTH = 2

		FULLTABLE = `
	<table class="ldasentences"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="modelrow">
        <td class="modelrank" colspan = "4">Sentences most associated with each topic</td>
    </tr>
	<tr class="modelrow">
		<td class="modelrank">Topic</td>
		<td class="modelrank">Weight</td>
		<td class="modelrank">Enquiry</td>
		<td class="modelrank">Sentence</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="modelrank">%d</td>
		<td class="modelscore">%.4f</td>
		<td class="modelloc">#%d (%s)</td>
		<td class="modelsent">%s</td>`
	)

	var tablecolumn []string
	for _, ts := range mr.Run.Topics {
		if len(ts.TopDocs) == 0 {
			continue
		}
		w := ts.TopDocs[0]
		bag := mr.Bags[w.DocID]
		r := fmt.Sprintf(TABLEELEM, ts.Topic, w.Weight, bag.EnquiryID, bag.Category, bag.Bag)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "modelrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)

	return tableout
}

// docbyweight - scaled total accumulated weight of each topic
func docbyweight(ntopics int, mr ModelResult) []float64 {
	counter := make([]float64, ntopics)
	dr, dc := mr.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += mr.DocsOverTopics.At(topic, doc)
		}
	}

	high := float64(0)
	for i := 0; i < ntopics; i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}

	scaled := make([]float64, ntopics)
	if high == 0 {
		return scaled
	}
	for i := 0; i < ntopics; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}
