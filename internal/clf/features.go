//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"fmt"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// FeaturePipeline - a count vectoriser chained into a tf-idf transformer; documents are columns of the output
type FeaturePipeline struct {
	Vectoriser *nlp.CountVectoriser
	Pipeline   *nlp.Pipeline
}

// NewFeaturePipeline - fresh pipeline; one per training run because fitting mutates the vocabulary
func NewFeaturePipeline() *FeaturePipeline {
	stops := gen.StringMapKeysIntoSlice(txt.GetStopSet())
	vectoriser := nlp.NewCountVectoriser(stops...)
	transformer := nlp.NewTfidfTransformer()
	return &FeaturePipeline{
		Vectoriser: vectoriser,
		Pipeline:   nlp.NewPipeline(vectoriser, transformer),
	}
}

// FitTransform - fit on the training corpus and return its feature matrix
func (fp *FeaturePipeline) FitTransform(corpus []string) (mat.Matrix, error) {
	return fp.Pipeline.FitTransform(corpus...)
}

// Transform - featurise unseen documents with the already-fitted pipeline
func (fp *FeaturePipeline) Transform(docs ...string) (mat.Matrix, error) {
	return fp.Pipeline.Transform(docs...)
}

// LabelledDoc - one normalised enquiry and its category
type LabelledDoc struct {
	EnquiryID int64
	Label     string
	Doc       string
}

// PrepareDocs - normalise every enquiry; drop the empty and the under-represented
func PrepareDocs(enn []str.Enquiry) []LabelledDoc {
	const (
		MSG1 = "PrepareDocs() dropped category '%s': only %d enquiries (need %d)"
		MSG2 = "PrepareDocs() kept %d of %d enquiries"
	)

	stops := txt.GetStopSet()

	var docs []LabelledDoc
	for i := 0; i < len(enn); i++ {
		tokens := txt.NormalisePipeline(enn[i].Text, stops)
		if len(tokens) == 0 {
			continue
		}
		docs = append(docs, LabelledDoc{
			EnquiryID: enn[i].ID,
			Label:     enn[i].Category,
			Doc:       strings.Join(tokens, " "),
		})
	}

	percat := make(map[string]int)
	for i := 0; i < len(docs); i++ {
		percat[docs[i].Label]++
	}

	var kept []LabelledDoc
	for i := 0; i < len(docs); i++ {
		if percat[docs[i].Label] < vv.MINPERCLASS {
			continue
		}
		kept = append(kept, docs[i])
	}

	for cat, n := range percat {
		if n < vv.MINPERCLASS {
			Msg.NOTE(fmt.Sprintf(MSG1, cat, n, vv.MINPERCLASS))
		}
	}

	Msg.PEEK(fmt.Sprintf(MSG2, len(kept), len(enn)))

	return kept
}
