//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model"
	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
)

//
// EMBEDDINGS: train term vectors over the normalised corpus; cache the results by corpus fingerprint
//

// BuildTextBlock - the whole enquiry corpus as one normalised text block
func BuildTextBlock(enn []str.Enquiry) string {
	stops := txt.GetStopSet()

	var sb strings.Builder
	for i := 0; i < len(enn); i++ {
		tokens := txt.NormalisePipeline(enn[i].Text, stops)
		if len(tokens) == 0 {
			continue
		}
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteString(" ")
	}
	return sb.String()
}

// Fingerprint - the cache key: model type + a hash of the text block
func Fingerprint(modeltype string, thetext string) string {
	return fmt.Sprintf("nn-%s-%x", modeltype, md5.Sum([]byte(thetext)))
}

// FetchEmbeddings - vault hit or a fresh training run
func FetchEmbeddings(modeltype string, thetext string) embedding.Embeddings {
	const (
		MSG1 = "FetchEmbeddings() found stored embeddings for %s"
		MSG2 = "FetchEmbeddings() is training a new %s model"
	)

	fp := Fingerprint(modeltype, thetext)

	if db.VaultHas(fp) {
		Msg.PEEK(fmt.Sprintf(MSG1, fp))
		var embs embedding.Embeddings
		if err := db.VaultFetch(fp, &embs); err == nil && !embs.Empty() {
			return embs
		}
	}

	Msg.NOTE(fmt.Sprintf(MSG2, modeltype))
	embs := generateembeddings(modeltype, thetext)

	if !embs.Empty() {
		if err := db.VaultStore(fp, embs); err != nil {
			Msg.WARN(err.Error())
		}
	}

	return embs
}

// generateembeddings - turn the text block into a collection of semantic vector embeddings
func generateembeddings(modeltype string, thetext string) embedding.Embeddings {
	const (
		FAIL1 = "model initialization failed"
		FAIL2 = "generateembeddings() failed to train vector embeddings"
		FAIL3 = "generateembeddings() failed to save vector embeddings"
		FAIL4 = "generateembeddings() failed to load vector embeddings"
		MSG1  = "generateembeddings() successfuly trained a %s model (%ss)"
	)

	start := time.Now()

	var vmodel model.Model

	switch modeltype {
	case "glove":
		m, err := glove.NewForOptions(gloveoptions())
		if err != nil {
			Msg.CRIT(FAIL1)
			return embedding.Embeddings{}
		}
		vmodel = m
	case "lexvec":
		m, err := lexvec.NewForOptions(lexvecoptions())
		if err != nil {
			Msg.CRIT(FAIL1)
			return embedding.Embeddings{}
		}
		vmodel = m
	default:
		m, err := word2vec.NewForOptions(w2voptions())
		if err != nil {
			Msg.CRIT(FAIL1)
			return embedding.Embeddings{}
		}
		vmodel = m
	}

	// input for Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(thetext))

	if err := vmodel.Train(b); err != nil {
		Msg.CRIT(FAIL2)
		return embedding.Embeddings{}
	}

	t := fmt.Sprintf("%.3f", time.Now().Sub(start).Seconds())
	Msg.TMI(fmt.Sprintf(MSG1, modeltype, t))

	// use buffers; skip the disk
	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err := vmodel.Save(w, vector.Agg); err != nil {
		Msg.NOTE(FAIL3)
		return embedding.Embeddings{}
	}

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	if err != nil {
		Msg.NOTE(FAIL4)
		return embedding.Embeddings{}
	}

	return embs
}
