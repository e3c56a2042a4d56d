//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

// DocPoint - one document of the winning model flattened into the plane
type DocPoint struct {
	X     float64
	Y     float64
	Topic int
}

// EmbedDocs - t-Distributed Stochastic Neighbor Embedding of the document-over-topic distribution
func EmbedDocs(mr ModelResult) []DocPoint {
	dr, dc := mr.DocsOverTopics.Dims()

	dominant := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if mr.DocsOverTopics.At(topic, doc) > max {
				winner = topic
				max = mr.DocsOverTopics.At(topic, doc)
			}
		}
		dominant[doc] = winner
	}

	var dd []float64
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dd = append(dd, mr.DocsOverTopics.At(topic, doc))
		}
	}

	// rows are documents, columns are topic loadings; flop r & c or you get a k-by-2 matrix later
	wv := mat.NewDense(dc, dr, dd)

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNRATE, vv.TSNEMAXITER, false)
	t.EmbedData(wv, nil)

	er, _ := t.Y.Dims()
	points := make([]DocPoint, er)
	for doc := 0; doc < er; doc++ {
		points[doc] = DocPoint{
			X:     t.Y.At(doc, 0),
			Y:     t.Y.At(doc, 1),
			Topic: dominant[doc] + 1,
		}
	}

	return points
}
