//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

// Candidate - one classifier in the grid
type Candidate interface {
	Name() string
	Fit(train []LabelledDoc) error
	Classify(doc string) (string, error)
}

//
// KNN: tf-idf features + a linear scan index searched with cosine distance
//

type knncandidate struct {
	k     int
	fp    *FeaturePipeline
	index *nlp.LinearScanIndex
}

func knncandidates() []Candidate {
	var cc []Candidate
	for k := vv.CLFKNNMINK; k <= vv.CLFKNNMAXK; k++ {
		cc = append(cc, &knncandidate{k: k})
	}
	return cc
}

func (kc *knncandidate) Name() string {
	return fmt.Sprintf("knn-k%d", kc.k)
}

func (kc *knncandidate) Fit(train []LabelledDoc) error {
	kc.fp = NewFeaturePipeline()

	m, err := kc.fp.FitTransform(docstrings(train))
	if err != nil {
		return err
	}

	kc.index = nlp.NewLinearScanIndex(pairwise.CosineDistance)

	_, docs := m.Dims()
	for i := 0; i < docs; i++ {
		kc.index.Index(m.(mat.ColViewer).ColView(i), train[i].Label)
	}

	return nil
}

func (kc *knncandidate) Classify(doc string) (string, error) {
	const (
		FAIL = "knn index returned no matches"
	)

	q, err := kc.fp.Transform(doc)
	if err != nil {
		return "", err
	}

	matches := kc.index.Search(q.(mat.ColViewer).ColView(0), kc.k)
	if len(matches) == 0 {
		return "", fmt.Errorf(FAIL)
	}

	// majority vote; a tie falls to the nearest of the tied labels
	votes := make(map[string]int)
	for _, m := range matches {
		votes[m.ID.(string)]++
	}

	winner := matches[0].ID.(string)
	for _, m := range matches {
		l := m.ID.(string)
		if votes[l] > votes[winner] {
			winner = l
		}
	}

	return winner, nil
}

//
// NEAREST CENTROID: average the tf-idf vectors of each category; assign to the closest average
//

type centroidcandidate struct {
	fp        *FeaturePipeline
	labels    []string
	centroids map[string]*mat.VecDense
}

func newcentroidcandidate() Candidate {
	return &centroidcandidate{}
}

func (cc *centroidcandidate) Name() string {
	return "nearest-centroid"
}

func (cc *centroidcandidate) Fit(train []LabelledDoc) error {
	cc.fp = NewFeaturePipeline()

	m, err := cc.fp.FitTransform(docstrings(train))
	if err != nil {
		return err
	}

	rows, docs := m.Dims()

	sums := make(map[string]*mat.VecDense)
	counts := make(map[string]int)

	for i := 0; i < docs; i++ {
		l := train[i].Label
		if _, ok := sums[l]; !ok {
			sums[l] = mat.NewVecDense(rows, nil)
		}
		v := m.(mat.ColViewer).ColView(i)
		for r := 0; r < rows; r++ {
			sums[l].SetVec(r, sums[l].AtVec(r)+v.AtVec(r))
		}
		counts[l]++
	}

	cc.centroids = make(map[string]*mat.VecDense)
	cc.labels = nil
	for l, s := range sums {
		s.ScaleVec(1/float64(counts[l]), s)
		cc.centroids[l] = s
		cc.labels = append(cc.labels, l)
	}
	sort.Strings(cc.labels)

	return nil
}

func (cc *centroidcandidate) Classify(doc string) (string, error) {
	const (
		FAIL = "no centroids have been fit"
	)

	if len(cc.centroids) == 0 {
		return "", fmt.Errorf(FAIL)
	}

	q, err := cc.fp.Transform(doc)
	if err != nil {
		return "", err
	}

	qv := q.(mat.ColViewer).ColView(0)

	winner := ""
	best := math.Inf(-1)
	for _, l := range cc.labels {
		s := cosinesim(qv, cc.centroids[l])
		if s > best {
			best = s
			winner = l
		}
	}

	return winner, nil
}

// cosinesim - cosine of the angle between two vectors; zero vectors score zero
func cosinesim(a mat.Vector, b mat.Vector) float64 {
	na := math.Sqrt(mat.Dot(a, a))
	nb := math.Sqrt(mat.Dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return mat.Dot(a, b) / (na * nb)
}
