//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

func somedocs(n int) []LabelledDoc {
	dd := make([]LabelledDoc, n)
	for i := 0; i < n; i++ {
		dd[i] = LabelledDoc{
			EnquiryID: int64(i),
			Label:     fmt.Sprintf("cat%d", i%3),
			Doc:       fmt.Sprintf("document %d", i),
		}
	}
	return dd
}

func TestSplitProportions(t *testing.T) {
	docs := somedocs(100)
	train, test := Split(docs, vv.TESTFRACTION, vv.SPLITSEED)
	require.Len(t, train, 70)
	require.Len(t, test, 30)
}

func TestSplitDeterministic(t *testing.T) {
	docs := somedocs(50)
	t1, _ := Split(docs, vv.TESTFRACTION, vv.SPLITSEED)
	t2, _ := Split(docs, vv.TESTFRACTION, vv.SPLITSEED)
	require.Equal(t, t1, t2)
}

func TestSplitKeepsEveryDocument(t *testing.T) {
	docs := somedocs(40)
	train, test := Split(docs, vv.TESTFRACTION, vv.SPLITSEED)

	seen := make(map[int64]bool)
	for _, d := range append(append([]LabelledDoc{}, train...), test...) {
		seen[d.EnquiryID] = true
	}
	require.Len(t, seen, 40)
}

// rulecandidate - a fixed rule standing in for a real classifier
type rulecandidate struct{}

func (rc rulecandidate) Name() string { return "rule" }

func (rc rulecandidate) Fit(train []LabelledDoc) error { return nil }

func (rc rulecandidate) Classify(doc string) (string, error) {
	if strings.Contains(doc, "bill") {
		return "billing", nil
	}
	return "waste", nil
}

func TestEvaluate(t *testing.T) {
	test := []LabelledDoc{
		{Label: "billing", Doc: "my bill is wrong"},
		{Label: "waste", Doc: "missed collection"},
		{Label: "billing", Doc: "collection charge"},
		{Label: "waste", Doc: "bin not emptied"},
	}

	acc, err := Evaluate(rulecandidate{}, nil, test)
	require.NoError(t, err)
	require.InDelta(t, 0.75, acc, 1e-9)
}

func TestEvaluateEmptyTestSet(t *testing.T) {
	acc, err := Evaluate(rulecandidate{}, nil, nil)
	require.NoError(t, err)
	require.Zero(t, acc)
}

func TestOutscoreswinner(t *testing.T) {
	scores := map[string]float64{"knn-3": 0.8}

	// no incumbent yet: anything wins
	require.True(t, outscoreswinner(0.1, "", scores))

	require.True(t, outscoreswinner(0.9, "knn-3", scores))
	require.False(t, outscoreswinner(0.7, "knn-3", scores))

	// a tying score keeps the earlier candidate in the grid
	require.False(t, outscoreswinner(0.8, "knn-3", scores))
}

func TestLabelset(t *testing.T) {
	docs := []LabelledDoc{
		{Label: "waste"}, {Label: "billing"}, {Label: "waste"}, {Label: "planning"},
	}
	require.Equal(t, []string{"billing", "planning", "waste"}, labelset(docs))
}
