//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

// ModelBundle - everything Predict() needs to rebuild the winning candidate
type ModelBundle struct {
	Run         str.ClassifierRun
	Winner      string
	TrainDocs   []string
	TrainLabels []string
}

// Train - grid-search the candidate classifiers over a seeded split; persist the winner
func Train(jobid string) (str.ClassifierRun, error) {
	const (
		MSG1  = "Train() has %d candidates over %d train / %d test documents"
		MSG2  = "%s scored %.4f"
		MSG3  = "Train() picked %s (accuracy %.4f)"
		SUMM  = "Training enquiry classifiers on %d documents"
		PROG  = "evaluating %s"
		FAIL1 = "too few usable enquiries to train on"
		FAIL2 = "candidate %s failed: %s"
		FAIL3 = "no candidate classifier could be evaluated"
		KIND  = "classifier"
	)

	start := time.Now()

	enn := db.GetEnquiries("")
	docs := PrepareDocs(enn)
	if len(docs) < vv.MINPERCLASS*2 {
		return str.ClassifierRun{}, fmt.Errorf(FAIL1)
	}

	train, test := Split(docs, vv.TESTFRACTION, vv.SPLITSEED)

	candidates := knncandidates()
	candidates = append(candidates, newcentroidcandidate())

	vlt.WSInfo.InsertInfo <- vlt.WSJobInfo{ID: jobid, Exists: true, Total: len(candidates), Remain: len(candidates), JType: KIND, Launched: start}
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: jobid, Val: fmt.Sprintf(SUMM, len(docs))}

	Msg.NOTE(fmt.Sprintf(MSG1, len(candidates), len(train), len(test)))

	scores := make(map[string]float64)
	winner := ""
	scored := 0

	for i, cand := range candidates {
		vlt.WSInfo.UpdateProgMsg <- vlt.WSJIKVs{Key: jobid, Val: fmt.Sprintf(PROG, cand.Name())}

		acc, err := Evaluate(cand, train, test)
		if err != nil {
			Msg.WARN(fmt.Sprintf(FAIL2, cand.Name(), err.Error()))
			vlt.WSInfo.UpdateRemain <- vlt.WSJIKVi{Key: jobid, Val: len(candidates) - i - 1}
			continue
		}

		scores[cand.Name()] = acc
		scored++
		Msg.PEEK(fmt.Sprintf(MSG2, cand.Name(), acc))

		if outscoreswinner(acc, winner, scores) {
			winner = cand.Name()
		}

		vlt.WSInfo.UpdateScored <- vlt.WSJIKVi{Key: jobid, Val: scored}
		vlt.WSInfo.UpdateRemain <- vlt.WSJIKVi{Key: jobid, Val: len(candidates) - i - 1}
	}

	if winner == "" {
		return str.ClassifierRun{}, fmt.Errorf(FAIL3)
	}

	Msg.NOTE(fmt.Sprintf(MSG3, winner, scores[winner]))

	run := str.ClassifierRun{
		JobID:     jobid,
		Name:      time.Now().Format(vv.MODELNAMETMPL),
		Started:   start,
		Finished:  time.Now(),
		Labels:    labelset(docs),
		TrainSize: len(train),
		TestSize:  len(test),
		Scores:    scores,
		Winner:    winner,
		Accuracy:  scores[winner],
	}

	bundle := ModelBundle{
		Run:         run,
		Winner:      winner,
		TrainDocs:   docstrings(train),
		TrainLabels: doclabels(train),
	}

	e := db.VaultStore(run.Name, bundle)
	if e != nil {
		return run, e
	}

	db.RecordModelRun(jobid, KIND, run.Name, start, winner, scores[winner])
	dropcached()

	return run, nil
}

// Split - deterministic shuffle, then hold out the tail as the test set
func Split(docs []LabelledDoc, testfraction float64, seed int64) ([]LabelledDoc, []LabelledDoc) {
	shuffled := make([]LabelledDoc, len(docs))
	copy(shuffled, docs)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	ntest := int(float64(len(shuffled)) * testfraction)
	cut := len(shuffled) - ntest

	return shuffled[:cut], shuffled[cut:]
}

// Evaluate - accuracy of one candidate on the held-out documents
func Evaluate(cand Candidate, train []LabelledDoc, test []LabelledDoc) (float64, error) {
	if err := cand.Fit(train); err != nil {
		return 0, err
	}

	right := 0
	for i := 0; i < len(test); i++ {
		got, err := cand.Classify(test[i].Doc)
		if err != nil {
			return 0, err
		}
		if got == test[i].Label {
			right++
		}
	}

	if len(test) == 0 {
		return 0, nil
	}
	return float64(right) / float64(len(test)), nil
}

// outscoreswinner - strictly greater than the incumbent; a tie keeps the earlier candidate in the grid
func outscoreswinner(acc float64, winner string, scores map[string]float64) bool {
	return winner == "" || acc > scores[winner]
}

func labelset(docs []LabelledDoc) []string {
	seen := make(map[string]struct{})
	for i := 0; i < len(docs); i++ {
		seen[docs[i].Label] = struct{}{}
	}
	var ll []string
	for l := range seen {
		ll = append(ll, l)
	}
	sort.Strings(ll)
	return ll
}

func docstrings(docs []LabelledDoc) []string {
	dd := make([]string, len(docs))
	for i := 0; i < len(docs); i++ {
		dd[i] = docs[i].Doc
	}
	return dd
}

func doclabels(docs []LabelledDoc) []string {
	ll := make([]string, len(docs))
	for i := 0; i < len(docs); i++ {
		ll[i] = docs[i].Label
	}
	return ll
}
