//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
)

var (
	cached    Candidate
	cachedrun string
	cachemtx  sync.Mutex
)

// Predict - classify one raw enquiry with the winner of the last training run
func Predict(text string) (string, string, error) {
	const (
		FAIL1 = "no classifier has been trained yet"
		FAIL2 = "could not rebuild classifier '%s': %s"
	)

	name, winner, _ := db.LatestModelRun("classifier")
	if name == "" {
		return "", "", fmt.Errorf(FAIL1)
	}

	cand, err := loadcandidate(name, winner)
	if err != nil {
		return "", "", fmt.Errorf(FAIL2, name, err.Error())
	}

	stops := txt.GetStopSet()
	doc := strings.Join(txt.NormalisePipeline(text, stops), " ")

	got, err := cand.Classify(doc)
	if err != nil {
		return "", "", err
	}

	return got, name, nil
}

// loadcandidate - fetch the persisted bundle and refit the winning candidate; cache it until the next run
func loadcandidate(name string, winner string) (Candidate, error) {
	cachemtx.Lock()
	defer cachemtx.Unlock()

	if cached != nil && cachedrun == name {
		return cached, nil
	}

	var bundle ModelBundle
	if err := db.VaultFetch(name, &bundle); err != nil {
		return nil, err
	}

	train := make([]LabelledDoc, len(bundle.TrainDocs))
	for i := 0; i < len(bundle.TrainDocs); i++ {
		train[i] = LabelledDoc{Doc: bundle.TrainDocs[i], Label: bundle.TrainLabels[i]}
	}

	cand := candidatebyname(winner)
	if err := cand.Fit(train); err != nil {
		return nil, err
	}

	cached = cand
	cachedrun = name

	return cand, nil
}

// candidatebyname - map a grid name like "knn-k3" back onto a fresh candidate
func candidatebyname(name string) Candidate {
	for _, c := range knncandidates() {
		if c.Name() == name {
			return c
		}
	}
	return newcentroidcandidate()
}

// dropcached - forget the refitted model after a new training run
func dropcached() {
	cachemtx.Lock()
	defer cachemtx.Unlock()
	cached = nil
	cachedrun = ""
}
