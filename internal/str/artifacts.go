//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "time"

// TopicRun - one pass of the lda selection loop, persisted to the vault and the store
type TopicRun struct {
	JobID      string
	Started    time.Time
	Finished   time.Time
	Documents  int
	Vocabulary int
	BestK      int
	Coherence  map[int]float64 // candidate k -> umass coherence
	Topics     []TopicSummary  // the winning model only
}

// TopicSummary - top terms and documents for one topic of the winning model
type TopicSummary struct {
	Topic    int
	Terms    []WeightedTerm
	TopDocs  []WeightedDoc
	DocShare float64 // fraction of documents whose dominant topic this is
}

type WeightedTerm struct {
	Term   string
	Weight float64
}

type WeightedDoc struct {
	DocID  int
	Weight float64
}

// ClassifierRun - one grid-search pass; the best candidate is what Predict() loads
type ClassifierRun struct {
	JobID     string
	Name      string // timestamped, e.g. "enquiry-clf-20260830T101502"
	Started   time.Time
	Finished  time.Time
	Labels    []string
	TrainSize int
	TestSize  int
	Scores    map[string]float64 // candidate name -> test accuracy
	Winner    string
	Accuracy  float64
}

// ExtractRun - one docx extraction pass
type ExtractRun struct {
	Started time.Time
	Source  string
	OutDir  string
	Archive string
	Tables  int
	Rows    int
}
