//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"sort"
	"time"

	"github.com/james-bowman/nlp"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/db"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/txt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vlt"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

//see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go
//DefaultLDA = nlp.LatentDirichletAllocation{
//	Iterations:                    1000,
//	PerplexityTolerance:           1e-2,
//	BatchSize:                     100,
//	K:                             k,
//	TransformationPasses:          500,
//	Alpha:                         0.1,
//	Eta:                           0.01,
//	...
//}

// ModelResult - everything a route needs to report on the winning model
type ModelResult struct {
	Run             str.TopicRun
	Bags            []EnquiryBag
	Corpus          []string
	DocsOverTopics  mat.Matrix
	TopicsOverWords mat.Matrix
	Vectoriser      *nlp.CountVectoriser
}

// ldamodel - fit one candidate model over the corpus
func ldamodel(topics int, corpus []string, vectoriser *nlp.CountVectoriser) (mat.Matrix, mat.Matrix, error) {
	lda := nlp.NewLatentDirichletAllocation(topics)
	lda.Processes = lnch.Config.WorkerCount
	lda.Iterations = vv.LDAITER
	lda.TransformationPasses = vv.LDAXFORMPASSES

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, nil, err
	}

	topicsOverWords := lda.Components()

	return docsOverTopics, topicsOverWords, nil
}

// SelectModel - fit a candidate model for every k in the hunt range; keep the one with the best umass coherence
func SelectModel(jobid string, bags []EnquiryBag) (ModelResult, error) {
	const (
		MSG1  = "SelectModel() is hunting for the best model between k=%d and k=%d over %d documents"
		MSG2  = "k=%d scored %.4f"
		MSG3  = "SelectModel() picked k=%d (umass %.4f)"
		SUMM  = "Modeling topics for %d enquiry sentences"
		PROG  = "fitting a model with %d topics"
		FAIL1 = "the corpus is empty; nothing to model"
		FAIL2 = "k=%d failed to converge: %s"
		FAIL3 = "no candidate model could be fit"
		KIND  = "topics"
	)

	if len(bags) == 0 {
		return ModelResult{}, fmt.Errorf(FAIL1)
	}

	corpus := make([]string, len(bags))
	for i := 0; i < len(bags); i++ {
		corpus[i] = bags[i].ModifiedBag
	}

	maxk := lnch.Config.LdaMaxTopics
	Msg.NOTE(fmt.Sprintf(MSG1, vv.LDAMINTOPICS, maxk-1, len(corpus)))

	start := time.Now()
	candidates := maxk - vv.LDAMINTOPICS

	vlt.WSInfo.InsertInfo <- vlt.WSJobInfo{ID: jobid, Exists: true, Total: candidates, Remain: candidates, JType: KIND, Launched: start}
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: jobid, Val: fmt.Sprintf(SUMM, len(corpus))}

	tokenised := make([][]string, len(corpus))
	for i := 0; i < len(corpus); i++ {
		tokenised[i] = txt.Tokenise(corpus[i])
	}
	docfreq, pairfreq := BuildFrequencyTables(tokenised)

	stops := gen.StringMapKeysIntoSlice(txt.GetStopSet())

	coherence := make(map[int]float64)
	best := ModelResult{}
	bestk := 0
	scored := 0

	for k := vv.LDAMINTOPICS; k < maxk; k++ {
		vlt.WSInfo.UpdateProgMsg <- vlt.WSJIKVs{Key: jobid, Val: fmt.Sprintf(PROG, k)}

		// each candidate needs a fresh vectoriser: FitTransform mutates the vocabulary
		vectoriser := nlp.NewCountVectoriser(stops...)

		dot, tow, err := ldamodel(k, corpus, vectoriser)
		if err != nil {
			Msg.WARN(fmt.Sprintf(FAIL2, k, err.Error()))
			vlt.WSInfo.UpdateRemain <- vlt.WSJIKVi{Key: jobid, Val: maxk - k - 1}
			continue
		}

		tops := toptermspertopic(k, tow, vectoriser, vv.LDATOPTERMS)
		score := UMassCoherence(tops, docfreq, pairfreq)
		coherence[k] = score
		scored++

		Msg.PEEK(fmt.Sprintf(MSG2, k, score))

		if outscorescandidate(score, bestk, coherence) {
			bestk = k
			best = ModelResult{
				Bags:            bags,
				Corpus:          corpus,
				DocsOverTopics:  dot,
				TopicsOverWords: tow,
				Vectoriser:      vectoriser,
			}
		}

		vlt.WSInfo.UpdateScored <- vlt.WSJIKVi{Key: jobid, Val: scored}
		vlt.WSInfo.UpdateRemain <- vlt.WSJIKVi{Key: jobid, Val: maxk - k - 1}
	}

	if bestk == 0 {
		return ModelResult{}, fmt.Errorf(FAIL3)
	}

	Msg.NOTE(fmt.Sprintf(MSG3, bestk, coherence[bestk]))

	best.Run = str.TopicRun{
		JobID:      jobid,
		Started:    start,
		Finished:   time.Now(),
		Documents:  len(corpus),
		Vocabulary: len(best.Vectoriser.Vocabulary),
		BestK:      bestk,
		Coherence:  coherence,
		Topics:     summarise(bestk, best),
	}

	db.RecordModelRun(jobid, KIND, fmt.Sprintf("lda-k%02d", bestk), start, fmt.Sprintf("k=%d", bestk), coherence[bestk])

	e := db.VaultStore(vaultname(jobid), best.Run)
	if e != nil {
		Msg.WARN(e.Error())
	}

	return best, nil
}

func vaultname(jobid string) string {
	return "topicrun-" + jobid
}

// outscorescandidate - umass runs negative and closer to zero is better; a tie keeps the incumbent, so the smaller k wins
func outscorescandidate(score float64, bestk int, coherence map[int]float64) bool {
	return bestk == 0 || score > coherence[bestk]
}

// toptermspertopic - the n most heavily weighted words for each topic
func toptermspertopic(ntopics int, topicsOverWords mat.Matrix, vectoriser *nlp.CountVectoriser, topn int) [][]str.WeightedTerm {
	tr, tc := topicsOverWords.Dims()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	if topn > tc {
		topn = tc
	}

	tops := make([][]str.WeightedTerm, ntopics)
	for topic := 0; topic < tr; topic++ {
		tss := make([]str.WeightedTerm, tc)
		for word := 0; word < tc; word++ {
			tss[word] = str.WeightedTerm{
				Term:   vocab[word],
				Weight: topicsOverWords.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			return tss[i].Weight > tss[j].Weight
		})
		tops[topic] = tss[0:topn]
	}
	return tops
}

// summarise - collect per-topic terms, top documents, and document shares for the winning model
func summarise(ntopics int, mr ModelResult) []str.TopicSummary {
	tops := toptermspertopic(ntopics, mr.TopicsOverWords, mr.Vectoriser, vv.LDATOPTERMS)
	perdoc := docpertopic(ntopics, mr.DocsOverTopics)
	_, dc := mr.DocsOverTopics.Dims()

	summaries := make([]str.TopicSummary, ntopics)
	for topic := 0; topic < ntopics; topic++ {
		summaries[topic] = str.TopicSummary{
			Topic:    topic + 1,
			Terms:    tops[topic],
			TopDocs:  topdocs(topic, mr.DocsOverTopics, vv.LDATOPDOCS),
			DocShare: float64(perdoc[topic]) / float64(dc),
		}
	}
	return summaries
}

// docpertopic - n documents have topic x as their dominant topic
func docpertopic(ntopics int, docsOverTopics mat.Matrix) []int {
	counter := make([]int, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		counter[winner] += 1
	}
	return counter
}

// topdocs - the documents most heavily loaded onto one topic
func topdocs(topic int, docsOverTopics mat.Matrix, topn int) []str.WeightedDoc {
	_, dc := docsOverTopics.Dims()

	dd := make([]str.WeightedDoc, dc)
	for doc := 0; doc < dc; doc++ {
		dd[doc] = str.WeightedDoc{DocID: doc, Weight: docsOverTopics.At(topic, doc)}
	}

	sort.Slice(dd, func(i, j int) bool {
		return dd[i].Weight > dd[j].Weight
	})

	if topn > len(dd) {
		topn = len(dd)
	}
	return dd[0:topn]
}
