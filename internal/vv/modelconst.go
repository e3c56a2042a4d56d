//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	// the lda selection loop walks candidate topic counts and keeps the most coherent model

	LDAMINTOPICS    = 2
	LDAMAXCANDIDATE = 21
	LDASENTPERBAG   = 1
	LDAITER         = 200
	LDAXFORMPASSES  = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2
	LDATOPTERMS     = 10 // terms per topic fed to the coherence metric and the report tables
	LDATOPDOCS      = 8

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"

	// t-SNE projection of the document-over-topic vectors

	TSNEPERPLEXITY = 150
	TSNELEARNRATE  = 100
	TSNEMAXITER    = 150

	// classifier grid

	CLFKNNMINK = 2
	CLFKNNMAXK = 5

	// w2v/lexvec neighbour explorer

	VECTORNEIGHBORS = 10
	VECTORDIM       = 125
	VECTORITER      = 12
	VECTORWINDOW    = 8
	VECTORMINCOUNT  = 5

	MODELNAMETMPL = "enquiry-clf-20060102T150405" // time.Format layout
	RUNDIRTMPL    = "20060102-150405"             // extraction output directories
)
