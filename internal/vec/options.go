//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// the defaults are tuned to the enquiry corpus: a few thousand short documents,
// not a library of long texts; so small batches, a narrow window, and a low
// MinCount, since even meaningful municipal vocabulary can be thin on the ground
//

var (
	DefaultW2VVectors = word2vec.Options{
		BatchSize:          256,
		Dim:                vv.VECTORDIM,
		DocInMemory:        true,
		Goroutines:         runtime.NumCPU(),
		Initlr:             0.025,
		Iter:               20,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           2,
		MinLR:              0.0000025,
		ModelType:          "skipgram", // "cbow" also available; skipgram handles rare terms better
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             5,
	}
	DefaultLexVecVectors = lexvec.Options{
		BatchSize:          256,
		Dim:                vv.VECTORDIM,
		DocInMemory:        true,
		Goroutines:         runtime.NumCPU(),
		Initlr:             0.025,
		Iter:               20,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           2,
		MinLR:              0.025 * 1.0e-4,
		NegativeSampleSize: 5,
		RelationType:       "ppmi", // "pmi", "co", "logco" also available; "co" will fail to model
		Smooth:             0.75,
		SubsampleThreshold: 1.0e-3,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             5,
	}
	DefaultGloveVectors = glove.Options{
		// see also: https://nlp.stanford.edu/projects/glove/
		Alpha:              0.55,
		BatchSize:          256,
		CountType:          "inc", // "prox" also available but panics
		Dim:                50,
		DocInMemory:        true,
		Goroutines:         runtime.NumCPU(),
		Initlr:             0.025,
		Iter:               30,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           2,
		SolverType:         "adagrad", // "sgd" also available
		SubsampleThreshold: 0.001,
		ToLower:            false,
		Verbose:            false,
		Window:             5,
		Xmax:               90,
	}
)

func w2voptions() word2vec.Options {
	return vectoroptions(vv.CONFIGVECTORW2V, DefaultW2VVectors)
}

func lexvecoptions() lexvec.Options {
	return vectoroptions(vv.CONFIGVECTORLEXVEC, DefaultLexVecVectors)
}

func gloveoptions() glove.Options {
	return vectoroptions(vv.CONFIGVECTORGLOVE, DefaultGloveVectors)
}

// vectoroptions - options from the named config file; a first run seeds the file with the defaults instead
func vectoroptions[T any](filename string, deflt T) T {
	const (
		ERR1 = "vectoroptions() cannot find UserHomeDir"
		ERR2 = "vectoroptions() failed to parse "
		MSG1 = "wrote default vector configuration file "
		MSG2 = "read vector configuration from "
	)

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return deflt
	}

	fn := fmt.Sprintf(vv.CONFIGALTAPTH, h) + filename

	if _, e = os.Stat(fn); e != nil {
		content, err := json.MarshalIndent(deflt, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fn, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + filename)
		return deflt
	}

	loadedcfg, _ := os.Open(fn)
	decoderc := json.NewDecoder(loadedcfg)
	var vc T
	errc := decoderc.Decode(&vc)
	_ = loadedcfg.Close()

	if errc != nil {
		Msg.CRIT(ERR2 + filename)
		return deflt
	}

	Msg.TMI(MSG2 + filename)
	return vc
}
