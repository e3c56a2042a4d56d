//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sum

import (
	"fmt"
	"strconv"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Bounds - the requested size window for a summary, in words
type Bounds struct {
	Lower int
	Upper int
}

// ParseBounds - validate the form inputs against the document length; blanks fall back to the default window
func ParseBounds(lowerstr string, upperstr string, wordcount int) (Bounds, error) {
	const (
		FAIL1 = "provide both bounds or neither"
		FAIL2 = "'%s' is not a whole number"
		FAIL3 = "the lower bound (%d) must be less than the upper bound (%d)"
		FAIL4 = "the lower bound (%d) exceeds the document length (%d words)"
	)

	if (len(lowerstr) == 0) != (len(upperstr) == 0) {
		return Bounds{}, fmt.Errorf(FAIL1)
	}

	if len(lowerstr) == 0 {
		return DefaultBounds(wordcount), nil
	}

	lower, e := strconv.Atoi(lowerstr)
	if e != nil {
		return Bounds{}, fmt.Errorf(FAIL2, lowerstr)
	}

	upper, e := strconv.Atoi(upperstr)
	if e != nil {
		return Bounds{}, fmt.Errorf(FAIL2, upperstr)
	}

	if lower >= upper {
		return Bounds{}, fmt.Errorf(FAIL3, lower, upper)
	}

	if lower > wordcount {
		return Bounds{}, fmt.Errorf(FAIL4, lower, wordcount)
	}

	return Bounds{Lower: lower, Upper: upper}, nil
}

// DefaultBounds - a window of 10% to 80% of the document
func DefaultBounds(wordcount int) Bounds {
	return Bounds{
		Lower: int(vv.SUMLOWERFRACT * float64(wordcount)),
		Upper: int(vv.SUMUPPERFRACT * float64(wordcount)),
	}
}
