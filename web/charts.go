//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"math"
	"sort"

	"github.com/e-gun/wego/pkg/search"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/gen"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/lnch"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/topics"
)

//
// GRAPHING
//

// see also: https://echarts.apache.org/en/option.html#series-graph

// neighborsgraph - generate the html and js for a nearest neighbors graph
func neighborsgraph(coreword string, settings string, nn map[string]search.Neighbors) string {
	const (
		SYMSIZE       = 25
		PERIPHSYMSZ   = 15
		SIZEDISTORT   = 2.25
		PRECISON      = 4
		REPULSION     = 6000
		GRAVITY       = .15
		EDGELEN       = 40
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		DOTHUE        = 236
		DOTSL         = ", 33%, 40%, 1)"
		LINECURVINESS = 0       // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid" // "solid", "dashed", "dotted"
		FONT          = "sans-serif"
		TITLESTR      = "Nearest neighbors of »%s«"
	)

	graph := newforcegraph(fmt.Sprintf(TITLESTR, coreword), settings, FONT)

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// find the average similarity: this will let you adjust bubble size so that most similar are biggest
	var maxsim float64
	for _, w := range nn[coreword] {
		if w.Similarity > maxsim {
			maxsim = w.Similarity
		}
	}

	vardot := func(i int) *opts.ItemStyle {
		dv := DOTHUE
		vd := "hsla(" + fmt.Sprintf("%d", dv) + DOTSL
		return &opts.ItemStyle{Color: vd}
	}

	periphvardot := func(i int) *opts.ItemStyle {
		dv := DOTHUE
		vd := "hsla(" + fmt.Sprintf("%d", dv) + DOTSL
		return &opts.ItemStyle{Color: vd}
	}

	used := make(map[string]bool)

	// the center point
	gnn = append(gnn, opts.GraphNode{Name: coreword, Value: 0, SymbolSize: fmt.Sprintf("%.4f", SYMSIZE*SIZEDISTORT), ItemStyle: vardot(-1)})
	used[coreword] = true

	// the words directly related to this word
	for i, w := range nn[coreword] {
		sizemod := fmt.Sprintf("%.4f", ((w.Similarity/maxsim)*SIZEDISTORT)*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sizemod, ItemStyle: vardot(i)})
		gll = append(gll, opts.GraphLink{Source: coreword, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
		used[w.Word] = true
	}

	// the relationships between the other words
	coreterms := gen.ToSet(gen.StringMapKeysIntoSlice(nn))

	// populate the nodes with just the core collection of terms
	simpleweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
			}
		}
	}

	// populate the nodes with both the core terms and the neighbors of those terms as well
	expandedweb := func() {
		i := -1
		for t := range coreterms {
			i += 1
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
				if _, ok := used[w.Word]; !ok {
					gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: PERIPHSYMSZ, ItemStyle: periphvardot(i)})
					used[w.Word] = true
				}
				gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
			}
		}
	}

	if lnch.Config.VectorWebExt {
		expandedweb()
	} else {
		simpleweb()
	}

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:       true,
				Position:   LABELPOSITON,
				FontFamily: FONT,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
			}),
		charts.WithGraphChartOpts(
			// https://github.com/go-echarts/go-echarts/opts/charts.go
			// cf. https://echarts.apache.org/en/option.html#series-graph
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)

	return renderchart(graph)
}

// socialgraph - force graph of the friendship edges among the active users of a check-in window
func socialgraph(settings string, edges []str.SocialEdge) string {
	const (
		SYMSIZE    = 12
		REPULSION  = 2000
		GRAVITY    = .20
		EDGELEN    = 30
		SERIESNAME = ""
		LAYOUTTYPE = "force"
		DOTCOLOR   = "hsla(236, 33%, 40%, 1)"
		LINETYPE   = "solid"
		FONT       = "sans-serif"
		TITLESTR   = "Friendships among active users"
	)

	graph := newforcegraph(TITLESTR, settings, FONT)

	dot := &opts.ItemStyle{Color: DOTCOLOR}

	seen := make(map[string]bool)
	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	for _, ed := range edges {
		a := fmt.Sprintf("%d", ed.A)
		b := fmt.Sprintf("%d", ed.B)
		if !seen[a] {
			gnn = append(gnn, opts.GraphNode{Name: a, SymbolSize: SYMSIZE, ItemStyle: dot})
			seen[a] = true
		}
		if !seen[b] {
			gnn = append(gnn, opts.GraphNode{Name: b, SymbolSize: SYMSIZE, ItemStyle: dot})
			seen[b] = true
		}
		gll = append(gll, opts.GraphLink{Source: a, Target: b})
	}

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Type: LINETYPE,
			}),
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)

	return renderchart(graph)
}

// newforcegraph - return a pre-formatted charts.Graph
func newforcegraph(title string, settings string, ft string) *charts.Graph {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "20"
		BOTTALIGN = "3%"
		SAVETYPE  = "svg"
		SAVESTR   = "Save to file..."
		TEXTCOLOR = "" // "black"
	)

	tst := opts.TextStyle{
		Color:      TEXTCOLOR,
		FontStyle:  FONTSTYLE,
		FontSize:   16,
		FontFamily: ft,
		Padding:    "15",
		Normal:     nil,
	}

	sst := opts.TextStyle{
		Color:      TEXTCOLOR,
		FontStyle:  FONTSTYLE,
		FontSize:   10,
		FontFamily: ft,
	}

	tit := opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      settings, // can not see this if you put the title on the bottom of the image
		SubtitleStyle: &sst,
		Top:           "",
		Bottom:        BOTTALIGN,
		Left:          LEFTALIGN,
		Right:         "",
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE, // svg, jpeg, png; svg requires specific chart initialization
		Name:  gen.StripAccents(title),
		Title: SAVESTR, // get chinese if ""
	}

	tbf := opts.ToolBoxFeature{
		SaveAsImage: &tbs,
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Top:     "",
		Right:   "",
		Bottom:  "",
		Feature: &tbf,
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: lnch.Config.VectorChtWd, Height: lnch.Config.VectorChtHt}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
	)

	return graph
}

// coherenceline - coherence-by-candidate line chart for a topic model selection run
func coherenceline(run str.TopicRun) string {
	const (
		TITLESTR  = "Topic coherence by candidate count"
		SERIES    = "UMass coherence"
		CHRTHT    = "400px"
		LINECOLOR = "hsla(236, 33%, 40%, 1)"
	)

	kk := gen.SortedMapKeys(run.Coherence)

	var xx []string
	var yy []opts.LineData
	for _, k := range kk {
		xx = append(xx, fmt.Sprintf("%d", k))
		yy = append(yy, opts.LineData{Value: run.Coherence[k]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: lnch.Config.VectorChtWd, Height: CHRTHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: fmt.Sprintf("winner: k = %d", run.BestK)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "topics"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "coherence"}),
	)

	line.SetXAxis(xx).AddSeries(SERIES, yy,
		charts.WithLineStyleOpts(opts.LineStyle{Color: LINECOLOR}),
	)

	return renderchart(line)
}

// topicscatter - two dimensional embedding of the documents, one series per dominant topic
func topicscatter(points []topics.DocPoint) string {
	const (
		TITLESTR = "Documents embedded in two dimensions"
		SYMSIZE  = 10
	)

	bytopic := make(map[int][]opts.ScatterData)
	for _, p := range points {
		bytopic[p.Topic] = append(bytopic[p.Topic], opts.ScatterData{Value: []float64{p.X, p.Y}, SymbolSize: SYMSIZE})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: lnch.Config.VectorChtWd, Height: lnch.Config.VectorChtHt}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
		charts.WithXAxisOpts(opts.XAxis{Show: false}),
		charts.WithYAxisOpts(opts.YAxis{Show: false}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	tt := gen.SortedMapKeys(bytopic)
	for _, t := range tt {
		scatter.AddSeries(fmt.Sprintf("topic %d", t), bytopic[t])
	}

	return renderchart(scatter)
}

// checkinsbar - daily check-in counts across the requested window
func checkinsbar(days []string, counts []int) string {
	const (
		TITLESTR = "Check-ins per day"
		SERIES   = "check-ins"
		CHRTHT   = "400px"
		BARCOLOR = "hsla(236, 33%, 40%, 1)"
	)

	var yy []opts.BarData
	for _, n := range counts {
		yy = append(yy, opts.BarData{Value: n})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: lnch.Config.VectorChtWd, Height: CHRTHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
	)

	bar.SetXAxis(days).AddSeries(SERIES, yy,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: BARCOLOR}),
	)

	return renderchart(bar)
}

// checkinscatter - raw lat/lon positions of the check-ins in the window
func checkinscatter(ckk []str.Checkin) string {
	const (
		TITLESTR = "Check-in positions"
		SERIES   = "check-ins"
		SYMSIZE  = 4
		DOTCOLOR = "hsla(236, 33%, 40%, .5)"
	)

	var dd []opts.ScatterData
	for _, ck := range ckk {
		dd = append(dd, opts.ScatterData{Value: []float64{ck.Lon, ck.Lat}, SymbolSize: SYMSIZE})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: lnch.Config.VectorChtWd, Height: lnch.Config.VectorChtHt}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
		charts.WithXAxisOpts(opts.XAxis{Name: "lon", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "lat", Type: "value"}),
	)

	scatter.AddSeries(SERIES, dd,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: DOTCOLOR}),
	)

	return renderchart(scatter)
}

// sortededges - deterministic ordering for the social graph
func sortededges(edd []str.SocialEdge) []str.SocialEdge {
	sort.Slice(edd, func(i, j int) bool {
		if edd[i].A != edd[j].A {
			return edd[i].A < edd[j].A
		}
		return edd[i].B < edd[j].B
	})
	return edd
}
