// Package report renders kind statistics of mapped Rust files as terminal
// tables and HTML charts.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

const (
	chartWidth   = "1200px"
	chartHeight  = "600px"
	pieHeight    = "500px"
	xAxisRotate  = 45
	pieRadius    = "60%"
	otherKinds   = "other"
	defaultTitle = "PAST kind statistics"
)

// FileSummary holds the statistics of one mapped file.
type FileSummary struct {
	Path     string
	Bytes    uint64
	Items    int
	Nodes    int
	Problems int
}

// Summary aggregates statistics over a set of mapped files.
type Summary struct {
	Files []FileSummary
	Kinds []node.KindCount
}

// Summarize counts the node kinds of files. Nil files are skipped.
func Summarize(files ...*node.SourceFile) Summary {
	counts := make(map[node.Kind]int)
	summary := Summary{}

	for _, file := range files {
		if file == nil {
			continue
		}

		fileCounts := node.CountKinds(file.Nodes()...)

		fs := FileSummary{
			Path:     file.Path,
			Bytes:    uint64(len(file.Root.Text)),
			Items:    len(file.Items),
			Problems: fileCounts[node.KindProblem],
		}

		for kind, n := range fileCounts {
			counts[kind] += n
			fs.Nodes += n
		}

		summary.Files = append(summary.Files, fs)
	}

	sort.Slice(summary.Files, func(i, j int) bool { return summary.Files[i].Path < summary.Files[j].Path })
	summary.Kinds = node.SortedCounts(counts)

	return summary
}

// TotalNodes is the number of nodes across all files.
func (s Summary) TotalNodes() int {
	total := 0
	for _, kc := range s.Kinds {
		total += kc.Count
	}

	return total
}

// TotalProblems is the number of Problem nodes across all files.
func (s Summary) TotalProblems() int {
	total := 0
	for _, fs := range s.Files {
		total += fs.Problems
	}

	return total
}

// TotalBytes is the size of all mapped sources.
func (s Summary) TotalBytes() uint64 {
	var total uint64
	for _, fs := range s.Files {
		total += fs.Bytes
	}

	return total
}

// top returns the first limit kinds and folds the rest into one "other"
// entry. A limit of zero or less keeps every kind.
func (s Summary) top(limit int) []node.KindCount {
	if limit <= 0 || len(s.Kinds) <= limit {
		return s.Kinds
	}

	out := make([]node.KindCount, 0, limit+1)
	out = append(out, s.Kinds[:limit]...)

	rest := 0
	for _, kc := range s.Kinds[limit:] {
		rest += kc.Count
	}

	return append(out, node.KindCount{Kind: otherKinds, Count: rest})
}

// newTable returns a borderless light table whose footer keeps its case.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Footer = text.FormatDefault

	return tbl
}

// WriteKindTable writes the kind counts as a table, with the share of all
// nodes per kind.
func (s Summary) WriteKindTable(w io.Writer, limit int) error {
	total := s.TotalNodes()

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Kind", "Count", "Share"})

	for _, kc := range s.top(limit) {
		tbl.AppendRow(table.Row{string(kc.Kind), humanize.Comma(int64(kc.Count)), share(kc.Count, total)})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d kinds", len(s.Kinds)),
		humanize.Comma(int64(total)),
		"",
	})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write kind table: %w", err)
	}

	return nil
}

// WriteFileTable writes one row per file.
func (s Summary) WriteFileTable(w io.Writer) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"File", "Size", "Items", "Nodes", "Problems"})

	for _, fs := range s.Files {
		tbl.AppendRow(table.Row{
			fs.Path,
			humanize.IBytes(fs.Bytes),
			humanize.Comma(int64(fs.Items)),
			humanize.Comma(int64(fs.Nodes)),
			humanize.Comma(int64(fs.Problems)),
		})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(s.Files)),
		humanize.IBytes(s.TotalBytes()),
		"",
		humanize.Comma(int64(s.TotalNodes())),
		humanize.Comma(int64(s.TotalProblems())),
	})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write file table: %w", err)
	}

	return nil
}

// WriteHTML renders a standalone page with a bar chart of the top kinds
// and a pie chart of the same distribution.
func (s Summary) WriteHTML(w io.Writer, title string, limit int) error {
	if title == "" {
		title = defaultTitle
	}

	kinds := s.top(limit)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(kindBar(title, kinds, s), kindPie(kinds))

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	return nil
}

func kindBar(title string, kinds []node.KindCount, s Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Subtitle: fmt.Sprintf("%s files, %s, %s nodes, %s problems",
				humanize.Comma(int64(len(s.Files))),
				humanize.IBytes(s.TotalBytes()),
				humanize.Comma(int64(s.TotalNodes())),
				humanize.Comma(int64(s.TotalProblems()))),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Nodes"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)

	labels := make([]string, len(kinds))
	data := make([]opts.BarData, len(kinds))

	for i, kc := range kinds {
		labels[i] = string(kc.Kind)
		data[i] = opts.BarData{Value: kc.Count}
	}

	bar.SetXAxis(labels).AddSeries("Nodes", data)

	return bar
}

func kindPie(kinds []node.KindCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: pieHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	data := make([]opts.PieData, len(kinds))
	for i, kc := range kinds {
		data[i] = opts.PieData{Name: string(kc.Kind), Value: kc.Count}
	}

	pie.AddSeries("Kinds", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}),
	)

	return pie
}

func share(count, total int) string {
	if total == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}
