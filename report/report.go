// SPDX-License-Identifier: MIT

// Package report renders an analysis.Report for the console.
//
// Two layouts are available: bordered tables (lipgloss, the default) and a
// plain line-per-entry layout suitable for diffs and logs (WithPlain). Both
// list the same rows in the same order:
//
//   - degrees ascending, first N;
//   - nodes by distance-2 count descending (ties by record index), first N;
//   - degrees by mean smoking prevalence descending (ties by degree), first N.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/peernet/analysis"
)

// DefaultTopN is the number of rows shown per section.
const DefaultTopN = 10

// Option configures Render.
type Option func(*options)

type options struct {
	topN  int
	plain bool
}

// WithTopN limits each section to n rows; n <= 0 keeps the default.
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}

// WithPlain disables tables and styling.
func WithPlain() Option {
	return func(o *options) {
		o.plain = true
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// section is one titled block of rows, independent of layout.
type section struct {
	title   string
	headers []string
	rows    [][]string
	lines   []string // plain rendering of rows
}

// Render writes rep to w.
func Render(w io.Writer, rep *analysis.Report, opts ...Option) error {
	if rep == nil {
		return fmt.Errorf("report: nil report")
	}
	o := options{topN: DefaultTopN}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	sections := []section{
		degreeSection(rep, o.topN),
		distanceTwoSection(rep, o.topN),
		behaviorSection(rep, o.topN),
	}
	if o.plain {
		b.WriteString("Summary Report:\n\n")
		writeSummaryPlain(&b, rep.Summary)
		for _, s := range sections {
			b.WriteString("\n" + s.title + ":\n")
			for _, l := range s.lines {
				b.WriteString(l + "\n")
			}
		}
	} else {
		b.WriteString(titleStyle.Render("Summary Report") + "\n\n")
		b.WriteString(summaryTable(rep.Summary) + "\n")
		for _, s := range sections {
			b.WriteString("\n" + titleStyle.Render(s.title) + "\n")
			b.WriteString(renderTable(s.headers, s.rows) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

func degreeSection(rep *analysis.Report, n int) section {
	s := section{
		title:   fmt.Sprintf("Degree Distribution (Top %d Degrees)", n),
		headers: []string{"Degree", "Nodes"},
	}
	sorted := rep.Degrees.Sorted()
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	for _, dc := range sorted {
		s.rows = append(s.rows, []string{strconv.Itoa(dc.Degree), strconv.Itoa(dc.Nodes)})
		s.lines = append(s.lines, fmt.Sprintf("Degree %d: %d", dc.Degree, dc.Nodes))
	}

	return s
}

func distanceTwoSection(rep *analysis.Report, n int) section {
	s := section{
		title:   fmt.Sprintf("Top %d Nodes with the Most Distance-2 Neighbors", n),
		headers: []string{"Node", "Record", "Distance-2"},
	}
	for _, nc := range rep.DistanceTwo.TopIndexed(n, rep.Index) {
		record := nc.Node
		if rep.Index != nil {
			if i, ok := rep.Index.IndexOf(nc.Node); ok {
				record = strconv.Itoa(i)
			}
		}
		s.rows = append(s.rows, []string{nc.Node, record, strconv.Itoa(nc.Count)})
		s.lines = append(s.lines, fmt.Sprintf("Node %s: %d distance-2 neighbors", record, nc.Count))
	}

	return s
}

func behaviorSection(rep *analysis.Report, n int) section {
	s := section{
		title:   fmt.Sprintf("Behavioral Analysis by Degree (Top %d Degrees by Avg Smoking Prevalence)", n),
		headers: []string{"Degree", "Nodes", "Avg Smoking", "Avg Drug"},
	}
	for _, db := range rep.Behavior.RankBySmoking(n) {
		s.rows = append(s.rows, []string{
			strconv.Itoa(db.Degree),
			strconv.Itoa(db.Count),
			fmt.Sprintf("%.2f", db.Smoking),
			fmt.Sprintf("%.2f", db.Drug),
		})
		s.lines = append(s.lines, fmt.Sprintf(
			"Degree %d: Avg Smoking Prevalence = %.2f, Avg Drug Experimentation = %.2f",
			db.Degree, db.Smoking, db.Drug,
		))
	}

	return s
}

func writeSummaryPlain(b *strings.Builder, s analysis.Summary) {
	fmt.Fprintf(b, "Nodes: %d, Edges: %d, Components: %d, Isolated: %d\n",
		s.Nodes, s.Edges, s.Components, s.Isolated)
	fmt.Fprintf(b, "Degree: mean %.2f, median %.2f, sd %.2f, max %d; density %.4f\n",
		s.MeanDegree, s.MedianDegree, s.DegreeStdDev, s.MaxDegree, s.Density)
}

func summaryTable(s analysis.Summary) string {
	rows := [][]string{
		{"Nodes", strconv.Itoa(s.Nodes)},
		{"Edges", strconv.Itoa(s.Edges)},
		{"Components", strconv.Itoa(s.Components)},
		{"Isolated", strconv.Itoa(s.Isolated)},
		{"Max degree", strconv.Itoa(s.MaxDegree)},
		{"Mean degree", fmt.Sprintf("%.2f", s.MeanDegree)},
		{"Median degree", fmt.Sprintf("%.2f", s.MedianDegree)},
		{"Degree std dev", fmt.Sprintf("%.2f", s.DegreeStdDev)},
		{"Density", fmt.Sprintf("%.4f", s.Density)},
	}

	return renderTable([]string{"Metric", "Value"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	return t.String()
}
