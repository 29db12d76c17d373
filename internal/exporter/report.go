package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// RunStats aggregates per-table outcomes into run totals. Outcomes with
// an error contribute nothing to the record, size, and duration sums.
type RunStats struct {
	ScaleFactor   int
	TablesTotal   int
	Success       int
	Errors        int
	TotalRecords  int64
	TotalSizeMB   float64
	TotalDuration time.Duration
}

// Summarize computes run totals from the ordered outcome sequence.
func Summarize(outcomes []Outcome, scaleFactor int) RunStats {
	stats := RunStats{
		ScaleFactor: scaleFactor,
		TablesTotal: len(outcomes),
	}

	for _, o := range outcomes {
		if o.Failed() {
			stats.Errors++
			continue
		}
		stats.Success++
		stats.TotalRecords += o.Records
		stats.TotalSizeMB += o.SizeMB
		stats.TotalDuration += o.Duration
	}

	return stats
}

// Reporter prints the final run report.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// Print writes the formatted final report: run totals, a per-table
// breakdown in processing order, and an itemized error list when any
// table failed.
func (r *Reporter) Print(stats RunStats, outcomes []Outcome, outputDir string) {
	sep := strings.Repeat("=", 70)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sep)
	fmt.Fprintln(r.out, "FINAL REPORT - TPC-DS GENERATION")
	fmt.Fprintln(r.out, sep)

	fmt.Fprintf(r.out, "Scale Factor: %d\n", stats.ScaleFactor)
	fmt.Fprintf(r.out, "Tables processed: %d\n", stats.TablesTotal)
	fmt.Fprintf(r.out, "  • Success: %d\n", stats.Success)
	fmt.Fprintf(r.out, "  • Error: %d\n", stats.Errors)
	fmt.Fprintf(r.out, "Total records: %d\n", stats.TotalRecords)
	fmt.Fprintf(r.out, "Total size: %.2f MB\n", stats.TotalSizeMB)
	fmt.Fprintf(r.out, "Total time: %.2fs\n", stats.TotalDuration.Seconds())
	fmt.Fprintf(r.out, "Directory: %s/\n", outputDir)

	byTable := collectByTable(outcomes)

	if byTable.Len() > 0 {
		nameWidth := 0
		for el := byTable.Front(); el != nil; el = el.Next() {
			if w := runewidth.StringWidth(el.Key); w > nameWidth {
				nameWidth = w
			}
		}

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Per-table results:")
		for el := byTable.Front(); el != nil; el = el.Next() {
			o := el.Value
			name := runewidth.FillRight(el.Key, nameWidth)
			if o.Failed() {
				fmt.Fprintf(r.out, "  %s %s  export failed\n", color.Red.Sprint("✗"), name)
			} else {
				fmt.Fprintf(r.out, "  %s %s  %d records  %.2f MB  %.2fs\n",
					color.Green.Sprint("✓"), name, o.Records, o.SizeMB, o.Duration.Seconds())
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Tables with errors:")
		for el := byTable.Front(); el != nil; el = el.Next() {
			if el.Value.Failed() {
				fmt.Fprintf(r.out, "  • %s: %s\n", el.Key, el.Value.Error)
			}
		}
	}

	fmt.Fprintln(r.out, sep)
	fmt.Fprintln(r.out)
}

// collectByTable indexes outcomes by table name, preserving processing
// order. A table exported twice in one run keeps its last outcome.
func collectByTable(outcomes []Outcome) *orderedmap.OrderedMap[string, Outcome] {
	m := orderedmap.NewOrderedMap[string, Outcome]()
	for _, o := range outcomes {
		m.Set(o.Table, o)
	}
	return m
}
