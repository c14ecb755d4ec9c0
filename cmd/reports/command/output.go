package command

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/clinic-reports/analytics"
)

type rangeParams struct {
	Start  string
	End    string
	Output string
}

func saveWorkbook(file *xlsx.File, filename string) error {
	if err := file.Save(filename); err != nil {
		return fmt.Errorf("unable to save workbook to %s: %w", filename, err)
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printCategoryCounts(w io.Writer, title string, counts []analytics.CategoryCount, format analytics.FormattingConfig) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Category, format.FormatCount(c.Count), format.FormatPercent(c.Percentage))
	}
}

func printTrend(w io.Writer, title string, points []analytics.TrendPoint) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, p := range points {
		fmt.Fprintf(w, "  %s\t%g\n", p.Label, p.Value)
	}
}

func printDegraded(w io.Writer, degraded []string) {
	if len(degraded) > 0 {
		fmt.Fprintf(w, "\nWARNING: report is missing data from %v\n", degraded)
	}
}

var stdout io.Writer = os.Stdout
