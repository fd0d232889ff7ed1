// Package render turns a finished report into human-facing output: fixed
// width text tables and an HTML page of bar charts.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

// WriteReport writes both ranked tables plus the diagnostic counts.
func WriteReport(w io.Writer, report *pipeline.Report, topN int) error {
	if err := writeTable(w, "Human toll (fatalities + injuries)", report.RankedToll, topN, true); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeTable(w, "Economic damage (USD)", report.RankedDamage, topN, false); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d records in, %d dropped (unmatched label), %d unrecognized magnitude codes\ngenerated at %s\n",
		report.RecordsIn, report.RecordsDropped, report.UnrecognizedCodes,
		report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	return err
}

func writeTable(w io.Writer, title string, rows []pipeline.Summary, topN int, integral bool) error {
	if _, err := fmt.Fprintf(w, "=== %s ===\n", title); err != nil {
		return err
	}
	for i, row := range pipeline.TopN(rows, topN) {
		var err error
		if integral {
			_, err = fmt.Fprintf(w, "%3d  %-28s %15.0f\n", i+1, row.EventType, row.Value)
		} else {
			_, err = fmt.Fprintf(w, "%3d  %-28s %18.2f\n", i+1, row.EventType, row.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCharts renders both rankings as bar charts on one HTML page.
func WriteCharts(w io.Writer, report *pipeline.Report, topN int) error {
	page := components.NewPage()
	page.AddCharts(
		barChart("Human toll by event type", "fatalities + injuries", pipeline.TopN(report.RankedToll, topN)),
		barChart("Economic damage by event type", "property + crop, USD", pipeline.TopN(report.RankedDamage, topN)),
	)
	return page.Render(w)
}

func barChart(title, seriesName string, rows []pipeline.Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	labels := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.EventType
		values[i] = opts.BarData{Value: row.Value}
	}

	bar.SetXAxis(labels).AddSeries(seriesName, values)
	return bar
}
