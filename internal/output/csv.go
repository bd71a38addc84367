package output

import (
	"encoding/csv"
	"strconv"
)

// CSVHeatmapWriter writes one row per in-range day, for spreadsheet
// import or downstream tooling.
type CSVHeatmapWriter struct{}

// Write outputs the heatmap report as CSV.
func (w *CSVHeatmapWriter) Write(report *HeatmapReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	hm := report.Heatmap
	cw := csv.NewWriter(out)

	if err := cw.Write([]string{"date", "weekday", "commits", "level"}); err != nil {
		return err
	}

	for _, week := range hm.Grid.Weeks {
		for _, cell := range week {
			if !cell.InRange {
				continue
			}
			record := []string{
				cell.Date.String(),
				cell.Date.Weekday().String(),
				strconv.Itoa(hm.Counts[cell.Date]),
				strconv.Itoa(int(cell.Level)),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
