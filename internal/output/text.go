package output

import "fmt"

// TextHeatmapWriter renders the heatmap as plain glyphs, suitable for
// piping or environments without color support.
type TextHeatmapWriter struct{}

// Write outputs the heatmap report as plain text.
func (w *TextHeatmapWriter) Write(report *HeatmapReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	hm := report.Heatmap
	grid := hm.Grid

	fmt.Fprintf(out, "Commit activity %s to %s\n\n", grid.RangeStart, grid.RangeEnd)

	for row := 0; row < 7; row++ {
		fmt.Fprintf(out, "%s ", weekdayAbbrev[rowWeekday(grid.WeekStart, row)])
		for _, week := range grid.Weeks {
			cell := week[row]
			if !cell.InRange {
				fmt.Fprint(out, " ")
				continue
			}
			fmt.Fprintf(out, "%c", glyphFor(cell.Level, hm.LevelCount, options.Glyphs))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "\nCommits: %d  Active days: %d  Busiest day: %d commit(s)\n",
		hm.TotalCommits, hm.ActiveDays, hm.MaxDailyCount)
	return nil
}
