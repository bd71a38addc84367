package output

import (
	"fmt"
	"strings"
)

// MarkdownHeatmapWriter renders the heatmap as a Markdown table with
// weekday rows and week columns.
type MarkdownHeatmapWriter struct{}

// Write outputs the heatmap report as Markdown.
func (w *MarkdownHeatmapWriter) Write(report *HeatmapReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	hm := report.Heatmap
	grid := hm.Grid

	fmt.Fprintf(out, "# Commit Activity\n\n")
	fmt.Fprintf(out, "Repository: `%s`\n\n", report.RepoPath)
	fmt.Fprintf(out, "Period: %s to %s\n\n", grid.RangeStart, grid.RangeEnd)

	var sb strings.Builder
	sb.WriteString("| |")
	for i := range grid.Weeks {
		fmt.Fprintf(&sb, " %d |", i+1)
	}
	sb.WriteString("\n|---|")
	for range grid.Weeks {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for row := 0; row < 7; row++ {
		fmt.Fprintf(&sb, "| %s |", weekdayAbbrev[rowWeekday(grid.WeekStart, row)])
		for _, week := range grid.Weeks {
			cell := week[row]
			if !cell.InRange {
				sb.WriteString("  |")
				continue
			}
			fmt.Fprintf(&sb, " %c |", glyphFor(cell.Level, hm.LevelCount, options.Glyphs))
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(out, sb.String())
	fmt.Fprintf(out, "\nCommits: %d, Active days: %d, Busiest day: %d commit(s)\n",
		hm.TotalCommits, hm.ActiveDays, hm.MaxDailyCount)
	return nil
}
