package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// consoleRamp is the color ramp for console cells, lowest level first.
var consoleRamp = []*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgBlue),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgHiRed),
}

// ConsoleHeatmapWriter renders the heatmap as colored blocks on stdout.
type ConsoleHeatmapWriter struct{}

// Write outputs the heatmap report to the console.
func (w *ConsoleHeatmapWriter) Write(report *HeatmapReport, options OutputOptions) error {
	hm := report.Heatmap
	grid := hm.Grid

	color.Green("Commit Activity")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Period: %s to %s\n\n", grid.RangeStart, grid.RangeEnd)

	for row := 0; row < 7; row++ {
		fmt.Printf("%s ", weekdayAbbrev[rowWeekday(grid.WeekStart, row)])
		for _, week := range grid.Weeks {
			cell := week[row]
			w.printCell(cell, hm.LevelCount, options.Glyphs)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("Commits: %d  Active days: %d  Busiest day: %d commit(s)\n",
		hm.TotalCommits, hm.ActiveDays, hm.MaxDailyCount)

	if hm.TotalCommits == 0 {
		color.Yellow("No commits in the selected range.")
	}
	return nil
}

func (w *ConsoleHeatmapWriter) printCell(cell heatmap.Cell, levelCount int, glyphs string) {
	if !cell.InRange {
		fmt.Print("  ")
		return
	}
	c := consoleRamp[rampIndex(cell.Level, levelCount, len(consoleRamp))]
	c.Printf("%c ", glyphFor(cell.Level, levelCount, glyphs))
}
