package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/hmurata/commitcal-go/internal/stats"
)

// SummaryCmd returns the summary command.
func SummaryCmd() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Aliases:   []string{"s"},
		Usage:     "Print activity totals and streaks without the grid",
		ArgsUsage: "[repository path]",
		Flags:     commonFlags(),
		Action:    summaryAction,
	}
}

func summaryAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	hm, err := assembleHeatmap(ctx)
	if err != nil {
		return err
	}

	color.Green("%s", ctx.RepoPath)
	fmt.Printf("%d commit(s) across %d active day(s) between %s and %s, busiest day %d commit(s)\n",
		hm.TotalCommits, hm.ActiveDays, ctx.RangeStart, ctx.RangeEnd, hm.MaxDailyCount)

	if hm.TotalCommits == 0 {
		color.Yellow("No commits in range")
		return nil
	}

	streaks := stats.Streaks(hm.Counts, ctx.RangeEnd)
	fmt.Printf("Longest streak %d day(s) ending %s, current streak %d day(s)\n",
		streaks.Longest, streaks.LongestEnd, streaks.Current)

	window := stats.BusiestWindow(hm.Counts, 7)
	fmt.Printf("Busiest week %d commit(s) starting %s\n", window.Commits, window.Start)

	weekday := stats.BusiestWeekday(stats.WeekdayTotals(hm.Counts))
	fmt.Printf("Most active weekday: %s\n", weekday)

	authors := stats.Authors(ctx.Events)
	fmt.Printf("%d author(s), most active %s with %d commit(s) (%.0f%%)\n",
		authors.Unique, authors.Top, authors.TopCommits, authors.TopShare*100)

	return nil
}
