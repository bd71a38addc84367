package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// LegendCmd returns the legend command.
func LegendCmd() *cli.Command {
	return &cli.Command{
		Name:      "legend",
		Usage:     "Show the level thresholds in effect for a repository",
		ArgsUsage: "[repository path]",
		Flags:     commonFlags(),
		Action:    legendAction,
	}
}

func legendAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	cfg, err := ctx.AssemblerConfig()
	if err != nil {
		return err
	}
	assembler, err := heatmap.NewAssembler(cfg)
	if err != nil {
		return err
	}

	thresholds, err := assembler.Thresholds(ctx.Events)
	if err != nil {
		return err
	}

	color.Green("Intensity levels (%s mode)", ctx.Config.Levels.Mode)
	fmt.Println("level 0: no commits")

	levelCount := assembler.LevelCount()
	if len(thresholds) == 0 {
		// Quantile mode without enough distinct activity to split.
		fmt.Printf("level %d: any commits\n", levelCount-1)
		return nil
	}

	lower := 1
	for i, t := range thresholds {
		fmt.Printf("level %d: %s\n", i+1, countRange(lower, t-1))
		lower = t
	}
	fmt.Printf("level %d: %d+ commits\n", len(thresholds)+1, lower)
	return nil
}

func countRange(lo, hi int) string {
	if lo > hi {
		return "unused (covered by neighboring levels)"
	}
	if lo == hi {
		return fmt.Sprintf("%d commit(s)", lo)
	}
	return fmt.Sprintf("%d-%d commits", lo, hi)
}
