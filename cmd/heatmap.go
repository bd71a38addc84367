package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hmurata/commitcal-go/internal/heatmap"
	"github.com/hmurata/commitcal-go/internal/output"
)

// HeatmapCmd returns the heatmap command.
func HeatmapCmd() *cli.Command {
	return &cli.Command{
		Name:      "heatmap",
		Usage:     "Render the commit activity calendar grid",
		ArgsUsage: "[repository path]",
		Flags:     commonFlags(),
		Action:    heatmapAction,
	}
}

func heatmapAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	hm, err := assembleHeatmap(ctx)
	if err != nil {
		return err
	}

	report := &output.HeatmapReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Heatmap:     hm,
	}

	format := getOutputFormat(c.String("format"))
	writer := output.NewHeatmapWriter(format)
	return writer.Write(report, output.OutputOptions{
		Format:     format,
		OutputPath: c.String("output"),
		Glyphs:     ctx.Config.Render.Glyphs,
	})
}

// assembleHeatmap runs the pipeline over the context's events.
func assembleHeatmap(ctx *CommandContext) (*heatmap.Heatmap, error) {
	cfg, err := ctx.AssemblerConfig()
	if err != nil {
		return nil, err
	}
	assembler, err := heatmap.NewAssembler(cfg)
	if err != nil {
		return nil, err
	}
	return assembler.Assemble(ctx.Events)
}
