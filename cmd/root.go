package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hmurata/commitcal-go/config"
	"github.com/hmurata/commitcal-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "commitcal",
		Usage:   "Calendar heatmap of commit activity for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			HeatmapCmd(),
			SummaryCmd(),
			LegendCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: defaultAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Start of the date range (YYYY-MM-DD, default: one year before until)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "End of the date range (YYYY-MM-DD, default: today)",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to analyze (default: HEAD)",
		},
		&cli.BoolFlag{
			Name:  "git-cli",
			Usage: "Read history with the git binary instead of go-git (faster on huge repos)",
		},
		&cli.StringFlag{
			Name:  "week-start",
			Usage: "First weekday of each grid column (sunday..saturday)",
		},
		&cli.IntFlag{
			Name:  "tz-offset",
			Usage: "Target timezone offset in minutes from UTC",
		},
		&cli.BoolFlag{
			Name:  "commit-tz",
			Usage: "Pick each commit's day in its author's own timezone",
		},
		&cli.IntFlag{
			Name:    "levels",
			Aliases: []string{"l"},
			Usage:   "Number of intensity levels including the empty level",
		},
		&cli.StringFlag{
			Name:  "thresholds",
			Usage: "Fixed ascending count thresholds, e.g. \"2,5,10\" (implies fixed mode)",
		},
		&cli.BoolFlag{
			Name:  "quantile",
			Usage: "Derive thresholds from the observed activity (quantile mode)",
		},
		&cli.StringSliceFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Only count commits by authors matching this substring (can be repeated)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns a commit must touch to count (can be repeated)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns that never count (can be repeated)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, text, json, csv, markdown)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// parseThresholds parses a comma-separated ascending threshold list.
func parseThresholds(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	thresholds := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid threshold %q: %w", p, err)
		}
		thresholds = append(thresholds, n)
	}
	return thresholds, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "text", "txt":
		return output.FormatText
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if authors := c.StringSlice("author"); len(authors) > 0 {
		cfg.Filters.Authors = authors
	}

	return cfg, nil
}

// defaultAction treats a bare repository path argument as a heatmap
// request, so `commitcal /path/to/repo` just works. Only the global
// --config flag exists on this context, so legacy mode renders with
// configuration-file and default settings; the common flags require
// the heatmap subcommand.
func defaultAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return HeatmapCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
