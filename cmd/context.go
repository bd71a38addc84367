package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hmurata/commitcal-go/config"
	"github.com/hmurata/commitcal-go/internal/calendar"
	gitpkg "github.com/hmurata/commitcal-go/internal/git"
	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// readerSlack widens the git-log time window on both sides so that
// commits whose calendar day shifts across midnight during timezone
// normalization are not cut off before the engine sees them.
const readerSlack = 48 * time.Hour

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands:
// configuration loading, flag overrides, date range resolution, and
// history materialization.
type CommandContext struct {
	Config     *config.Config
	RepoPath   string
	RangeStart calendar.Date
	RangeEnd   calendar.Date
	Events     []heatmap.CommitEvent
}

// NewCommandContext creates a context from CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(c, cfg); err != nil {
		return nil, err
	}

	rangeStart, rangeEnd, err := resolveRange(c, cfg)
	if err != nil {
		return nil, err
	}

	// The repo flag wins when set explicitly; otherwise a bare argument
	// names the repository. On the root context (legacy invocation) the
	// flag is not registered at all and String returns "".
	repoPath := c.String("repo")
	if !c.IsSet("repo") && c.NArg() > 0 {
		repoPath = c.Args().Get(0)
	}
	if repoPath == "" {
		repoPath = "."
	}

	events, err := readEvents(c, cfg, repoPath, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:     cfg,
		RepoPath:   repoPath,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Events:     events,
	}, nil
}

// AssemblerConfig translates the merged configuration into the
// pipeline configuration.
func (ctx *CommandContext) AssemblerConfig() (heatmap.Config, error) {
	weekStart, err := config.ParseWeekday(ctx.Config.Calendar.WeekStartDay)
	if err != nil {
		return heatmap.Config{}, err
	}

	mode := heatmap.ThresholdMode(ctx.Config.Levels.Mode)

	return heatmap.Config{
		TimezoneOffsetMinutes: ctx.Config.Calendar.TimezoneOffsetMinutes,
		UseCommitOffset:       ctx.Config.Calendar.UseCommitOffset,
		MinYear:               ctx.Config.Calendar.MinYear,
		MaxYear:               ctx.Config.Calendar.MaxYear,
		WeekStart:             weekStart,
		LevelCount:            ctx.Config.Levels.Count,
		Mode:                  mode,
		Thresholds:            ctx.Config.Levels.Thresholds,
		RangeStart:            ctx.RangeStart,
		RangeEnd:              ctx.RangeEnd,
		MaxCellCount:          ctx.Config.Calendar.MaxCellCount,
	}, nil
}

// applyFlagOverrides merges CLI flags over the file configuration.
func applyFlagOverrides(c *cli.Context, cfg *config.Config) error {
	if c.IsSet("tz-offset") {
		cfg.Calendar.TimezoneOffsetMinutes = c.Int("tz-offset")
	}
	if c.IsSet("commit-tz") {
		cfg.Calendar.UseCommitOffset = c.Bool("commit-tz")
	}
	if ws := c.String("week-start"); ws != "" {
		cfg.Calendar.WeekStartDay = ws
	}
	if levels := c.Int("levels"); levels > 0 {
		cfg.Levels.Count = levels
	}
	if s := c.String("thresholds"); s != "" {
		thresholds, err := parseThresholds(s)
		if err != nil {
			return err
		}
		cfg.Levels.Thresholds = thresholds
		cfg.Levels.Mode = string(heatmap.ModeFixed)
	}
	if c.Bool("quantile") {
		cfg.Levels.Mode = string(heatmap.ModeQuantile)
	}
	return nil
}

// resolveRange determines the inclusive civil date range. The default
// is the 365 days ending today in the target timezone.
func resolveRange(c *cli.Context, cfg *config.Config) (calendar.Date, calendar.Date, error) {
	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid until date: %w", err)
	}

	var rangeEnd calendar.Date
	if until != nil {
		rangeEnd = calendar.DateOf(*until)
	} else {
		offset := time.Duration(cfg.Calendar.TimezoneOffsetMinutes) * time.Minute
		rangeEnd = calendar.DateOf(time.Now().UTC().Add(offset))
	}

	var rangeStart calendar.Date
	if since != nil {
		rangeStart = calendar.DateOf(*since)
	} else {
		rangeStart = rangeEnd.AddDays(-364)
	}

	return rangeStart, rangeEnd, nil
}

// readEvents opens the repository and materializes the commit events
// for the requested range.
func readEvents(c *cli.Context, cfg *config.Config, repoPath string, rangeStart, rangeEnd calendar.Date) ([]heatmap.CommitEvent, error) {
	sinceTime := time.Date(rangeStart.Year, rangeStart.Month, rangeStart.Day, 0, 0, 0, 0, time.UTC).Add(-readerSlack)
	untilTime := time.Date(rangeEnd.Year, rangeEnd.Month, rangeEnd.Day, 0, 0, 0, 0, time.UTC).Add(24*time.Hour + readerSlack)

	reader, err := gitpkg.NewHistoryReader(gitpkg.ReadOptions{
		RepoPath:  repoPath,
		Branch:    c.String("branch"),
		Since:     &sinceTime,
		Until:     &untilTime,
		Authors:   cfg.Filters.Authors,
		Include:   cfg.Filters.Include,
		Exclude:   cfg.Filters.Exclude,
		UseGitCLI: c.Bool("git-cli"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	events, err := reader.ReadEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return events, nil
}
