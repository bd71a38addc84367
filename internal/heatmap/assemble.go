package heatmap

import (
	"time"

	"github.com/hmurata/commitcal-go/internal/calendar"
)

// Config is the full configuration surface of the pipeline.
type Config struct {
	// TimezoneOffsetMinutes is the fixed target offset used to select
	// calendar days.
	TimezoneOffsetMinutes int

	// UseCommitOffset selects days in each commit's own timezone
	// instead of the target offset.
	UseCommitOffset bool

	// MinYear and MaxYear bound representable dates; both zero means
	// now ± DefaultYearSpread.
	MinYear int
	MaxYear int

	WeekStart  time.Weekday
	LevelCount int
	Mode       ThresholdMode
	Thresholds []int

	RangeStart calendar.Date
	RangeEnd   calendar.Date

	// MaxCellCount caps grid size; 0 means DefaultMaxCellCount.
	MaxCellCount int
}

// Heatmap is the immutable pipeline result: the laid-out grid, the
// per-day counts behind it, and summary statistics.
type Heatmap struct {
	Grid          *Grid
	Counts        DayCounts
	LevelCount    int
	TotalCommits  int
	ActiveDays    int
	MaxDailyCount int
}

// Assembler runs the full pipeline: normalize, aggregate, bucketize,
// lay out. It performs no I/O; callers hand in already-materialized
// commit events.
type Assembler struct {
	cfg        Config
	normalizer *TimeNormalizer
	bucketizer *IntensityBucketizer
}

// NewAssembler validates the configuration eagerly and returns an
// assembler. Configuration problems surface here, before any events
// are processed.
func NewAssembler(cfg Config) (*Assembler, error) {
	if cfg.WeekStart < time.Sunday || cfg.WeekStart > time.Saturday {
		return nil, newError(StageAssemble, KindInvalidConfiguration,
			"week start day %d is not a weekday", cfg.WeekStart)
	}
	if cfg.MinYear != 0 || cfg.MaxYear != 0 {
		if cfg.MinYear > cfg.MaxYear {
			return nil, newError(StageAssemble, KindInvalidConfiguration,
				"min year %d is after max year %d", cfg.MinYear, cfg.MaxYear)
		}
	}

	bucketizer, err := NewIntensityBucketizer(BucketizerOptions{
		LevelCount: cfg.LevelCount,
		Mode:       cfg.Mode,
		Thresholds: cfg.Thresholds,
	})
	if err != nil {
		return nil, err
	}

	normalizer := NewTimeNormalizer(NormalizerOptions{
		TargetOffsetMinutes: cfg.TimezoneOffsetMinutes,
		UseCommitOffset:     cfg.UseCommitOffset,
		MinYear:             cfg.MinYear,
		MaxYear:             cfg.MaxYear,
	})

	return &Assembler{cfg: cfg, normalizer: normalizer, bucketizer: bucketizer}, nil
}

// Assemble runs the pipeline over the given events. It is a pure
// function of (events, configuration): identical inputs always produce
// structurally identical heatmaps.
func (a *Assembler) Assemble(events []CommitEvent) (*Heatmap, error) {
	dates, err := a.normalizer.Normalize(events)
	if err != nil {
		return nil, err
	}

	counts := AggregateByDay(dates)
	levels := a.bucketizer.Bucketize(counts)

	grid, err := BuildGrid(a.cfg.RangeStart, a.cfg.RangeEnd, levels, GridOptions{
		WeekStart:    a.cfg.WeekStart,
		MaxCellCount: a.cfg.MaxCellCount,
	})
	if err != nil {
		return nil, err
	}

	return &Heatmap{
		Grid:          grid,
		Counts:        counts,
		LevelCount:    a.bucketizer.LevelCount(),
		TotalCommits:  len(events),
		ActiveDays:    len(counts),
		MaxDailyCount: counts.Max(),
	}, nil
}

// Thresholds returns the threshold list the assembler would apply to
// the given events, after normalization and aggregation. Used by the
// legend renderer.
func (a *Assembler) Thresholds(events []CommitEvent) ([]int, error) {
	dates, err := a.normalizer.Normalize(events)
	if err != nil {
		return nil, err
	}
	return a.bucketizer.EffectiveThresholds(AggregateByDay(dates)), nil
}

// LevelCount returns the configured number of levels including level 0.
func (a *Assembler) LevelCount() int {
	return a.bucketizer.LevelCount()
}
