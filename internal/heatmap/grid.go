package heatmap

import (
	"time"

	"github.com/hmurata/commitcal-go/internal/calendar"
)

// DefaultMaxCellCount caps grid size when no ceiling is configured.
// Roughly 100 years of weeks.
const DefaultMaxCellCount = 40000

// Cell is one day slot in the calendar grid. Padding cells outside the
// requested range keep their date (renderers need it for labels) and
// are marked with InRange=false.
type Cell struct {
	Date    calendar.Date
	Level   Level
	InRange bool
}

// Week is one grid column of exactly seven cells, ordered from the
// configured week-start day.
type Week [7]Cell

// Grid is the finished week-major calendar layout.
type Grid struct {
	Weeks      []Week
	RangeStart calendar.Date
	RangeEnd   calendar.Date
	WeekStart  time.Weekday
}

// CellCount returns the total number of cells, always a multiple of 7.
func (g *Grid) CellCount() int {
	return len(g.Weeks) * 7
}

// GridOptions configures grid layout.
type GridOptions struct {
	WeekStart time.Weekday

	// MaxCellCount caps the number of emitted cells; 0 means
	// DefaultMaxCellCount.
	MaxCellCount int
}

// BuildGrid lays out the inclusive range [rangeStart, rangeEnd] into
// week-start-aligned weeks. Dates absent from levels render as level 0
// (no recorded activity). Fails with invalid_range when start is after
// end and range_too_large when the aligned span exceeds the cell
// ceiling.
func BuildGrid(rangeStart, rangeEnd calendar.Date, levels map[calendar.Date]Level, opts GridOptions) (*Grid, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, newError(StageGrid, KindInvalidRange,
			"range start %s is after range end %s", rangeStart, rangeEnd)
	}

	// Align outward to full weeks: back at most 6 days to the nearest
	// week-start day, forward at most 6 days to the day before the
	// next one.
	back := (int(rangeStart.Weekday()) - int(opts.WeekStart) + 7) % 7
	first := rangeStart.AddDays(-back)
	forward := (int(rangeEnd.Weekday()) - int(opts.WeekStart) + 7) % 7
	last := rangeEnd.AddDays(6 - forward)

	cellCount := first.DaysUntil(last) + 1
	ceiling := opts.MaxCellCount
	if ceiling <= 0 {
		ceiling = DefaultMaxCellCount
	}
	if cellCount > ceiling {
		return nil, newError(StageGrid, KindRangeTooLarge,
			"range %s to %s needs %d cells, exceeding the ceiling of %d",
			rangeStart, rangeEnd, cellCount, ceiling)
	}

	weeks := make([]Week, 0, cellCount/7)
	d := first
	for w := 0; w < cellCount/7; w++ {
		var week Week
		for i := 0; i < 7; i++ {
			inRange := !d.Before(rangeStart) && !d.After(rangeEnd)
			var level Level
			if inRange {
				level = levels[d]
			}
			week[i] = Cell{Date: d, Level: level, InRange: inRange}
			d = d.AddDays(1)
		}
		weeks = append(weeks, week)
	}

	return &Grid{
		Weeks:      weeks,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		WeekStart:  opts.WeekStart,
	}, nil
}
