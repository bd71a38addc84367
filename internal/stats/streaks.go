package stats

import (
	"sort"

	"github.com/hmurata/commitcal-go/internal/calendar"
	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// StreakStats describes runs of consecutive active days.
type StreakStats struct {
	Longest    int
	LongestEnd calendar.Date
	Current    int // run ending on the reference day (or the day before)
}

// WindowStats describes the densest fixed-length window of activity.
type WindowStats struct {
	Days    int
	Commits int
	Start   calendar.Date
}

// Streaks computes the longest and current streaks from per-day counts.
// The current streak counts backward from asOf; a streak that ended the
// day before asOf still counts, so today's not-yet-made commit does not
// reset it.
func Streaks(counts heatmap.DayCounts, asOf calendar.Date) StreakStats {
	if len(counts) == 0 {
		return StreakStats{}
	}

	dates := sortedDates(counts)

	var s StreakStats
	run := 1
	for i := 1; i <= len(dates); i++ {
		if i < len(dates) && dates[i-1].DaysUntil(dates[i]) == 1 {
			run++
			continue
		}
		if run > s.Longest {
			s.Longest = run
			s.LongestEnd = dates[i-1]
		}
		run = 1
	}

	last := dates[len(dates)-1]
	if gap := last.DaysUntil(asOf); gap == 0 || gap == 1 {
		s.Current = 1
		for i := len(dates) - 1; i > 0; i-- {
			if dates[i-1].DaysUntil(dates[i]) != 1 {
				break
			}
			s.Current++
		}
	}

	return s
}

// BusiestWindow finds the windowDays-long span holding the most
// commits, using a two-pointer sweep over the sorted active days.
func BusiestWindow(counts heatmap.DayCounts, windowDays int) WindowStats {
	if windowDays <= 0 {
		windowDays = 7
	}
	if len(counts) == 0 {
		return WindowStats{Days: windowDays}
	}

	dates := sortedDates(counts)

	best := WindowStats{Days: windowDays, Start: dates[0]}
	inWindow := 0
	left := 0
	for right := 0; right < len(dates); right++ {
		inWindow += counts[dates[right]]
		for dates[left].DaysUntil(dates[right]) >= windowDays {
			inWindow -= counts[dates[left]]
			left++
		}
		if inWindow > best.Commits {
			best.Commits = inWindow
			best.Start = dates[left]
		}
	}

	return best
}

func sortedDates(counts heatmap.DayCounts) []calendar.Date {
	dates := make([]calendar.Date, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
