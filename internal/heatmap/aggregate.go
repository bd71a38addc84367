package heatmap

import "github.com/hmurata/commitcal-go/internal/calendar"

// DayCounts maps a civil date to the number of commits on it. Dates
// with no commits are absent; zero is never stored.
type DayCounts map[calendar.Date]int

// AggregateByDay counts commits per civil date. Duplicate dates
// accumulate; an empty input yields an empty map. The sum of all
// counts always equals the input length.
func AggregateByDay(dates []calendar.Date) DayCounts {
	counts := make(DayCounts, len(dates))
	for _, d := range dates {
		counts[d]++
	}
	return counts
}

// Total returns the sum of all counts.
func (c DayCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Max returns the largest single-day count, or 0 for an empty map.
func (c DayCounts) Max() int {
	max := 0
	for _, n := range c {
		if n > max {
			max = n
		}
	}
	return max
}
