package stats

import (
	"strings"
	"time"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// AuthorStats summarizes who produced the counted commits.
type AuthorStats struct {
	Unique     int
	Top        string
	TopCommits int
	TopShare   float64 // proportion of commits by the top author
}

// Authors aggregates per-author commit counts. Authors are keyed
// case-insensitively so "Alice <A@example.com>" and
// "alice <a@example.com>" collapse into one contributor.
func Authors(events []heatmap.CommitEvent) AuthorStats {
	if len(events) == 0 {
		return AuthorStats{}
	}

	perAuthor := make(map[string]int)
	display := make(map[string]string)
	for _, ev := range events {
		key := strings.ToLower(ev.Author)
		perAuthor[key]++
		if _, ok := display[key]; !ok {
			display[key] = ev.Author
		}
	}

	s := AuthorStats{Unique: len(perAuthor)}
	for key, n := range perAuthor {
		if n > s.TopCommits {
			s.TopCommits = n
			s.Top = display[key]
		}
	}
	s.TopShare = float64(s.TopCommits) / float64(len(events))
	return s
}

// WeekdayTotals sums commit counts by weekday.
func WeekdayTotals(counts heatmap.DayCounts) [7]int {
	var totals [7]int
	for d, n := range counts {
		totals[d.Weekday()] += n
	}
	return totals
}

// BusiestWeekday returns the weekday with the highest total. Ties go
// to the earlier weekday, Sunday first.
func BusiestWeekday(totals [7]int) time.Weekday {
	best := time.Sunday
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		if totals[wd] > totals[best] {
			best = wd
		}
	}
	return best
}
