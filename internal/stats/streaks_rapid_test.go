package stats

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/hmurata/commitcal-go/internal/calendar"
	"github.com/hmurata/commitcal-go/internal/heatmap"
)

func genCounts() *rapid.Generator[heatmap.DayCounts] {
	return rapid.Custom(func(t *rapid.T) heatmap.DayCounts {
		base := calendar.Date{Year: 2024, Month: time.January, Day: 1}
		offsets := rapid.SliceOfN(rapid.IntRange(0, 365), 0, 120).Draw(t, "offsets")
		counts := make(heatmap.DayCounts, len(offsets))
		for _, off := range offsets {
			counts[base.AddDays(off)]++
		}
		return counts
	})
}

func TestRapidStreaks_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := genCounts().Draw(t, "counts")
		asOf := calendar.Date{Year: 2025, Month: time.January, Day: 1}

		s := Streaks(counts, asOf)

		if s.Longest < 0 || s.Longest > len(counts) {
			t.Fatalf("Longest = %d, want within [0, %d]", s.Longest, len(counts))
		}
		if s.Current < 0 || s.Current > s.Longest {
			t.Fatalf("Current = %d exceeds Longest = %d", s.Current, s.Longest)
		}
		if len(counts) > 0 && s.Longest == 0 {
			t.Fatal("non-empty counts produced zero longest streak")
		}
	})
}

func TestRapidBusiestWindow_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := genCounts().Draw(t, "counts")
		windowDays := rapid.IntRange(1, 30).Draw(t, "windowDays")

		w := BusiestWindow(counts, windowDays)

		if w.Commits > counts.Total() {
			t.Fatalf("window commits %d exceed total %d", w.Commits, counts.Total())
		}
		if len(counts) > 0 && w.Commits < counts.Max() {
			t.Fatalf("window commits %d below busiest single day %d", w.Commits, counts.Max())
		}
	})
}

func TestRapidBusiestWindow_WideWindowCoversEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := genCounts().Draw(t, "counts")

		w := BusiestWindow(counts, 366)

		if w.Commits != counts.Total() {
			t.Fatalf("window commits = %d, want total %d", w.Commits, counts.Total())
		}
	})
}

func TestRapidBusiestWindow_NonMutating(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := genCounts().Draw(t, "counts")

		original := make(heatmap.DayCounts, len(counts))
		for d, n := range counts {
			original[d] = n
		}

		BusiestWindow(counts, 7)
		Streaks(counts, calendar.Date{Year: 2025, Month: time.January, Day: 1})

		if len(counts) != len(original) {
			t.Fatal("input counts mutated")
		}
		for d, n := range original {
			if counts[d] != n {
				t.Fatalf("count for %v mutated: %d vs %d", d, counts[d], n)
			}
		}
	})
}
